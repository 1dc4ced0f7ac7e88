// Package shared provides common utility functions used across multiple
// packages in the kle-placer codebase.
package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ReferenceSlot is the placeholder replaced by the key index in a
// reference format.
const ReferenceSlot = "{}"

// FormatReference substitutes index into the single slot of format,
// e.g. ("SW{}", 3) -> "SW3".
func FormatReference(format string, index int) string {
	return strings.Replace(format, ReferenceSlot, strconv.Itoa(index), 1)
}

// ValidateReferenceFormat checks that format carries exactly one slot.
func ValidateReferenceFormat(name string, format string) error {
	if count := strings.Count(format, ReferenceSlot); count != 1 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s format %q must contain exactly one %s slot, found %d", name, format, ReferenceSlot, count))
	}
	return nil
}

// FootprintNotFound is returned when a required footprint is missing
// from the board.
func FootprintNotFound(reference string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("footprint not found: %s", reference))
}

// MalformedLayout wraps a layout parse failure with its location.
func MalformedLayout(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("malformed layout: " + fmt.Sprintf(format, args...))
}
