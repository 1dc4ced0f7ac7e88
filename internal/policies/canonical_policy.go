package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kle-placer/internal/ports"
	"kle-placer/internal/types"
)

// DefaultOption is the option value KLE treats as the default variant.
const DefaultOption = 0

// CanonicalPolicy selects the canonical option of a multilayout group.
//
// When every option has the same number of keys the default option wins
// (or the lowest option value when no default option exists). Otherwise
// the option with the most keys wins; ties at the maximum go to the
// lowest option value and are reported as ambiguous.
type CanonicalPolicy struct{}

func NewCanonicalPolicy() CanonicalPolicy {
	return CanonicalPolicy{}
}

func (p CanonicalPolicy) SelectCanonical(group types.MultilayoutGroup) (int, bool, error) {
	values := group.OptionValues()
	if len(values) == 0 {
		return 0, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("multilayout group %d has no options", group.Index))
	}
	if allSameCount(group, values) {
		if _, ok := group.Options[DefaultOption]; ok {
			return DefaultOption, false, nil
		}
		return values[0], false, nil
	}

	best := values[0]
	ties := 1
	for _, value := range values[1:] {
		switch count := group.Count(value); {
		case count > group.Count(best):
			best = value
			ties = 1
		case count == group.Count(best):
			ties++
		}
	}
	return best, ties > 1, nil
}

func allSameCount(group types.MultilayoutGroup, values []int) bool {
	first := group.Count(values[0])
	for _, value := range values[1:] {
		if group.Count(value) != first {
			return false
		}
	}
	return true
}

var _ ports.CanonicalPolicyPort = CanonicalPolicy{}
