package types

import (
	"strconv"
	"strings"
)

// LabelPosition names one of the twelve legend slots a KLE key carries.
type LabelPosition int

const (
	LabelTopLeft LabelPosition = iota
	LabelTopCenter
	LabelTopRight
	LabelCenterLeft
	LabelCenter
	LabelCenterRight
	LabelBottomLeft
	LabelBottomCenter
	LabelBottomRight
	LabelFrontLeft
	LabelFrontCenter
	LabelFrontRight
)

// LabelCount is the number of legend slots on a key.
const LabelCount = 12

// Multilayout metadata lives in fixed legend slots.
const (
	LabelMultilayoutGroup  = LabelCenterLeft
	LabelMultilayoutOption = LabelCenterRight
)

func (p LabelPosition) Valid() bool {
	return p >= 0 && p < LabelCount
}

type Label struct {
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Present bool   `json:"present" yaml:"present"`
}

// Labels is the fixed-size legend array of a key. Absent slots have
// Present set to false.
type Labels [LabelCount]Label

func (l Labels) Get(pos LabelPosition) (string, bool) {
	if !pos.Valid() || !l[pos].Present {
		return "", false
	}
	return l[pos].Text, true
}

func (l *Labels) Set(pos LabelPosition, text string) {
	if !pos.Valid() {
		return
	}
	l[pos] = Label{Text: text, Present: true}
}

// Int reads the slot as a base-10 integer. The second return value is
// false when the slot is absent, blank or not numeric.
func (l Labels) Int(pos LabelPosition) (int, bool) {
	text, ok := l.Get(pos)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return value, true
}
