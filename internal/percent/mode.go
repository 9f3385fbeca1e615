package percent

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned when a mode id does not name a supported calculation.
var ErrUnknownMode = errors.New("unknown calculation mode")

// Mode selects one of the supported percentage calculations.
type Mode string

const (
	PercentOf     Mode = "pct-of"
	WhatPercent   Mode = "what-percent"
	ApplyPercent  Mode = "apply-pct"
	PercentChange Mode = "pct-change"
)

// Modes lists every mode in form order.
var Modes = []Mode{PercentOf, WhatPercent, ApplyPercent, PercentChange}

// ParseMode resolves a mode id.
func ParseMode(id string) (Mode, error) {
	m := Mode(id)
	if _, ok := registry[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, id)
	}
	return m, nil
}

func (m Mode) String() string { return string(m) }

// Title is the human label shown in mode selectors.
func (m Mode) Title() string {
	switch m {
	case PercentOf:
		return "X% of Y"
	case WhatPercent:
		return "A is what % of B"
	case ApplyPercent:
		return "Increase / decrease by %"
	case PercentChange:
		return "Percent change"
	}
	return string(m)
}

// Direction is the ApplyPercent choice between adding and subtracting the change.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// ParseDirection accepts "increase" or "decrease". An empty value means increase.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case "", Increase:
		return Increase, nil
	case Decrease:
		return Decrease, nil
	}
	return "", &ValidationError{Reason: InvalidDirection, Field: FieldDirection}
}

func (d Direction) sign() string {
	if d == Decrease {
		return "-"
	}
	return "+"
}

// Field names used in Input.
const (
	FieldPercent   = "percent"
	FieldValue     = "value"
	FieldPart      = "part"
	FieldWhole     = "whole"
	FieldBase      = "base"
	FieldDirection = "direction"
	FieldFrom      = "from"
	FieldTo        = "to"
)

// Field describes one numeric form input of a mode.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// Fields returns the numeric inputs of m in form order. ApplyPercent also takes
// a direction, which is not listed here.
func (m Mode) Fields() []Field {
	def, ok := registry[m]
	if !ok {
		return nil
	}
	out := make([]Field, len(def.fields))
	copy(out, def.fields)
	return out
}

// TakesDirection reports whether m reads the direction input.
func (m Mode) TakesDirection() bool {
	return m == ApplyPercent
}
