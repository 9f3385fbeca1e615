package percent

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Reason tags why an input was rejected.
type Reason int

const (
	MissingOrNonFinite Reason = iota + 1
	ZeroDivisor
	InvalidDirection
)

// Message is the user-facing text for r.
func (r Reason) Message() string {
	switch r {
	case MissingOrNonFinite:
		return "Please enter valid numbers."
	case ZeroDivisor:
		return "Whole (B) cannot be zero."
	case InvalidDirection:
		return "Please choose increase or decrease."
	}
	return "Invalid input."
}

// Code is the stable machine-readable name of r.
func (r Reason) Code() string {
	switch r {
	case MissingOrNonFinite:
		return "missing_or_non_finite"
	case ZeroDivisor:
		return "zero_divisor"
	case InvalidDirection:
		return "invalid_direction"
	}
	return "invalid_input"
}

// ValidationError reports input that cannot be calculated. Field names the first
// offending input when known.
type ValidationError struct {
	Reason Reason
	Field  string
}

func (e *ValidationError) Error() string { return e.Reason.Message() }

// Code implements the coded-error contract used by the HTTP error writer.
func (e *ValidationError) Code() string { return e.Reason.Code() }

// Is matches any ValidationError with the same reason, so callers can test
// errors.Is(err, ErrZeroDivisor).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

var (
	ErrMissingOrNonFinite = &ValidationError{Reason: MissingOrNonFinite}
	ErrZeroDivisor        = &ValidationError{Reason: ZeroDivisor}
	ErrInvalidDirection   = &ValidationError{Reason: InvalidDirection}
)

// Decimal magnitude bounds, as the position of the leading digit. Anything
// above maxMagnitude overflows a float64. Anything below minMagnitude
// underflows to zero.
const (
	maxMagnitude = 310
	minMagnitude = -330
)

// ParseNumber parses a raw form value. Empty, malformed and out-of-range values
// are rejected. The magnitude is checked before conversion, since converting a
// decimal with a huge exponent is unbounded work.
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	if d.IsZero() {
		return 0, true
	}

	magnitude := int64(d.Exponent()) + int64(d.NumDigits())
	switch {
	case magnitude > maxMagnitude:
		return 0, false
	case magnitude < minMagnitude:
		return 0, true
	}

	f := d.InexactFloat64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// RequireNonZeroWhole guards the WhatPercent divisor.
func RequireNonZeroWhole(whole float64) error {
	if whole == 0 {
		return &ValidationError{Reason: ZeroDivisor, Field: FieldWhole}
	}
	return nil
}
