package percent

import (
	"fmt"
	"math"
)

// Input holds the raw form values of one calculation, keyed by field name.
type Input map[string]string

// modeDef binds a mode to its inputs, preconditions, formula and display.
type modeDef struct {
	fields   []Field
	validate func(v []float64) error
	compute  func(v []float64, dir Direction) Result
	render   func(f *Formatter, v []float64, dir Direction, r Result) string
}

var registry = map[Mode]modeDef{
	PercentOf: {
		fields: []Field{
			{Name: FieldPercent, Label: "Percentage (%)", Placeholder: "e.g. 15"},
			{Name: FieldValue, Label: "Value", Placeholder: "e.g. 200"},
		},
		compute: func(v []float64, _ Direction) Result { return ComputePercentOf(v[0], v[1]) },
		render: func(f *Formatter, v []float64, _ Direction, r Result) string {
			return fmt.Sprintf("%s%% of %s = %s", f.Format(v[0]), f.Format(v[1]), f.Format(r.Value))
		},
	},
	WhatPercent: {
		fields: []Field{
			{Name: FieldPart, Label: "Part (A)", Placeholder: "e.g. 30"},
			{Name: FieldWhole, Label: "Whole (B)", Placeholder: "e.g. 200"},
		},
		validate: func(v []float64) error { return RequireNonZeroWhole(v[1]) },
		compute:  func(v []float64, _ Direction) Result { return ComputeWhatPercent(v[0], v[1]) },
		render: func(f *Formatter, v []float64, _ Direction, r Result) string {
			return fmt.Sprintf("%s is %s%% of %s", f.Format(v[0]), f.Format(r.Value), f.Format(v[1]))
		},
	},
	ApplyPercent: {
		fields: []Field{
			{Name: FieldBase, Label: "Base value", Placeholder: "e.g. 100"},
			{Name: FieldPercent, Label: "Percentage (%)", Placeholder: "e.g. 15"},
		},
		compute: func(v []float64, dir Direction) Result { return ComputeApplyPercent(v[0], v[1], dir) },
		render: func(f *Formatter, v []float64, dir Direction, r Result) string {
			return fmt.Sprintf("%s %s %s%% = %s (%s%s)",
				f.Format(v[0]), dir, f.Format(v[1]), f.Format(r.Value), dir.sign(), f.Format(r.Change))
		},
	},
	PercentChange: {
		fields: []Field{
			{Name: FieldFrom, Label: "From (old value)", Placeholder: "e.g. 80"},
			{Name: FieldTo, Label: "To (new value)", Placeholder: "e.g. 100"},
		},
		compute: func(v []float64, _ Direction) Result { return ComputePercentChange(v[0], v[1]) },
		render: func(f *Formatter, v []float64, _ Direction, r Result) string {
			switch {
			case !r.Numeric && r.Outcome == OutcomeNoChange:
				return "No change (both values are 0)."
			case !r.Numeric:
				return fmt.Sprintf("Change from 0 to %s — percent change is undefined (infinite).", f.Format(v[1]))
			}
			return fmt.Sprintf("%s → %s = %s%% %s", f.Format(v[0]), f.Format(v[1]), f.Format(math.Abs(r.Value)), r.Outcome)
		},
	},
}

// Calculator validates raw inputs, dispatches to the mode's formula and renders
// the display string. It holds no per-calculation state and is safe for
// concurrent use.
type Calculator struct {
	formatter *Formatter
}

// NewCalculator returns a Calculator rendering numbers with f. A nil f uses English.
func NewCalculator(f *Formatter) *Calculator {
	if f == nil {
		f = defaultFormatter
	}
	return &Calculator{formatter: f}
}

// Calculate runs mode against in. It returns either a Result or an error, never
// both: ErrUnknownMode for an unsupported mode, or a *ValidationError.
func (c *Calculator) Calculate(mode Mode, in Input) (Result, error) {
	def, ok := registry[mode]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}

	values := make([]float64, len(def.fields))
	for i, field := range def.fields {
		v, ok := ParseNumber(in[field.Name])
		if !ok {
			return Result{}, &ValidationError{Reason: MissingOrNonFinite, Field: field.Name}
		}
		values[i] = v
	}

	dir := Increase
	if mode.TakesDirection() {
		var err error
		if dir, err = ParseDirection(in[FieldDirection]); err != nil {
			return Result{}, err
		}
	}

	if def.validate != nil {
		if err := def.validate(values); err != nil {
			return Result{}, err
		}
	}

	res := def.compute(values, dir)
	res.Display = def.render(c.formatter, values, dir, res)
	return res, nil
}
