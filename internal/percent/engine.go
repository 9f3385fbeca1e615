package percent

import "math"

// Outcome classifies a PercentChange result.
type Outcome string

const (
	OutcomeIncrease  Outcome = "increase"
	OutcomeDecrease  Outcome = "decrease"
	OutcomeNoChange  Outcome = "no change"
	OutcomeUndefined Outcome = "undefined"
)

// Result is the outcome of one calculation. Display is built by Calculator; the
// engine functions leave it empty.
type Result struct {
	Mode Mode
	// Value is the computed number. It is meaningless when Numeric is false.
	Value   float64
	Numeric bool
	// Change is the signed amount added or removed by ApplyPercent.
	Change  float64
	Outcome Outcome

	Display     string
	Explanation string
}

// ComputePercentOf computes percent% of value.
func ComputePercentOf(percent, value float64) Result {
	return Result{
		Mode:        PercentOf,
		Value:       value * percent / 100,
		Numeric:     true,
		Explanation: "value × percentage ÷ 100",
	}
}

// ComputeWhatPercent computes which percentage part is of whole. whole must be non-zero.
func ComputeWhatPercent(part, whole float64) Result {
	return Result{
		Mode:        WhatPercent,
		Value:       (part / whole) * 100,
		Numeric:     true,
		Explanation: "(A ÷ B) × 100",
	}
}

// ComputeApplyPercent raises or lowers base by percent% of itself.
func ComputeApplyPercent(base, percent float64, dir Direction) Result {
	change := base * percent / 100

	value := base + change
	if dir == Decrease {
		value = base - change
	}

	return Result{
		Mode:        ApplyPercent,
		Value:       value,
		Numeric:     true,
		Change:      change,
		Explanation: "base " + string(dir) + " by (base × percentage ÷ 100)",
	}
}

// ComputePercentChange computes the relative change from one value to another. A zero
// starting point yields a non-numeric outcome instead of dividing by zero.
func ComputePercentChange(from, to float64) Result {
	if from == 0 {
		if to == 0 {
			return Result{Mode: PercentChange, Outcome: OutcomeNoChange}
		}
		return Result{Mode: PercentChange, Outcome: OutcomeUndefined}
	}

	pct := ((to - from) / math.Abs(from)) * 100

	outcome := OutcomeNoChange
	switch {
	case pct > 0:
		outcome = OutcomeIncrease
	case pct < 0:
		outcome = OutcomeDecrease
	}

	return Result{
		Mode:        PercentChange,
		Value:       pct,
		Numeric:     true,
		Outcome:     outcome,
		Explanation: "((to - from) ÷ |from|) × 100",
	}
}
