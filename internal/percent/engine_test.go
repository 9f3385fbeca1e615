package percent

import "testing"

func TestPercentOf(t *testing.T) {
	if got := ComputePercentOf(15, 200).Value; got != 30 {
		t.Fatalf("expected 30, got %v", got)
	}

	for _, v := range []float64{0, 1, -42, 0.25, 12345.5} {
		if got := ComputePercentOf(100, v).Value; got != v {
			t.Fatalf("ComputePercentOf(100, %v): expected identity, got %v", v, got)
		}
	}

	if got := ComputePercentOf(15, 200).Explanation; got != "value × percentage ÷ 100" {
		t.Fatalf("unexpected explanation %q", got)
	}
}

func TestWhatPercent(t *testing.T) {
	if got := ComputeWhatPercent(30, 200).Value; got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}

	for _, w := range []float64{1, -7, 250, 0.5} {
		if got := ComputeWhatPercent(w, w).Value; got != 100 {
			t.Fatalf("ComputeWhatPercent(%v, %v): expected 100, got %v", w, w, got)
		}
	}
}

func TestApplyPercent(t *testing.T) {
	up := ComputeApplyPercent(100, 15, Increase)
	if up.Value != 115 || up.Change != 15 {
		t.Fatalf("expected 115 with change 15, got %v with change %v", up.Value, up.Change)
	}
	if up.Explanation != "base increase by (base × percentage ÷ 100)" {
		t.Fatalf("unexpected explanation %q", up.Explanation)
	}

	down := ComputeApplyPercent(100, 15, Decrease)
	if down.Value != 85 {
		t.Fatalf("expected 85, got %v", down.Value)
	}
	if down.Explanation != "base decrease by (base × percentage ÷ 100)" {
		t.Fatalf("unexpected explanation %q", down.Explanation)
	}
}

func TestApplyPercentZeroIsIdentity(t *testing.T) {
	for _, base := range []float64{0, 3, -80, 1e6} {
		if got := ComputeApplyPercent(base, 0, Increase).Value; got != base {
			t.Fatalf("increase by 0 of %v: got %v", base, got)
		}
		if got := ComputeApplyPercent(base, 0, Decrease).Value; got != base {
			t.Fatalf("decrease by 0 of %v: got %v", base, got)
		}
	}
}

func TestApplyPercentIncreaseAndDecreaseReflect(t *testing.T) {
	tests := []struct{ base, pct float64 }{
		{100, 15},
		{64, 50},
		{-32, 25},
		{1024, 200},
	}

	for _, tc := range tests {
		up := ComputeApplyPercent(tc.base, tc.pct, Increase).Value
		down := ComputeApplyPercent(tc.base, tc.pct, Decrease).Value
		if up+down != 2*tc.base {
			t.Fatalf("base %v pct %v: %v + %v != %v", tc.base, tc.pct, up, down, 2*tc.base)
		}
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name        string
		from, to    float64
		wantValue   float64
		wantNumeric bool
		wantOutcome Outcome
	}{
		{name: "increase", from: 80, to: 100, wantValue: 25, wantNumeric: true, wantOutcome: OutcomeIncrease},
		{name: "decrease", from: 100, to: 80, wantValue: -20, wantNumeric: true, wantOutcome: OutcomeDecrease},
		{name: "negative base uses magnitude", from: -50, to: -25, wantValue: 50, wantNumeric: true, wantOutcome: OutcomeIncrease},
		{name: "same value", from: 42, to: 42, wantValue: 0, wantNumeric: true, wantOutcome: OutcomeNoChange},
		{name: "both zero", from: 0, to: 0, wantNumeric: false, wantOutcome: OutcomeNoChange},
		{name: "from zero", from: 0, to: 5, wantNumeric: false, wantOutcome: OutcomeUndefined},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePercentChange(tc.from, tc.to)
			if got.Numeric != tc.wantNumeric {
				t.Fatalf("expected numeric %t, got %t", tc.wantNumeric, got.Numeric)
			}
			if got.Outcome != tc.wantOutcome {
				t.Fatalf("expected outcome %q, got %q", tc.wantOutcome, got.Outcome)
			}
			if tc.wantNumeric && got.Value != tc.wantValue {
				t.Fatalf("expected value %v, got %v", tc.wantValue, got.Value)
			}
		})
	}
}
