package percent

import (
	"math"
	"testing"

	"golang.org/x/text/language"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 200, want: "200"},
		{name: "zero", in: 0, want: "0"},
		{name: "half", in: 15.5, want: "15.50"},
		{name: "grouping", in: 1234567.891, want: "1,234,567.89"},
		{name: "negative grouping", in: -1234.5, want: "-1,234.50"},
		{name: "tiny fraction drops decimals", in: 5.004, want: "5"},
		{name: "fraction rounding up keeps decimals", in: 2.999, want: "3.00"},
		{name: "half away from zero", in: 0.125, want: "0.13"},
		{name: "shortest digits for large values", in: 1e23, want: "100,000,000,000,000,000,000,000"},
		{name: "large value with fraction", in: 1e15 + 0.5, want: "1,000,000,000,000,000.50"},
		{name: "negative zero", in: math.Copysign(0, -1), want: "-0"},
		{name: "negative rounding to zero keeps sign", in: -0.001, want: "-0"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "positive infinity", in: math.Inf(1), want: "Infinity"},
		{name: "negative infinity", in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.in); got != tc.want {
				t.Fatalf("Format(%v): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestFormatterUsesLocaleGrouping(t *testing.T) {
	f := NewFormatter(language.German)

	if got := f.Format(1234.5); got != "1.234,50" {
		t.Fatalf("expected %q, got %q", "1.234,50", got)
	}
}

func TestNewFormatterForLocaleRejectsMalformedTag(t *testing.T) {
	if _, err := NewFormatterForLocale("not a locale!"); err == nil {
		t.Fatal("expected error for malformed locale")
	}

	f, err := NewFormatterForLocale("en-US")
	if err != nil {
		t.Fatalf("parsing en-US: %v", err)
	}
	if got := f.Format(1000); got != "1,000" {
		t.Fatalf("expected %q, got %q", "1,000", got)
	}
}
