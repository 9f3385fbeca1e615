package percent

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxFractionDigits = 2

// Formatter renders numbers for display with locale digit grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// NewFormatterForLocale parses a BCP 47 tag such as "en" or "de-DE".
func NewFormatterForLocale(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return NewFormatter(tag), nil
}

var defaultFormatter = NewFormatter(language.English)

// Format renders n with the English formatter.
func Format(n float64) string {
	return defaultFormatter.Format(n)
}

// Format renders n with no decimals when its fractional part rounds away at two
// decimal places, and exactly two decimals otherwise. Digits are the shortest
// form that round-trips, so 1e23 groups as 100,000,000,000,000,000,000,000.
// Negative values that round to zero keep their sign ("-0"). Non-finite values
// are passed through as NaN, Infinity or -Infinity.
func (f *Formatter) Format(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	decimals := 0
	if roundHalfUp((math.Abs(n)-math.Floor(math.Abs(n)))*100) != 0 {
		decimals = maxFractionDigits
	}

	rounded := decimal.NewFromFloat(n).Round(maxFractionDigits)

	// Rounding already happened above. An unlimited maximum keeps x/text on the
	// shortest float digits instead of a fixed-point expansion.
	s := f.printer.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(-1),
	))
	if rounded.IsZero() && math.Signbit(n) {
		s = "-" + s
	}
	return s
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
