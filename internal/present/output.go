// Package present holds the display state of a calculator form and the
// copy-to-clipboard action that reads it.
package present

import (
	"percentcalc/internal/percent"
)

// Output is what a form shows below its inputs: the result line, the
// explanation ("meta") line and the error line.
type Output struct {
	text        string
	explanation string
	err         string
}

// Show replaces the output with a calculation result.
func (o *Output) Show(res percent.Result) {
	o.Clear()
	o.text = res.Display
	if res.Explanation != "" {
		o.explanation = "Computed: " + res.Explanation
	}
}

// ShowError replaces the output with an error message.
func (o *Output) ShowError(err error) {
	o.Clear()
	o.err = err.Error()
}

// Render runs a calculation and shows either its result or its error. The
// previous output is always cleared first.
func (o *Output) Render(calc *percent.Calculator, mode percent.Mode, in percent.Input) error {
	res, err := calc.Calculate(mode, in)
	if err != nil {
		o.ShowError(err)
		return err
	}
	o.Show(res)
	return nil
}

// Clear empties every line.
func (o *Output) Clear() {
	o.text, o.explanation, o.err = "", "", ""
}

// SetMeta overwrites the explanation line, e.g. with a copy confirmation.
func (o *Output) SetMeta(meta string) { o.explanation = meta }

// SetError overwrites the error line without touching the result.
func (o *Output) SetError(msg string) { o.err = msg }

func (o Output) Text() string  { return o.text }
func (o Output) Meta() string  { return o.explanation }
func (o Output) Error() string { return o.err }

// HasResult reports whether there is a result line to copy.
func (o Output) HasResult() bool { return o.text != "" }
