package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"percentcalc/internal/percent"
)

// RawValue is a form field as sent by the client: a JSON number, a string, or
// null. The text is kept verbatim for the validator to parse.
type RawValue string

func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("field must be a number or string: %w", err)
	}
	*v = RawValue(n)
	return nil
}

// CalcRequest is the JSON body for POST /percent/{mode}: field name to value.
type CalcRequest map[string]RawValue

func (req CalcRequest) Input() percent.Input {
	in := make(percent.Input, len(req))
	for k, v := range req {
		in[k] = string(v)
	}
	return in
}

// CalcResponse is the JSON response for a successful calculation. Value is
// omitted for non-numeric outcomes and for results that overflowed.
type CalcResponse struct {
	Mode        string   `json:"mode"`
	Value       *float64 `json:"value,omitempty"`
	Change      *float64 `json:"change,omitempty"`
	Outcome     string   `json:"outcome,omitempty"`
	Display     string   `json:"display"`
	Explanation string   `json:"explanation,omitempty"`
}

// NewCalcResponse converts a calculation result into its JSON form.
func NewCalcResponse(res percent.Result) CalcResponse {
	resp := CalcResponse{
		Mode:        res.Mode.String(),
		Outcome:     string(res.Outcome),
		Display:     res.Display,
		Explanation: res.Explanation,
	}
	if res.Numeric {
		resp.Value = finite(res.Value)
	}
	if res.Mode == percent.ApplyPercent {
		resp.Change = finite(res.Change)
	}
	return resp
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// BatchItem is one calculation inside a batch request.
type BatchItem struct {
	Mode   string      `json:"mode"`
	Inputs CalcRequest `json:"inputs"`
}

// BatchRequest is the JSON body for POST /percent/batch.
type BatchRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchResult holds either the result or the error of one item.
type BatchResult struct {
	Mode   string        `json:"mode"`
	Result *CalcResponse `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
	Code   string        `json:"code,omitempty"`
}

// BatchResponse preserves the order of the request items.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// ModeInfo describes a mode for clients that build their own form.
type ModeInfo struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Fields     []percent.Field `json:"fields"`
	Directions []string        `json:"directions,omitempty"`
}

// ModesResponse is the JSON response for GET /percent/modes.
type ModesResponse struct {
	Modes []ModeInfo `json:"modes"`
}
