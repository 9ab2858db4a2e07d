package telemetry

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is one sampled parameter value: numeric or enumerated text, never
// both. It marshals as a bare JSON scalar so snapshot artifacts stay readable
// by chart and map layers.
type Value struct {
	Number *float64
	Text   *string
}

// NumberValue wraps a numeric sample.
func NumberValue(v float64) Value { return Value{Number: &v} }

// TextValue wraps an enumerated sample.
func TextValue(v string) Value { return Value{Text: &v} }

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool { return v.Number != nil }

// Float returns the numeric value, or 0 for text values.
func (v Value) Float() float64 {
	if v.Number == nil {
		return 0
	}
	return *v.Number
}

// String renders the value for CSV cells and logs.
func (v Value) String() string {
	if v.Number != nil {
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	}
	if v.Text != nil {
		return *v.Text
	}
	return ""
}

// MarshalJSON emits the underlying scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	if v.Text != nil {
		return json.Marshal(*v.Text)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = Value{}
	if string(data) == "null" {
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Number = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = &s
		return nil
	}
	return fmt.Errorf("telemetry: value %s is neither number nor string", data)
}

// ParseValue converts a CSV cell back into a Value. Empty cells mean the
// parameter was not observed for that record.
func ParseValue(cell string) (Value, bool) {
	if cell == "" {
		return Value{}, false
	}
	if n, err := strconv.ParseFloat(cell, 64); err == nil {
		return NumberValue(n), true
	}
	return TextValue(cell), true
}

func (v Value) clone() Value {
	out := Value{}
	if v.Number != nil {
		n := *v.Number
		out.Number = &n
	}
	if v.Text != nil {
		s := *v.Text
		out.Text = &s
	}
	return out
}
