// Package models defines the normalized row/column/value structures
// produced by extraction.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CellKind identifies the active variant of a CellValue.
type CellKind uint8

const (
	// KindEmpty is a cell without a value.
	KindEmpty CellKind = iota
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a 64-bit float. Date-time serials are folded into it.
	KindFloat
	// KindString is text. Dates, durations and cell errors are folded into it.
	KindString
	// KindBool is a boolean.
	KindBool
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

// CellValue is a closed variant over int, float, string, bool and empty.
// Exactly one variant is active; the zero value is Empty.
// CellValue is comparable with ==.
type CellValue struct {
	kind CellKind
	i    int64
	f    float64
	s    string
	b    bool
}

// Empty returns the empty cell value.
func Empty() CellValue { return CellValue{} }

// Int returns an integer cell value.
func Int(i int64) CellValue { return CellValue{kind: KindInt, i: i} }

// Float returns a float cell value.
func Float(f float64) CellValue { return CellValue{kind: KindFloat, f: f} }

// String returns a text cell value.
func String(s string) CellValue { return CellValue{kind: KindString, s: s} }

// Bool returns a boolean cell value.
func Bool(b bool) CellValue { return CellValue{kind: KindBool, b: b} }

// Kind returns the active variant.
func (v CellValue) Kind() CellKind { return v.kind }

// IsEmpty reports whether v is the Empty variant.
func (v CellValue) IsEmpty() bool { return v.kind == KindEmpty }

// AsInt returns the integer and true if v is an Int.
func (v CellValue) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float and true if v is a Float.
func (v CellValue) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the text and true if v is a String.
func (v CellValue) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBool returns the boolean and true if v is a Bool.
func (v CellValue) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// Interface returns the value as int64, float64, string, bool or nil.
func (v CellValue) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	}
	return nil
}

// String renders the value for display. Empty renders as "".
func (v CellValue) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// MarshalJSON encodes the value untagged: numbers, strings, booleans,
// and null for Empty. A Float always carries a fraction or an exponent
// (30.0, not 30) so that it decodes back to a Float.
func (v CellValue) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(v.Interface())
	if err != nil || v.kind != KindFloat {
		return b, err
	}
	if !bytes.ContainsAny(b, ".eE") {
		b = append(b, ".0"...)
	}
	return b, nil
}

// UnmarshalJSON accepts the untagged form written by MarshalJSON.
// Integral number literals decode to Int, other numbers to Float.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("cell value: empty input")
	}
	switch data[0] {
	case 'n':
		if !bytes.Equal(data, []byte("null")) {
			return fmt.Errorf("cell value: invalid literal %q", data)
		}
		*v = Empty()
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("cell value: %w", err)
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("cell value: %w", err)
		}
		*v = String(s)
		return nil
	}
	lit := string(data)
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		*v = Int(i)
		return nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return fmt.Errorf("cell value: unsupported JSON %q", data)
	}
	*v = Float(f)
	return nil
}
