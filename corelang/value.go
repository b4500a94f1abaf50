package corelang

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ValueType represents the type of a value.
type ValueType int8

// Predefined value types
const (
	Undefined ValueType = iota
	NumericType
	BooleanType
)

// --- Value -----------------------------------------------------------------

// Value is a numeric or boolean value. The zero Value is undefined.
type Value struct {
	t ValueType
	n decimal.Decimal
	b bool
}

// Type returns the value type of a value.
func (v Value) Type() ValueType {
	return v.t
}

// IsKnown is a predicate: is this a defined value?
func (v Value) IsKnown() bool {
	return v.t != Undefined
}

// IsNumeric is a predicate: is it a numeric?
func (v Value) IsNumeric() bool {
	return v.t == NumericType
}

// IsBoolean is a predicate: is it a boolean?
func (v Value) IsBoolean() bool {
	return v.t == BooleanType
}

func (v Value) String() string {
	switch v.t {
	case NumericType:
		return v.n.String()
	case BooleanType:
		if v.b {
			return "true"
		}
		return "false"
	}
	return "<undefined>"
}

// Equal compares two values. Values of different type are never equal.
func (v Value) Equal(w Value) bool {
	if v.t != w.t {
		return false
	}
	switch v.t {
	case NumericType:
		return v.n.Equal(w.n)
	case BooleanType:
		return v.b == w.b
	}
	return true
}

// --- Numeric ---------------------------------------------------------------

// FromInt creates a numeric value from an integer.
func FromInt(i int64) Value {
	return Value{t: NumericType, n: decimal.New(i, 0)}
}

// FromFloat creates a numeric value from a float.
func FromFloat(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("cannot create numeric value from NaN or Inf")
	}
	return Value{t: NumericType, n: decimal.NewFromFloat(f)}
}

// FromDecimal creates a numeric value from a decimal.
func FromDecimal(d decimal.Decimal) Value {
	return Value{t: NumericType, n: d}
}

// ParseNumeric creates a numeric value from its decimal string
// representation.
func ParseNumeric(s string) (Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("not a numeric literal: %q", s)
	}
	return FromDecimal(d), nil
}

// AsDecimal returns a numeric value as a decimal, or zero.
func (v Value) AsDecimal() decimal.Decimal {
	if v.t != NumericType {
		tracer().Errorf("value is not of type numeric: %v", v)
		return decimal.Zero
	}
	return v.n
}

// AsFloat returns a numeric value as a float, or NaN.
func (v Value) AsFloat() float64 {
	if v.t != NumericType {
		tracer().Errorf("value is not of type numeric: %v", v)
		return math.NaN()
	}
	f, _ := v.n.Float64()
	return f
}

// --- Boolean ---------------------------------------------------------------

// FromBool creates a boolean value.
func FromBool(b bool) Value {
	return Value{t: BooleanType, b: b}
}

// AsBool returns a boolean value as a bool, or false.
func (v Value) AsBool() bool {
	if v.t != BooleanType {
		tracer().Errorf("value is not of type boolean: %v", v)
		return false
	}
	return v.b
}

// --- Helpers ---------------------------------------------------------------

func (vt ValueType) String() string {
	switch vt {
	case Undefined:
		return "<undefined>"
	case NumericType:
		return "numeric"
	case BooleanType:
		return "boolean"
	}
	return fmt.Sprintf("<illegal type: %d>", vt)
}

// TypeFromString gets a type from a string.
func TypeFromString(str string) ValueType {
	switch str {
	case "numeric":
		return NumericType
	case "boolean":
		return BooleanType
	}
	return Undefined
}
