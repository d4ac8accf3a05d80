package common

import (
	"fmt"
	"strconv"
)

// Type identifies the declared type of a column.
//
// Numeric types widen toward Double: Int < Long < Double and
// Int < Float < Double, with the join of Long and Float being Double
// since neither covers the other's range. A column declared Int on one
// server and Double on another is still compatible; the merged column
// is interpreted as Double. String is compatible only with String (or
// an uninitialized DefaultType).
type Type int8

const (
	// For uninitialized Values and columns with no reported type yet.
	DefaultType Type = iota
	IntType
	LongType
	FloatType
	DoubleType
	StringType
)

func (t Type) String() string {
	switch t {
	case IntType:
		return "INT"
	case LongType:
		return "LONG"
	case FloatType:
		return "FLOAT"
	case DoubleType:
		return "DOUBLE"
	case StringType:
		return "STRING"
	}
	return "UNKNOWN"
}

// IsNumeric returns true for types on the Int..Double widening chain.
func (t Type) IsNumeric() bool {
	return t >= IntType && t <= DoubleType
}

// CompatibleWith returns true if values of the two types may share a
// merged column. DefaultType is compatible with everything.
func (t Type) CompatibleWith(other Type) bool {
	if t == DefaultType || other == DefaultType {
		return true
	}
	if t == other {
		return true
	}
	return t.IsNumeric() && other.IsNumeric()
}

// Widen returns the least upper bound of two compatible types. For the
// numeric chain this is simply the wider of the two; DefaultType widens
// to anything.
func (t Type) Widen(other Type) Type {
	Assert(t.CompatibleWith(other), "cannot widen %v to cover %v", t, other)
	// A 64-bit integer does not fit a 32-bit float; their join is Double.
	if (t == LongType && other == FloatType) || (t == FloatType && other == LongType) {
		return DoubleType
	}
	if other > t {
		return other
	}
	return t
}

// Value represents one typed data item in a row. The zero Value is nil
// (uninitialized), which is distinct from a typed NULL.
type Value struct {
	t    Type
	null bool
	i    int64
	f    float64
	s    string
}

// NewIntValue creates a 32-bit integer Value.
func NewIntValue(v int32) Value {
	return Value{t: IntType, i: int64(v)}
}

// NewLongValue creates a 64-bit integer Value.
func NewLongValue(v int64) Value {
	return Value{t: LongType, i: v}
}

// NewFloatValue creates a 32-bit floating point Value.
func NewFloatValue(v float32) Value {
	return Value{t: FloatType, f: float64(v)}
}

// NewDoubleValue creates a 64-bit floating point Value.
func NewDoubleValue(v float64) Value {
	return Value{t: DoubleType, f: v}
}

// NewStringValue creates a string Value.
func NewStringValue(v string) Value {
	return Value{t: StringType, s: v}
}

// NewNullValue creates a typed NULL.
func NewNullValue(t Type) Value {
	return Value{t: t, null: true}
}

// Type returns the declared type of the Value.
func (v Value) Type() Type {
	return v.t
}

// IsNil returns true if the Value is uninitialized. This is NOT to be
// confused with a typed NULL.
func (v Value) IsNil() bool {
	return v.t == DefaultType
}

// IsNull returns true if the Value is NULL.
func (v Value) IsNull() bool {
	return v.null
}

// IntValue returns the underlying (non-NULL) integer. Valid for
// IntType and LongType values.
func (v Value) IntValue() int64 {
	Assert(v.t == IntType || v.t == LongType, "type mismatch in IntValue: %v", v.t)
	Assert(!v.null, "accessing value of NULL %v", v.t)
	return v.i
}

// FloatValue returns the underlying (non-NULL) floating point number.
// Valid for FloatType and DoubleType values.
func (v Value) FloatValue() float64 {
	Assert(v.t == FloatType || v.t == DoubleType, "type mismatch in FloatValue: %v", v.t)
	Assert(!v.null, "accessing value of NULL %v", v.t)
	return v.f
}

// StringValue returns the underlying (non-NULL) string.
func (v Value) StringValue() string {
	Assert(v.t == StringType, "type mismatch in StringValue: %v", v.t)
	Assert(!v.null, "accessing value of NULL string")
	return v.s
}

// asFloat promotes any numeric value to float64 for cross-type
// comparison and coercion.
func (v Value) asFloat() float64 {
	if v.t == IntType || v.t == LongType {
		return float64(v.i)
	}
	return v.f
}

// Convert reinterprets the value under a wider declared type. Used when
// rows from a narrower source schema are read under the merged schema.
// Narrowing is an invariant violation.
func (v Value) Convert(t Type) Value {
	if v.t == t {
		return v
	}
	Assert(v.t.CompatibleWith(t) && t.Widen(v.t) == t, "cannot convert %v to %v", v.t, t)
	if v.null {
		return NewNullValue(t)
	}
	switch t {
	case LongType:
		return Value{t: LongType, i: v.i}
	case FloatType, DoubleType:
		return Value{t: t, f: v.asFloat()}
	}
	Assert(false, "unreachable conversion %v to %v", v.t, t)
	return Value{}
}

// Native returns the value as a plain Go value (int64, float64, string
// or nil for NULL), suitable for a loosely-typed response payload.
func (v Value) Native() any {
	if v.null {
		return nil
	}
	switch v.t {
	case IntType, LongType:
		return v.i
	case FloatType, DoubleType:
		return v.f
	case StringType:
		return v.s
	}
	Assert(false, "native view of nil value")
	return nil
}

// FormatString renders the value the way the legacy response format
// expects: every cell a string. NULL renders as "null".
func (v Value) FormatString() string {
	if v.null {
		return "null"
	}
	switch v.t {
	case IntType, LongType:
		return strconv.FormatInt(v.i, 10)
	case FloatType, DoubleType:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case StringType:
		return v.s
	}
	return "null"
}

func (v Value) String() string {
	if v.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("%v(%s)", v.t, v.FormatString())
}

// Compare compares two Values of compatible types.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// Numeric values compare numerically across the widening chain, never
// lexically. NULL is considered less than non-NULL here; callers that
// need a different NULL placement (the order-by comparator sorts NULLs
// last) must test IsNull before calling Compare.
func (v Value) Compare(other Value) int {
	Assert(v.t.CompatibleWith(other.t), "type mismatch in comparison: %v vs %v", v.t, other.t)

	if v.null && other.null {
		return 0
	}
	if v.null {
		return -1
	}
	if other.null {
		return 1
	}

	if v.t == StringType {
		switch {
		case v.s < other.s:
			return -1
		case v.s > other.s:
			return 1
		}
		return 0
	}

	// Both sides numeric. Compare in int64 space when neither side is
	// floating point so large longs do not lose precision.
	if (v.t == IntType || v.t == LongType) && (other.t == IntType || other.t == LongType) {
		switch {
		case v.i < other.i:
			return -1
		case v.i > other.i:
			return 1
		}
		return 0
	}
	a, b := v.asFloat(), other.asFloat()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
