// Package value implements BEXL's ten-kind tagged value type: the
// scalar, temporal, list, and record payloads every expression
// evaluates to, with explicit NULL-vs-empty semantics shared by every
// kind.
package value

import (
	"fmt"
	"time"
)

// Kind tags which of the ten closed value kinds a Value carries.
type Kind string

const (
	Untyped  Kind = "untyped"
	Integer  Kind = "integer"
	Float    Kind = "float"
	Boolean  Kind = "boolean"
	String   Kind = "string"
	Date     Kind = "date"
	Time     Kind = "time"
	DateTime Kind = "datetime"
	List     Kind = "list"
	Record   Kind = "record"
)

// Value is an immutable tagged union over the ten kinds above. The zero
// Value is the untyped null. Dates and datetimes are stored as UTC
// time.Time values (the date component ignoring time-of-day, the
// datetime component at millisecond precision); times are stored as a
// time.Duration offset since midnight, also at millisecond precision.
// Lists and records are stored as []Value and map[string]Value
// respectively.
//
// A nil raw payload means the value is null; Kind is still meaningful
// (a null integer is distinct from a null string) except for Untyped,
// whose only value is the null one.
type Value struct {
	kind Kind
	raw  any
}

// Null returns the untyped null value — the only inhabitant of Untyped.
func Null() Value { return Value{kind: Untyped} }

// NullOf returns the null value of the given kind.
func NullOf(kind Kind) Value { return Value{kind: kind} }

func NewInteger(v int64) Value  { return Value{kind: Integer, raw: v} }
func NewFloat(v float64) Value  { return Value{kind: Float, raw: v} }
func NewBoolean(v bool) Value   { return Value{kind: Boolean, raw: v} }
func NewString(v string) Value  { return Value{kind: String, raw: v} }
func NewDate(v time.Time) Value { return Value{kind: Date, raw: v.Truncate(24 * time.Hour)} }
func NewTime(v time.Duration) Value {
	return Value{kind: Time, raw: v.Truncate(time.Millisecond)}
}
func NewDateTime(v time.Time) Value {
	return Value{kind: DateTime, raw: v.Truncate(time.Millisecond)}
}
func NewList(v []Value) Value         { return Value{kind: List, raw: v} }
func NewRecord(v map[string]Value) Value { return Value{kind: Record, raw: v} }

// Kind reports the value's data type.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value's payload is absent.
func (v Value) IsNull() bool { return v.raw == nil }

// IsEmpty reports IsNull, or — for string/list/record — a zero-length
// payload.
func (v Value) IsEmpty() bool {
	if v.IsNull() {
		return true
	}
	switch v.kind {
	case String:
		return v.raw.(string) == ""
	case List:
		return len(v.raw.([]Value)) == 0
	case Record:
		return len(v.raw.(map[string]Value)) == 0
	default:
		return false
	}
}

// Raw returns the underlying Go payload, or nil if the value is null.
func (v Value) Raw() any { return v.raw }

func (v Value) Int() int64 {
	if i, ok := v.raw.(int64); ok {
		return i
	}
	return 0
}

func (v Value) Float64() float64 {
	if f, ok := v.raw.(float64); ok {
		return f
	}
	return 0
}

func (v Value) Bool() bool {
	if b, ok := v.raw.(bool); ok {
		return b
	}
	return false
}

func (v Value) Str() string {
	if s, ok := v.raw.(string); ok {
		return s
	}
	return ""
}

func (v Value) DateVal() time.Time {
	if t, ok := v.raw.(time.Time); ok {
		return t
	}
	return time.Time{}
}

func (v Value) TimeVal() time.Duration {
	if d, ok := v.raw.(time.Duration); ok {
		return d
	}
	return 0
}

func (v Value) DateTimeVal() time.Time {
	if t, ok := v.raw.(time.Time); ok {
		return t
	}
	return time.Time{}
}

func (v Value) ListVal() []Value {
	if l, ok := v.raw.([]Value); ok {
		return l
	}
	return nil
}

func (v Value) RecordVal() map[string]Value {
	if m, ok := v.raw.(map[string]Value); ok {
		return m
	}
	return nil
}

// String renders a diagnostic (not a cast-to-string) representation,
// used in error messages and debugging.
func (v Value) String() string {
	if v.IsNull() {
		return fmt.Sprintf("%s(null)", v.kind)
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.raw)
}

// KindsOf returns the Kind tuple of a slice of values, used as a
// dispatch-table lookup key.
func KindsOf(values []Value) []Kind {
	kinds := make([]Kind, len(values))
	for i, val := range values {
		kinds[i] = val.Kind()
	}
	return kinds
}
