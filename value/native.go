package value

import (
	"reflect"
	"time"

	"github.com/spf13/cast"

	"github.com/bexl-lang/bexl/errs"
)

// FromNative maps a host-provided Go value to its BEXL Value by the
// fixed priority table from the specification: nil maps to untyped
// null; already-constructed Values pass through; then an exact
// bool/time.Time/time.Duration match (ahead of the generic numeric-kind
// checks, since a bool or a duration would otherwise satisfy Go's own
// numeric-conversion machinery); then integer-kind values,
// then float-kind values, then strings; then any slice/array recurses
// element-wise into a list; then any map with string-like keys recurses
// into a record. Anything else fails.
func FromNative(v any) (Value, error) {
	if v == nil {
		return Null(), nil
	}
	if bv, ok := v.(Value); ok {
		return bv, nil
	}
	switch t := v.(type) {
	case bool:
		return NewBoolean(t), nil
	case time.Time:
		return NewDateTime(t), nil
	case time.Duration:
		return NewTime(t), nil
	}

	if i, err := cast.ToInt64E(v); err == nil && isIntegerKind(v) {
		return NewInteger(i), nil
	}
	if f, err := cast.ToFloat64E(v); err == nil && isFloatKind(v) {
		return NewFloat(f), nil
	}
	if s, ok := v.(string); ok {
		return NewString(s), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem, err := FromNative(rv.Index(i).Interface())
			if err != nil {
				return Value{}, err
			}
			out[i] = elem
		}
		return NewList(out), nil
	case reflect.Map:
		out := make(map[string]Value, rv.Len())
		for _, key := range rv.MapKeys() {
			k, err := cast.ToStringE(key.Interface())
			if err != nil {
				return Value{}, errs.NewExecutionError("record keys must be strings")
			}
			elem, err := FromNative(rv.MapIndex(key).Interface())
			if err != nil {
				return Value{}, err
			}
			out[k] = elem
		}
		return NewRecord(out), nil
	}

	return Value{}, errs.NewExecutionError("cannot represent %T as a BEXL value", v)
}

func isIntegerKind(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func isFloatKind(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// ToNative unwraps a Value into a plain host representation: scalars
// become their corresponding Go primitive (or nil for any null), dates
// and datetimes become time.Time, times become time.Duration, lists
// become []any, and records become map[string]any, recursing through
// nested lists and records.
func ToNative(v Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case Integer:
		return v.Int()
	case Float:
		return v.Float64()
	case Boolean:
		return v.Bool()
	case String:
		return v.Str()
	case Date:
		return v.DateVal()
	case Time:
		return v.TimeVal()
	case DateTime:
		return v.DateTimeVal()
	case List:
		elems := v.ListVal()
		out := make([]any, len(elems))
		for i, elem := range elems {
			out[i] = ToNative(elem)
		}
		return out
	case Record:
		fields := v.RecordVal()
		out := make(map[string]any, len(fields))
		for k, val := range fields {
			out[k] = ToNative(val)
		}
		return out
	default:
		return nil
	}
}
