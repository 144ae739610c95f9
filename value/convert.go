package value

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/bexl-lang/bexl/errs"
)

// dateLayout, timeLayouts and dateTimeLayouts mirror the exact format
// strings the reference implementation tries, in order, when parsing a
// string into a temporal kind.
const dateLayout = "2006-01-02"

var timeLayouts = []string{
	"15:04:05.000",
	"15:04:05",
	"15:04",
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Cast converts v to the given target kind per the conversion lattice.
// Identity and null conversions always succeed; every other cell not
// listed in the lattice fails with a ConversionError. Only the seven
// scalar/temporal kinds are valid cast targets — list, record, and
// untyped are never cast destinations (they are constructed by their
// own builtins instead).
func Cast(v Value, target Kind) (Value, error) {
	if v.IsNull() {
		return NullOf(target), nil
	}
	if v.Kind() == target {
		return v, nil
	}

	switch target {
	case Integer:
		return castToInteger(v)
	case Float:
		return castToFloat(v)
	case Boolean:
		return castToBoolean(v)
	case String:
		return castToString(v)
	case Date:
		return castToDate(v)
	case Time:
		return castToTime(v)
	case DateTime:
		return castToDateTime(v)
	default:
		return Value{}, errs.NewConversionError(v, target)
	}
}

func conversionErr(v Value, target Kind) error {
	return errs.NewConversionError(v, target)
}

func castToInteger(v Value) (Value, error) {
	switch v.Kind() {
	case Float:
		return NewInteger(int64(v.Float64())), nil
	case Boolean:
		if v.Bool() {
			return NewInteger(1), nil
		}
		return NewInteger(0), nil
	case String:
		i, err := cast.ToInt64E(v.Str())
		if err != nil {
			return Value{}, conversionErr(v, Integer)
		}
		return NewInteger(i), nil
	default:
		return Value{}, conversionErr(v, Integer)
	}
}

func castToFloat(v Value) (Value, error) {
	switch v.Kind() {
	case Integer:
		return NewFloat(float64(v.Int())), nil
	case Boolean:
		if v.Bool() {
			return NewFloat(1.0), nil
		}
		return NewFloat(0.0), nil
	case String:
		f, err := cast.ToFloat64E(v.Str())
		if err != nil {
			return Value{}, conversionErr(v, Float)
		}
		return NewFloat(f), nil
	default:
		return Value{}, conversionErr(v, Float)
	}
}

func castToBoolean(v Value) (Value, error) {
	switch v.Kind() {
	case Integer:
		return NewBoolean(v.Int() != 0), nil
	case Float:
		return NewBoolean(v.Float64() != 0.0), nil
	case String:
		s := v.Str()
		if s == "" || strings.EqualFold(s, "false") {
			return NewBoolean(false), nil
		}
		return NewBoolean(true), nil
	case Date, Time, DateTime:
		return NewBoolean(true), nil
	case List, Record:
		return NewBoolean(!v.IsEmpty()), nil
	default:
		return Value{}, conversionErr(v, Boolean)
	}
}

func castToString(v Value) (Value, error) {
	switch v.Kind() {
	case Integer:
		return NewString(strconv.FormatInt(v.Int(), 10)), nil
	case Float:
		return NewString(strconv.FormatFloat(v.Float64(), 'f', -1, 64)), nil
	case Boolean:
		if v.Bool() {
			return NewString("True"), nil
		}
		return NewString("False"), nil
	case Date:
		return NewString(v.DateVal().Format(dateLayout)), nil
	case Time:
		return NewString(formatTimeOfDay(v.TimeVal())), nil
	case DateTime:
		return NewString(formatDateTime(v.DateTimeVal())), nil
	default:
		return Value{}, conversionErr(v, String)
	}
}

func castToDate(v Value) (Value, error) {
	switch v.Kind() {
	case String:
		t, err := time.Parse(dateLayout, v.Str())
		if err != nil {
			return Value{}, conversionErr(v, Date)
		}
		return NewDate(t), nil
	case DateTime:
		return NewDate(v.DateTimeVal()), nil
	default:
		return Value{}, conversionErr(v, Date)
	}
}

func castToTime(v Value) (Value, error) {
	switch v.Kind() {
	case String:
		for _, layout := range timeLayouts {
			t, err := time.Parse(layout, v.Str())
			if err == nil {
				return NewTime(durationSinceMidnight(t)), nil
			}
		}
		return Value{}, conversionErr(v, Time)
	case DateTime:
		dt := v.DateTimeVal()
		midnight := time.Date(dt.Year(), dt.Month(), dt.Day(), 0, 0, 0, 0, dt.Location())
		return NewTime(dt.Sub(midnight)), nil
	default:
		return Value{}, conversionErr(v, Time)
	}
}

func castToDateTime(v Value) (Value, error) {
	switch v.Kind() {
	case String:
		for _, layout := range dateTimeLayouts {
			t, err := time.Parse(layout, v.Str())
			if err == nil {
				return NewDateTime(t), nil
			}
		}
		return Value{}, conversionErr(v, DateTime)
	case Date:
		return NewDateTime(v.DateVal()), nil
	default:
		return Value{}, conversionErr(v, DateTime)
	}
}

func durationSinceMidnight(t time.Time) time.Duration {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.Sub(midnight)
}

func formatTimeOfDay(d time.Duration) string {
	ms := d.Milliseconds()
	hours := ms / 3600000
	ms %= 3600000
	minutes := ms / 60000
	ms %= 60000
	seconds := ms / 1000
	millis := ms % 1000
	if millis != 0 {
		return pad2(int(hours)) + ":" + pad2(int(minutes)) + ":" + pad2(int(seconds)) + "." + pad3(int(millis))
	}
	return pad2(int(hours)) + ":" + pad2(int(minutes)) + ":" + pad2(int(seconds))
}

func formatDateTime(t time.Time) string {
	base := t.Format("2006-01-02T15:04:05")
	if ms := t.Nanosecond() / 1e6; ms != 0 {
		return base + "." + pad3(ms)
	}
	return base
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func pad3(v int) string {
	s := strconv.Itoa(v)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
