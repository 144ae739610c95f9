package builtins

import (
	"math"
	"time"

	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerTemporalConstructors()
	registerTemporalAccessors()
	registerTemporalArithmetic()
}

func orDefaultInt(v value.Value, def int64) int64 {
	if v.IsNull() {
		return def
	}
	return v.Int()
}

func registerTemporalConstructors() {
	Functions.Register("date", []value.Kind{value.Integer, value.Integer, value.Integer}, func(args []value.Value) (value.Value, error) {
		year := orDefaultInt(args[0], 1)
		month := orDefaultInt(args[1], 1)
		day := orDefaultInt(args[2], 1)
		t, err := makeDate(year, month, day)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewDate(t), nil
	})

	timeCtor := func(args []value.Value) (value.Value, error) {
		hour := orDefaultInt(args[0], 0)
		minute := orDefaultInt(args[1], 0)
		second := orDefaultInt(args[2], 0)
		var millis int64
		if len(args) > 3 {
			millis = orDefaultInt(args[3], 0)
		}
		d, err := makeTimeOfDay(hour, minute, second, millis)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewTime(d), nil
	}
	Functions.Register("time", []value.Kind{value.Integer, value.Integer, value.Integer}, timeCtor)
	Functions.Register("time", []value.Kind{value.Integer, value.Integer, value.Integer, value.Integer}, timeCtor)

	dateTimeCtor := func(args []value.Value) (value.Value, error) {
		year := orDefaultInt(args[0], 1)
		month := orDefaultInt(args[1], 1)
		day := orDefaultInt(args[2], 1)
		hour := orDefaultInt(args[3], 0)
		minute := orDefaultInt(args[4], 0)
		second := orDefaultInt(args[5], 0)
		var millis int64
		if len(args) > 6 {
			millis = orDefaultInt(args[6], 0)
		}
		date, err := makeDate(year, month, day)
		if err != nil {
			return value.Value{}, err
		}
		tod, err := makeTimeOfDay(hour, minute, second, millis)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewDateTime(date.Add(tod)), nil
	}
	sixInts := []value.Kind{value.Integer, value.Integer, value.Integer, value.Integer, value.Integer, value.Integer}
	sevenInts := append(append([]value.Kind{}, sixInts...), value.Integer)
	Functions.Register("datetime", sixInts, dateTimeCtor)
	Functions.Register("datetime", sevenInts, dateTimeCtor)

	Functions.RegisterVariadic("today", 0, 0, func(args []value.Value) (value.Value, error) {
		now := time.Now()
		return value.NewDate(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())), nil
	})
	Functions.RegisterVariadic("now", 0, 0, func(args []value.Value) (value.Value, error) {
		return value.NewDateTime(time.Now()), nil
	})

	// date()/time()/datetime() also act as cast-invokers for every other
	// argument kind, registered alongside the constructors above under
	// the same dispatch name.
	for _, k := range allKinds {
		k := k
		Functions.Register("date", []value.Kind{k}, castFunc(value.Date))
		Functions.Register("time", []value.Kind{k}, castFunc(value.Time))
		Functions.Register("datetime", []value.Kind{k}, castFunc(value.DateTime))
	}
}

var allKinds = []value.Kind{
	value.Integer, value.Float, value.String, value.Boolean,
	value.Date, value.Time, value.DateTime, value.List, value.Record, value.Untyped,
}

func castFunc(target value.Kind) func([]value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		return value.Cast(args[0], target)
	}
}

func makeDate(year, month, day int64) (time.Time, error) {
	t := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	if int64(t.Year()) != year || int64(t.Month()) != month || int64(t.Day()) != day {
		return time.Time{}, errs.NewExecutionError("day is out of range for month")
	}
	return t, nil
}

func makeTimeOfDay(hour, minute, second, millis int64) (time.Duration, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || millis < 0 || millis > 999 {
		return 0, errs.NewExecutionError("time component out of range")
	}
	return time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

func registerTemporalAccessors() {
	reg := func(name string, fn func(t time.Time) int64) {
		Functions.Register(name, []value.Kind{value.Date}, func(args []value.Value) (value.Value, error) {
			if args[0].IsNull() {
				return value.NullOf(value.Integer), nil
			}
			return value.NewInteger(fn(args[0].DateVal())), nil
		})
		Functions.Register(name, []value.Kind{value.DateTime}, func(args []value.Value) (value.Value, error) {
			if args[0].IsNull() {
				return value.NullOf(value.Integer), nil
			}
			return value.NewInteger(fn(args[0].DateTimeVal())), nil
		})
	}
	reg("year", func(t time.Time) int64 { return int64(t.Year()) })
	reg("month", func(t time.Time) int64 { return int64(t.Month()) })
	reg("day", func(t time.Time) int64 { return int64(t.Day()) })

	regTime := func(name string, fn func(d time.Duration) int64) {
		Functions.Register(name, []value.Kind{value.Time}, func(args []value.Value) (value.Value, error) {
			if args[0].IsNull() {
				return value.NullOf(value.Integer), nil
			}
			return value.NewInteger(fn(args[0].TimeVal())), nil
		})
		Functions.Register(name, []value.Kind{value.DateTime}, func(args []value.Value) (value.Value, error) {
			if args[0].IsNull() {
				return value.NullOf(value.Integer), nil
			}
			t := args[0].DateTimeVal()
			midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
			return value.NewInteger(fn(t.Sub(midnight))), nil
		})
	}
	regTime("hour", func(d time.Duration) int64 { return int64(d / time.Hour) })
	regTime("minute", func(d time.Duration) int64 { return int64(d/time.Minute) % 60 })
	regTime("second", func(d time.Duration) int64 { return int64(d/time.Second) % 60 })
	regTime("millisecond", func(d time.Duration) int64 { return int64(d/time.Millisecond) % 1000 })
}

func registerTemporalArithmetic() {
	for _, sig := range dateAddPairs {
		sig := sig
		Functions.Register("add", sig[:], func(args []value.Value) (value.Value, error) {
			left, right := args[0], args[1]
			var temporal, mod value.Value
			if left.Kind() == value.Date || left.Kind() == value.DateTime || left.Kind() == value.Time {
				temporal, mod = left, right
			} else {
				temporal, mod = right, left
			}
			if temporal.IsNull() || mod.IsNull() {
				return value.NullOf(temporal.Kind()), nil
			}
			switch temporal.Kind() {
			case value.Date:
				days := toFloat(mod)
				return value.NewDate(temporal.DateVal().Add(time.Duration(days*24) * time.Hour)), nil
			case value.DateTime:
				days := toFloat(mod)
				return value.NewDateTime(temporal.DateTimeVal().Add(time.Duration(days * float64(24*time.Hour)))), nil
			case value.Time:
				seconds := toFloat(mod)
				total := temporal.TimeVal() + time.Duration(seconds*float64(time.Second))
				return value.NewTime(wrapTimeOfDay(total)), nil
			default:
				return value.Value{}, errs.NewExecutionError("add is not defined for this combination")
			}
		})
	}

	for _, sig := range dateSubtractPairs {
		sig := sig
		Functions.Register("subtract", sig[:], func(args []value.Value) (value.Value, error) {
			left, right := args[0], args[1]
			switch {
			case left.Kind() == value.Time && right.Kind() == value.Time:
				if left.IsNull() || right.IsNull() {
					return value.NullOf(value.Float), nil
				}
				return value.NewFloat((left.TimeVal() - right.TimeVal()).Seconds()), nil
			case left.Kind() == value.Time:
				if left.IsNull() || right.IsNull() {
					return value.NullOf(value.Time), nil
				}
				seconds := toFloat(right)
				total := left.TimeVal() - time.Duration(seconds*float64(time.Second))
				return value.NewTime(wrapTimeOfDay(total)), nil
			case isTemporalDateKind(right.Kind()):
				resultKind := value.Integer
				if left.Kind() == value.DateTime || right.Kind() == value.DateTime {
					resultKind = value.Float
				}
				if left.IsNull() || right.IsNull() {
					return value.NullOf(resultKind), nil
				}
				diffSeconds := asDateTime(left).Sub(asDateTime(right)).Seconds()
				diffDays := diffSeconds / 86400.0
				if resultKind == value.Integer {
					return value.NewInteger(int64(diffDays)), nil
				}
				return value.NewFloat(diffDays), nil
			default:
				if left.IsNull() || right.IsNull() {
					return value.NullOf(left.Kind()), nil
				}
				days := toFloat(right)
				if left.Kind() == value.Date {
					days = math.Ceil(days)
					return value.NewDate(left.DateVal().AddDate(0, 0, -int(days))), nil
				}
				return value.NewDateTime(left.DateTimeVal().Add(-time.Duration(days * float64(24*time.Hour)))), nil
			}
		})
	}
}

func isTemporalDateKind(k value.Kind) bool { return k == value.Date || k == value.DateTime }

func asDateTime(v value.Value) time.Time {
	if v.Kind() == value.Date {
		return v.DateVal()
	}
	return v.DateTimeVal()
}

// wrapTimeOfDay normalizes a duration that may have crossed midnight
// back into the [0, 24h) range, matching the reference implementation's
// use of a full datetime internally to avoid wraparound bugs.
func wrapTimeOfDay(d time.Duration) time.Duration {
	day := 24 * time.Hour
	d %= day
	if d < 0 {
		d += day
	}
	return d
}
