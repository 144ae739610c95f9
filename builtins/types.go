package builtins

import (
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerCastInvokers()
	registerTypePredicates()
	registerConstructors()
}

// registerCastInvokers registers integer()/float()/boolean()/string() as
// single-argument cast-invokers over every source kind, the same
// dual-registration pattern date()/time()/datetime() use in temporal.go.
func registerCastInvokers() {
	for _, k := range allKinds {
		k := k
		Functions.Register("integer", []value.Kind{k}, castFunc(value.Integer))
		Functions.Register("float", []value.Kind{k}, castFunc(value.Float))
		Functions.Register("boolean", []value.Kind{k}, castFunc(value.Boolean))
		Functions.Register("string", []value.Kind{k}, castFunc(value.String))
	}
}

func registerTypePredicates() {
	predicate := func(name string, target value.Kind) {
		Functions.RegisterVariadic(name, 1, 1, func(args []value.Value) (value.Value, error) {
			return value.NewBoolean(args[0].Kind() == target), nil
		})
	}
	predicate("isInteger", value.Integer)
	predicate("isFloat", value.Float)
	predicate("isBoolean", value.Boolean)
	predicate("isString", value.String)
	predicate("isDate", value.Date)
	predicate("isTime", value.Time)
	predicate("isDateTime", value.DateTime)
	predicate("isList", value.List)
	predicate("isRecord", value.Record)

	Functions.RegisterVariadic("isNull", 1, 1, func(args []value.Value) (value.Value, error) {
		return value.NewBoolean(args[0].IsNull()), nil
	})
}

func registerConstructors() {
	Functions.RegisterVariadic("list", 0, -1, func(args []value.Value) (value.Value, error) {
		return value.NewList(append([]value.Value{}, args...)), nil
	})

	Functions.RegisterVariadic("record", 0, -1, func(args []value.Value) (value.Value, error) {
		if len(args)%2 != 0 {
			return value.Value{}, errs.NewExecutionError("record requires an even number of arguments")
		}
		fields := make(map[string]value.Value, len(args)/2)
		for i := 0; i+1 < len(args); i += 2 {
			key := args[i]
			if key.IsNull() || key.Kind() != value.String {
				return value.Value{}, errs.NewExecutionError("record keys must be non-null strings")
			}
			fields[key.Str()] = args[i+1]
		}
		return value.NewRecord(fields), nil
	})

	Functions.RegisterVariadic("property", 2, 2, func(args []value.Value) (value.Value, error) {
		subject, key := args[0], args[1]
		if subject.IsNull() {
			return value.NullOf(value.Untyped), nil
		}
		if subject.Kind() != value.Record {
			return value.Value{}, errs.NewExecutionError("property requires a record")
		}
		if key.IsNull() || key.Kind() != value.String {
			return value.Value{}, errs.NewExecutionError("property key must be a non-null string")
		}
		val, ok := subject.RecordVal()[key.Str()]
		if !ok {
			return value.Value{}, errs.NewExecutionError("record has no property %q", key.Str())
		}
		return val, nil
	})

	Functions.RegisterVariadic("coalesce", 1, -1, func(args []value.Value) (value.Value, error) {
		for _, a := range args {
			if !a.IsNull() {
				return a, nil
			}
		}
		return value.Null(), nil
	})
}
