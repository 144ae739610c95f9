package builtins

import (
	"strings"

	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerStringFunctions()
}

func registerStringFunctions() {
	unaryString := func(name string, fn func(string) string) {
		Functions.Register(name, []value.Kind{value.String}, func(args []value.Value) (value.Value, error) {
			if args[0].IsNull() {
				return args[0], nil
			}
			return value.NewString(fn(args[0].Str())), nil
		})
	}
	unaryString("upper", strings.ToUpper)
	unaryString("lower", strings.ToLower)
	unaryString("trim", strings.TrimSpace)
	unaryString("ltrim", func(s string) string { return strings.TrimLeft(s, " \t\n\r") })
	unaryString("rtrim", func(s string) string { return strings.TrimRight(s, " \t\n\r") })

	Functions.Register("replace", []value.Kind{value.String, value.String, value.String}, func(args []value.Value) (value.Value, error) {
		subject, old, new := args[0], args[1], args[2]
		if subject.IsNull() {
			return subject, nil
		}
		if old.IsNull() || new.IsNull() {
			return value.NullOf(value.String), nil
		}
		return value.NewString(strings.ReplaceAll(subject.Str(), old.Str(), new.Str())), nil
	})

	Functions.Register("repeat", []value.Kind{value.String, value.Integer}, func(args []value.Value) (value.Value, error) {
		subject, count := args[0], args[1]
		if subject.IsNull() || count.IsNull() {
			return value.NullOf(value.String), nil
		}
		n := count.Int()
		if n < 0 {
			return value.Value{}, errs.NewExecutionError("repeat count cannot be negative")
		}
		return value.NewString(strings.Repeat(subject.Str(), int(n))), nil
	})
}
