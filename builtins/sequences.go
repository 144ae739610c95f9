package builtins

import (
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerSequenceFunctions()
}

func registerSequenceFunctions() {
	Functions.RegisterVariadic("in", 2, 2, func(args []value.Value) (value.Value, error) {
		needle, haystack := args[0], args[1]
		if haystack.IsNull() {
			return value.NewBoolean(false), nil
		}
		switch haystack.Kind() {
		case value.List:
			for _, item := range haystack.ListVal() {
				if value.Equal(needle, item) {
					return value.NewBoolean(true), nil
				}
			}
			return value.NewBoolean(false), nil
		case value.String:
			if needle.IsNull() || needle.Kind() != value.String {
				return value.Value{}, errs.NewExecutionError("in requires a string needle against a string haystack")
			}
			return value.NewBoolean(containsSubstring(haystack.Str(), needle.Str())), nil
		default:
			return value.Value{}, errs.NewExecutionError("in is not defined for %s", haystack.Kind())
		}
	})

	Functions.RegisterVariadic("length", 1, 1, func(args []value.Value) (value.Value, error) {
		v := args[0]
		if v.IsNull() {
			return value.NullOf(value.Integer), nil
		}
		switch v.Kind() {
		case value.List:
			return value.NewInteger(int64(len(v.ListVal()))), nil
		case value.String:
			return value.NewInteger(int64(len([]rune(v.Str())))), nil
		case value.Record:
			return value.NewInteger(int64(len(v.RecordVal()))), nil
		default:
			return value.Value{}, errs.NewExecutionError("length is not defined for %s", v.Kind())
		}
	})

	Functions.RegisterVariadic("head", 1, 2, func(args []value.Value) (value.Value, error) {
		return headTail(args, true)
	})
	Functions.RegisterVariadic("tail", 1, 2, func(args []value.Value) (value.Value, error) {
		return headTail(args, false)
	})

	Functions.RegisterVariadic("concat", 1, -1, func(args []value.Value) (value.Value, error) {
		nonNull := make([]value.Value, 0, len(args))
		for _, a := range args {
			if !a.IsNull() {
				nonNull = append(nonNull, a)
			}
		}
		if len(nonNull) == 0 {
			// The reference implementation crashes on this case (an
			// empty reduce); returning a null of the shared kind is
			// the well-defined Go equivalent.
			return value.NullOf(args[0].Kind()), nil
		}
		switch nonNull[0].Kind() {
		case value.List:
			var out []value.Value
			for _, a := range nonNull {
				if a.Kind() != value.List {
					return value.Value{}, errs.NewExecutionError("concat requires arguments of the same kind")
				}
				out = append(out, a.ListVal()...)
			}
			return value.NewList(out), nil
		case value.String:
			s := ""
			for _, a := range nonNull {
				if a.Kind() != value.String {
					return value.Value{}, errs.NewExecutionError("concat requires arguments of the same kind")
				}
				s += a.Str()
			}
			return value.NewString(s), nil
		default:
			return value.Value{}, errs.NewExecutionError("concat is not defined for %s", nonNull[0].Kind())
		}
	})

	Functions.RegisterVariadic("slice", 2, 3, func(args []value.Value) (value.Value, error) {
		subject := args[0]
		if subject.IsNull() {
			return subject, nil
		}
		length, err := sequenceLength(subject)
		if err != nil {
			return value.Value{}, err
		}
		start := resolveIndex(args[1], 0, length)
		end := length
		if len(args) > 2 && !args[2].IsNull() {
			end = resolveIndex(args[2], length, length)
		}
		return sliceValue(subject, start, end)
	})

	Functions.RegisterVariadic("at", 2, 2, func(args []value.Value) (value.Value, error) {
		subject, idxArg := args[0], args[1]
		if subject.IsNull() || idxArg.IsNull() {
			return value.NullOf(elementKind(subject)), nil
		}
		length, err := sequenceLength(subject)
		if err != nil {
			return value.Value{}, err
		}
		idx := idxArg.Int()
		if idx < 0 {
			idx += int64(length)
		}
		if idx < 0 || idx >= int64(length) {
			return value.Value{}, errs.NewExecutionError("index out of range")
		}
		return elementAt(subject, int(idx))
	})
}

func headTail(args []value.Value, head bool) (value.Value, error) {
	subject := args[0]
	if subject.IsNull() {
		return subject, nil
	}
	length, err := sequenceLength(subject)
	if err != nil {
		return value.Value{}, err
	}
	n := int64(1)
	if len(args) > 1 && !args[1].IsNull() {
		n = args[1].Int()
	}
	if n < 0 {
		n = 0
	}
	if n > int64(length) {
		n = int64(length)
	}
	if head {
		return sliceValue(subject, 0, int(n))
	}
	return sliceValue(subject, length-int(n), length)
}

func sequenceLength(v value.Value) (int, error) {
	switch v.Kind() {
	case value.List:
		return len(v.ListVal()), nil
	case value.String:
		return len([]rune(v.Str())), nil
	default:
		return 0, errs.NewExecutionError("%s has no length", v.Kind())
	}
}

func elementKind(v value.Value) value.Kind {
	if v.Kind() == value.String {
		return value.String
	}
	return value.Untyped
}

func elementAt(v value.Value, idx int) (value.Value, error) {
	switch v.Kind() {
	case value.List:
		return v.ListVal()[idx], nil
	case value.String:
		return value.NewString(string([]rune(v.Str())[idx])), nil
	default:
		return value.Value{}, errs.NewExecutionError("%s cannot be indexed", v.Kind())
	}
}

// resolveIndex normalizes a possibly-negative, possibly-null bound
// against a sequence of the given length, clamping to [0, length].
func resolveIndex(v value.Value, def, length int) int {
	if v.IsNull() {
		return def
	}
	idx := v.Int()
	if idx < 0 {
		idx += int64(length)
	}
	if idx < 0 {
		idx = 0
	}
	if idx > int64(length) {
		idx = int64(length)
	}
	return int(idx)
}

func sliceValue(v value.Value, start, end int) (value.Value, error) {
	if start > end {
		start = end
	}
	switch v.Kind() {
	case value.List:
		items := v.ListVal()
		return value.NewList(append([]value.Value{}, items[start:end]...)), nil
	case value.String:
		runes := []rune(v.Str())
		return value.NewString(string(runes[start:end])), nil
	default:
		return value.Value{}, errs.NewExecutionError("%s cannot be sliced", v.Kind())
	}
}

func containsSubstring(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	hr, nr := []rune(haystack), []rune(needle)
	if len(nr) > len(hr) {
		return false
	}
	for i := 0; i+len(nr) <= len(hr); i++ {
		match := true
		for j := range nr {
			if hr[i+j] != nr[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
