package builtins

import (
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/lexer"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerLogicalOperators()
	registerControlFlow()
}

func castBool(v value.Value) (bool, error) {
	cast, err := value.Cast(v, value.Boolean)
	if err != nil {
		return false, err
	}
	if cast.IsNull() {
		return false, nil
	}
	return cast.Bool(), nil
}

func registerLogicalOperators() {
	Functions.RegisterVariadic("not", 1, 1, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return value.NullOf(value.Boolean), nil
		}
		b, err := castBool(args[0])
		if err != nil {
			return value.Value{}, err
		}
		return value.NewBoolean(!b), nil
	})
	Unary.Register(string(lexer.BANG), []value.Kind{value.Boolean}, func(args []value.Value) (value.Value, error) {
		return Functions.Call("not", args)
	})

	logicalPair := func(name string, fn func(a, b bool) bool) {
		impl := func(args []value.Value) (value.Value, error) {
			left, right := args[0], args[1]
			if left.IsNull() || right.IsNull() {
				return value.NullOf(value.Boolean), nil
			}
			a, err := castBool(left)
			if err != nil {
				return value.Value{}, err
			}
			b, err := castBool(right)
			if err != nil {
				return value.Value{}, err
			}
			return value.NewBoolean(fn(a, b)), nil
		}
		Functions.RegisterVariadic(name, 2, 2, impl)
	}
	logicalPair("and", func(a, b bool) bool { return a && b })
	logicalPair("or", func(a, b bool) bool { return a || b })
	logicalPair("xor", func(a, b bool) bool { return a != b })

	Binary.RegisterVariadic(string(lexer.AMPERSAND), 2, 2, func(args []value.Value) (value.Value, error) {
		return Functions.Call("and", args)
	})
	Binary.RegisterVariadic(string(lexer.PIPE), 2, 2, func(args []value.Value) (value.Value, error) {
		return Functions.Call("or", args)
	})
	Binary.RegisterVariadic(string(lexer.CARET), 2, 2, func(args []value.Value) (value.Value, error) {
		return Functions.Call("xor", args)
	})
}

// registerControlFlow registers if(cond1, val1, cond2, val2, ..., else)
// and switch(value, key1, result1, ..., else) as variadic functions: both
// require an odd/even argument count respectively, enforced here rather
// than by the signature-table mechanism since their arity is open-ended.
func registerControlFlow() {
	Functions.RegisterVariadic("if", 3, -1, func(args []value.Value) (value.Value, error) {
		if len(args)%2 == 0 {
			return value.Value{}, errs.NewExecutionError("if requires an odd number of arguments")
		}
		for i := 0; i+1 < len(args); i += 2 {
			cond, err := castBool(args[i])
			if err != nil {
				return value.Value{}, err
			}
			if cond {
				return args[i+1], nil
			}
		}
		return args[len(args)-1], nil
	})

	Functions.RegisterVariadic("switch", 4, -1, func(args []value.Value) (value.Value, error) {
		if len(args)%2 != 0 {
			return value.Value{}, errs.NewExecutionError("switch requires an even number of arguments")
		}
		subject := args[0]
		for i := 1; i+1 < len(args); i += 2 {
			if value.Equal(subject, args[i]) {
				return args[i+1], nil
			}
		}
		return args[len(args)-1], nil
	})
}
