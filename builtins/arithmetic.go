package builtins

import (
	"math"

	"github.com/bexl-lang/bexl/dispatch"
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/lexer"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerArithmeticOperators()
	registerArithmeticFunctions()
}

func registerArithmeticOperators() {
	Unary.Register(string(lexer.MINUS), []value.Kind{value.Integer}, func(args []value.Value) (value.Value, error) {
		return Functions.Call("negative", args)
	})
	Unary.Register(string(lexer.MINUS), []value.Kind{value.Float}, func(args []value.Value) (value.Value, error) {
		return Functions.Call("negative", args)
	})

	arith := func(name string, sig [2]value.Kind) {
		Binary.Register(name, sig[:], func(args []value.Value) (value.Value, error) {
			return Functions.Call(arithFuncFor(name), args)
		})
	}
	for _, sig := range numericPairs {
		arith(string(lexer.PLUS), sig)
		arith(string(lexer.MINUS), sig)
		arith(string(lexer.STAR), sig)
		arith(string(lexer.SLASH), sig)
		arith(string(lexer.PERCENT), sig)
		arith(string(lexer.STAR_STAR), sig)
	}
	for _, sig := range dateAddPairs {
		arith(string(lexer.PLUS), sig)
	}
	for _, sig := range dateSubtractPairs {
		arith(string(lexer.MINUS), sig)
	}
}

func arithFuncFor(tokenName string) string {
	switch lexer.TokenType(tokenName) {
	case lexer.PLUS:
		return "add"
	case lexer.MINUS:
		return "subtract"
	case lexer.STAR:
		return "multiply"
	case lexer.SLASH:
		return "divide"
	case lexer.PERCENT:
		return "modulo"
	case lexer.STAR_STAR:
		return "pow"
	default:
		return ""
	}
}

var numericPairs = [][2]value.Kind{
	{value.Integer, value.Integer},
	{value.Float, value.Integer},
	{value.Integer, value.Float},
	{value.Float, value.Float},
}

// dateAddPairs mirrors add_date/add_time's signature lists: the
// temporal operand may appear on either side of '+'.
var dateAddPairs = [][2]value.Kind{
	{value.Date, value.Integer}, {value.Date, value.Float},
	{value.Integer, value.Date}, {value.Float, value.Date},
	{value.DateTime, value.Integer}, {value.DateTime, value.Float},
	{value.Integer, value.DateTime}, {value.Float, value.DateTime},
	{value.Time, value.Integer}, {value.Time, value.Float},
	{value.Integer, value.Time}, {value.Float, value.Time},
}

// dateSubtractPairs mirrors subtract_date/subtract_dates/subtract_time/
// subtract_times: unlike addition, the temporal operand is always on
// the left.
var dateSubtractPairs = [][2]value.Kind{
	{value.Date, value.Integer}, {value.Date, value.Float},
	{value.DateTime, value.Integer}, {value.DateTime, value.Float},
	{value.Date, value.Date}, {value.Date, value.DateTime},
	{value.DateTime, value.Date}, {value.DateTime, value.DateTime},
	{value.Time, value.Integer}, {value.Time, value.Float},
	{value.Time, value.Time},
}

func isNumeric(k value.Kind) bool { return k == value.Integer || k == value.Float }

func registerArithmeticFunctions() {
	Functions.Register("negative", []value.Kind{value.Integer}, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return args[0], nil
		}
		return value.NewInteger(-args[0].Int()), nil
	})
	Functions.Register("negative", []value.Kind{value.Float}, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return args[0], nil
		}
		return value.NewFloat(-args[0].Float64()), nil
	})

	Functions.Register("add", []value.Kind{value.Integer, value.Integer}, intBinOp(func(a, b int64) int64 { return a + b }))
	registerFloatNumeric("add", func(a, b float64) float64 { return a + b })

	Functions.Register("subtract", []value.Kind{value.Integer, value.Integer}, intBinOp(func(a, b int64) int64 { return a - b }))
	registerFloatNumeric("subtract", func(a, b float64) float64 { return a - b })

	Functions.Register("multiply", []value.Kind{value.Integer, value.Integer}, intBinOp(func(a, b int64) int64 { return a * b }))
	registerFloatNumeric("multiply", func(a, b float64) float64 { return a * b })

	Functions.Register("modulo", []value.Kind{value.Integer, value.Integer}, func(args []value.Value) (value.Value, error) {
		left, right := args[0], args[1]
		if left.IsNull() || right.IsNull() {
			return value.NullOf(value.Integer), nil
		}
		if right.Int() == 0 {
			return value.Value{}, errs.NewExecutionError("cannot divide by zero")
		}
		return value.NewInteger(left.Int() % right.Int()), nil
	})
	registerFloatNumeric("modulo", math.Mod)

	Functions.Register("pow", []value.Kind{value.Integer, value.Integer}, intBinOp(intPow))
	registerFloatNumeric("pow", math.Pow)

	for _, sig := range numericPairs {
		Functions.Register("divide", sig[:], func(args []value.Value) (value.Value, error) {
			left, right := args[0], args[1]
			if left.IsNull() || right.IsNull() {
				return value.NullOf(value.Float), nil
			}
			rightF := toFloat(right)
			if rightF == 0 {
				return value.Value{}, errs.NewExecutionError("cannot divide by zero")
			}
			return value.NewFloat(toFloat(left) / rightF), nil
		})
	}

	Functions.Register("abs", []value.Kind{value.Integer}, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return args[0], nil
		}
		v := args[0].Int()
		if v < 0 {
			v = -v
		}
		return value.NewInteger(v), nil
	})
	Functions.Register("abs", []value.Kind{value.Float}, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return args[0], nil
		}
		return value.NewFloat(math.Abs(args[0].Float64())), nil
	})

	registerSimple("ceil", func(f float64) float64 { return math.Ceil(f) }, value.Integer)
	registerSimple("floor", func(f float64) float64 { return math.Floor(f) }, value.Integer)
	registerSimple("trunc", math.Trunc, value.Integer)
	registerSimple("sin", math.Sin, value.Float)
	registerSimple("cos", math.Cos, value.Float)
	registerSimple("tan", math.Tan, value.Float)
	registerSimple("sqrt", math.Sqrt, value.Float)

	piVal := value.NewFloat(math.Pi)
	Functions.RegisterVariadic("pi", 0, 0, func(args []value.Value) (value.Value, error) { return piVal, nil })
	eVal := value.NewFloat(math.E)
	Functions.RegisterVariadic("e", 0, 0, func(args []value.Value) (value.Value, error) { return eVal, nil })
	Functions.RegisterVariadic("random", 0, 0, func(args []value.Value) (value.Value, error) {
		return value.NewFloat(rng.Float64()), nil
	})

	for _, sig := range numericPairs {
		Functions.Register("log", sig[:], func(args []value.Value) (value.Value, error) {
			v, base := args[0], args[1]
			if v.IsNull() || base.IsNull() {
				return value.NullOf(value.Float), nil
			}
			baseF := toFloat(base)
			if baseF == 10 {
				return value.NewFloat(math.Log10(toFloat(v))), nil
			}
			return value.NewFloat(math.Log(toFloat(v)) / math.Log(baseF)), nil
		})
		Functions.Register("hypot", sig[:], func(args []value.Value) (value.Value, error) {
			x, y := args[0], args[1]
			if x.IsNull() || y.IsNull() {
				return value.NullOf(value.Float), nil
			}
			return value.NewFloat(math.Hypot(toFloat(x), toFloat(y))), nil
		})
	}

	Functions.Register("round", []value.Kind{value.Integer}, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return args[0], nil
		}
		return value.NewInteger(int64(bankersRound(float64(args[0].Int()), 0))), nil
	})
	Functions.Register("round", []value.Kind{value.Float}, func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return args[0], nil
		}
		return value.NewInteger(int64(bankersRound(args[0].Float64(), 0))), nil
	})
	Functions.Register("round", []value.Kind{value.Integer, value.Integer}, func(args []value.Value) (value.Value, error) {
		return roundWithPrecision(float64(args[0].Int()), args[0], args[1])
	})
	Functions.Register("round", []value.Kind{value.Float, value.Integer}, func(args []value.Value) (value.Value, error) {
		return roundWithPrecision(args[0].Float64(), args[0], args[1])
	})
}

func roundWithPrecision(v float64, orig, precision value.Value) (value.Value, error) {
	if orig.IsNull() || precision.IsNull() {
		return value.NullOf(value.Float), nil
	}
	return value.NewFloat(bankersRound(v, precision.Int())), nil
}

// bankersRound implements round-half-to-even at the given number of
// decimal places, matching the reference implementation's use of
// decimal.ROUND_HALF_EVEN.
func bankersRound(v float64, precision int64) float64 {
	scale := math.Pow(10, float64(precision))
	scaled := v * scale
	floor := math.Floor(scaled)
	diff := scaled - floor
	var rounded float64
	switch {
	case diff < 0.5:
		rounded = floor
	case diff > 0.5:
		rounded = floor + 1
	default:
		if math.Mod(floor, 2) == 0 {
			rounded = floor
		} else {
			rounded = floor + 1
		}
	}
	return rounded / scale
}

func registerSimple(name string, fn func(float64) float64, resultKind value.Kind) {
	impl := func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() {
			return value.NullOf(resultKind), nil
		}
		result := fn(toFloat(args[0]))
		if resultKind == value.Integer {
			return value.NewInteger(int64(result)), nil
		}
		return value.NewFloat(result), nil
	}
	Functions.Register(name, []value.Kind{value.Integer}, impl)
	Functions.Register(name, []value.Kind{value.Float}, impl)
}

func registerFloatNumeric(name string, fn func(a, b float64) float64) {
	for _, sig := range []([2]value.Kind){
		{value.Float, value.Integer},
		{value.Integer, value.Float},
		{value.Float, value.Float},
	} {
		Functions.Register(name, sig[:], func(args []value.Value) (value.Value, error) {
			if args[0].IsNull() || args[1].IsNull() {
				return value.NullOf(value.Float), nil
			}
			return value.NewFloat(fn(toFloat(args[0]), toFloat(args[1]))), nil
		})
	}
}

func intBinOp(fn func(a, b int64) int64) dispatch.Impl {
	return func(args []value.Value) (value.Value, error) {
		if args[0].IsNull() || args[1].IsNull() {
			return value.NullOf(value.Integer), nil
		}
		return value.NewInteger(fn(args[0].Int(), args[1].Int())), nil
	}
}

func intPow(a, b int64) int64 {
	result := int64(1)
	for i := int64(0); i < b; i++ {
		result *= a
	}
	return result
}

func toFloat(v value.Value) float64 {
	if v.Kind() == value.Integer {
		return float64(v.Int())
	}
	return v.Float64()
}
