package builtins

import (
	"github.com/bexl-lang/bexl/lexer"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerComparisonOperators()
	registerBetween()
}

// comparisonOperators maps each comparison dispatch name to the
// predicate over Compare's three-way result.
var comparisonOperators = map[string]func(cmp int) bool{
	"equal":         func(cmp int) bool { return cmp == 0 },
	"not_equal":     func(cmp int) bool { return cmp != 0 },
	"greater":       func(cmp int) bool { return cmp > 0 },
	"greater_equal": func(cmp int) bool { return cmp >= 0 },
	"lesser":        func(cmp int) bool { return cmp < 0 },
	"lesser_equal":  func(cmp int) bool { return cmp <= 0 },
}

var comparisonTokens = map[string]lexer.TokenType{
	"equal":         lexer.EQUAL_EQUAL,
	"not_equal":     lexer.BANG_EQUAL,
	"greater":       lexer.GREATER,
	"greater_equal": lexer.GREATER_EQUAL,
	"lesser":        lexer.LESSER,
	"lesser_equal":  lexer.LESSER_EQUAL,
}

func registerComparisonOperators() {
	for name, predicate := range comparisonOperators {
		name, predicate := name, predicate
		impl := func(args []value.Value) (value.Value, error) {
			left, right := args[0], args[1]
			right, err := value.Cast(right, left.Kind())
			if err != nil {
				return value.Value{}, err
			}
			if name == "equal" {
				return value.NewBoolean(value.Equal(left, right)), nil
			}
			if name == "not_equal" {
				return value.NewBoolean(!value.Equal(left, right)), nil
			}
			if left.IsNull() || right.IsNull() {
				return value.NewBoolean(false), nil
			}
			cmp, err := value.Compare(left, right)
			if err != nil {
				return value.Value{}, err
			}
			return value.NewBoolean(predicate(cmp)), nil
		}
		Functions.RegisterVariadic(name, 2, 2, impl)
		Binary.RegisterVariadic(string(comparisonTokens[name]), 2, 2, impl)
	}
}

// betweenImpl casts low/high to v's kind, then checks the inclusive range.
// False (not null) if any operand is null.
func betweenImpl(args []value.Value) (value.Value, error) {
	v, low, high := args[0], args[1], args[2]
	if v.IsNull() || low.IsNull() || high.IsNull() {
		return value.NewBoolean(false), nil
	}
	low, err := value.Cast(low, v.Kind())
	if err != nil {
		return value.Value{}, err
	}
	high, err = value.Cast(high, v.Kind())
	if err != nil {
		return value.Value{}, err
	}
	cmpLow, err := value.Compare(v, low)
	if err != nil {
		return value.Value{}, err
	}
	cmpHigh, err := value.Compare(v, high)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewBoolean(cmpLow >= 0 && cmpHigh <= 0), nil
}

// registerBetween registers between(v, low, high). Integer and Float may
// be freely mixed across all three positions (low/high are cast to v's
// kind inside betweenImpl); every other supported kind requires a
// uniform triple.
func registerBetween() {
	numeric := []value.Kind{value.Integer, value.Float}
	for _, v := range numeric {
		for _, low := range numeric {
			for _, high := range numeric {
				Functions.Register("between", []value.Kind{v, low, high}, betweenImpl)
			}
		}
	}

	uniform := []value.Kind{value.Date, value.Time, value.DateTime, value.String}
	for _, k := range uniform {
		Functions.Register("between", []value.Kind{k, k, k}, betweenImpl)
	}
}
