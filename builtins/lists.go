package builtins

import (
	"github.com/samber/lo"

	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

func init() {
	registerAggregates()
	registerQuantifiers()
}

// nonNullItems returns a list's items with nulls filtered out.
func nonNullItems(v value.Value) ([]value.Value, error) {
	if v.IsNull() {
		return nil, nil
	}
	if v.Kind() != value.List {
		return nil, errs.NewExecutionError("%s is not a list", v.Kind())
	}
	return lo.Filter(v.ListVal(), func(item value.Value, _ int) bool { return !item.IsNull() }), nil
}

// sameFamily reports whether every item shares a type family with the
// first: Integer and Float are one family, Date and DateTime are one
// family, everything else must match its own kind exactly (Time only
// ever mixes with Time). An empty slice is trivially consistent.
func sameFamily(items []value.Value) bool {
	if len(items) == 0 {
		return true
	}
	numeric := func(k value.Kind) bool { return k == value.Integer || k == value.Float }
	dateLike := func(k value.Kind) bool { return k == value.Date || k == value.DateTime }
	var family func(value.Kind) bool
	switch {
	case numeric(items[0].Kind()):
		family = numeric
	case dateLike(items[0].Kind()):
		family = dateLike
	default:
		k0 := items[0].Kind()
		family = func(k value.Kind) bool { return k == k0 }
	}
	for _, item := range items[1:] {
		if !family(item.Kind()) {
			return false
		}
	}
	return true
}

func registerAggregates() {
	Functions.RegisterVariadic("min", 1, 1, func(args []value.Value) (value.Value, error) {
		return reduceItems(args[0], func(items []value.Value) (value.Value, error) {
			best := items[0]
			for _, item := range items[1:] {
				cmp, err := compareItems(item, best)
				if err != nil {
					return value.Value{}, err
				}
				if cmp < 0 {
					best = item
				}
			}
			return best, nil
		})
	})
	Functions.RegisterVariadic("max", 1, 1, func(args []value.Value) (value.Value, error) {
		return reduceItems(args[0], func(items []value.Value) (value.Value, error) {
			best := items[0]
			for _, item := range items[1:] {
				cmp, err := compareItems(item, best)
				if err != nil {
					return value.Value{}, err
				}
				if cmp > 0 {
					best = item
				}
			}
			return best, nil
		})
	})
	Functions.RegisterVariadic("sum", 1, 1, func(args []value.Value) (value.Value, error) {
		return reduceNumeric(args[0], func(acc, v float64) float64 { return acc + v }, 0)
	})
	Functions.RegisterVariadic("average", 1, 1, func(args []value.Value) (value.Value, error) {
		items, err := nonNullItems(args[0])
		if err != nil {
			return value.Value{}, err
		}
		if len(items) == 0 {
			return value.Null(), nil
		}
		if !isNumeric(items[0].Kind()) || !sameFamily(items) {
			return value.Value{}, errs.NewExecutionError("average requires a list of numbers")
		}
		total := 0.0
		for _, item := range items {
			total += toFloat(item)
		}
		return value.NewFloat(total / float64(len(items))), nil
	})
}

// compareItems orders two items of one type family, comparing an
// Integer/Float pair as floats since value.Compare expects equal kinds.
func compareItems(a, b value.Value) (int, error) {
	if a.Kind() != b.Kind() && isNumeric(a.Kind()) && isNumeric(b.Kind()) {
		fa, fb := toFloat(a), toFloat(b)
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		}
		return 0, nil
	}
	return value.Compare(a, b)
}

func reduceItems(v value.Value, reduce func([]value.Value) (value.Value, error)) (value.Value, error) {
	items, err := nonNullItems(v)
	if err != nil {
		return value.Value{}, err
	}
	if len(items) == 0 {
		return value.Null(), nil
	}
	if !sameFamily(items) {
		return value.Value{}, errs.NewExecutionError("list elements must share a single type family")
	}
	return reduce(items)
}

func reduceNumeric(v value.Value, combine func(acc, v float64) float64, identity float64) (value.Value, error) {
	items, err := nonNullItems(v)
	if err != nil {
		return value.Value{}, err
	}
	if len(items) == 0 {
		return value.Null(), nil
	}
	if !isNumeric(items[0].Kind()) || !sameFamily(items) {
		return value.Value{}, errs.NewExecutionError("sum requires a list of numbers")
	}
	acc := identity
	anyFloat := false
	for _, item := range items {
		if item.Kind() == value.Float {
			anyFloat = true
		}
		acc = combine(acc, toFloat(item))
	}
	if anyFloat {
		return value.NewFloat(acc), nil
	}
	return value.NewInteger(int64(acc)), nil
}

// registerQuantifiers registers all/any/none/count, which (unlike the
// aggregates above) cast every element to boolean including nulls, since
// a null condition is meaningful for a predicate list rather than being
// filtered away.
func registerQuantifiers() {
	Functions.RegisterVariadic("all", 1, 1, func(args []value.Value) (value.Value, error) {
		return quantify(args[0], true, func(count, total int) bool { return count == total })
	})
	Functions.RegisterVariadic("any", 1, 1, func(args []value.Value) (value.Value, error) {
		return quantify(args[0], false, func(count, total int) bool { return count > 0 })
	})
	Functions.RegisterVariadic("none", 1, 1, func(args []value.Value) (value.Value, error) {
		return quantify(args[0], true, func(count, total int) bool { return count == 0 })
	})
	Functions.RegisterVariadic("count", 1, 1, func(args []value.Value) (value.Value, error) {
		v := args[0]
		if v.IsNull() {
			return value.NullOf(value.Integer), nil
		}
		if v.Kind() != value.List {
			return value.Value{}, errs.NewExecutionError("count requires a list")
		}
		n := 0
		for _, item := range v.ListVal() {
			b, err := castBool(item)
			if err != nil {
				return value.Value{}, err
			}
			if b {
				n++
			}
		}
		return value.NewInteger(int64(n)), nil
	})
}

func quantify(v value.Value, emptyResult bool, predicate func(count, total int) bool) (value.Value, error) {
	if v.IsNull() {
		return value.NullOf(value.Boolean), nil
	}
	if v.Kind() != value.List {
		return value.Value{}, errs.NewExecutionError("expected a list")
	}
	items := v.ListVal()
	if len(items) == 0 {
		return value.NewBoolean(emptyResult), nil
	}
	count := 0
	for _, item := range items {
		b, err := castBool(item)
		if err != nil {
			return value.Value{}, err
		}
		if b {
			count++
		}
	}
	return value.NewBoolean(predicate(count, len(items))), nil
}
