package value

import (
	"strings"

	"github.com/bexl-lang/bexl/errs"
)

// Equal reports whether a and b — already of the same kind, per the
// comparison builtins' "cast right to left" contract — carry the same
// value. Two nulls of the same kind are equal; a null and a non-null
// value of the same kind are not.
func Equal(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	switch a.Kind() {
	case Untyped:
		return true
	case Integer:
		return a.Int() == b.Int()
	case Float:
		return a.Float64() == b.Float64()
	case Boolean:
		return a.Bool() == b.Bool()
	case String:
		return a.Str() == b.Str()
	case Date, DateTime:
		return a.DateVal().Equal(b.DateVal())
	case Time:
		return a.TimeVal() == b.TimeVal()
	case List:
		return equalLists(a.ListVal(), b.ListVal())
	case Record:
		return equalRecords(a.RecordVal(), b.RecordVal())
	default:
		return false
	}
}

func equalLists(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind() != b[i].Kind() || !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalRecords(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || av.Kind() != bv.Kind() || !Equal(av, bv) {
			return false
		}
	}
	return true
}

// Compare orders a and b — already of the same kind. It returns -1, 0,
// or 1. A null sorts before every non-null value of its kind; two nulls
// are equal. Records have no natural total order and always fail with
// an ExecutionError, a deliberate Python-3-semantics resolution (the
// reference implementation's generic ordering relied on Python 2's
// permissive cross-type comparison, which Python 3 itself no longer
// allows for dict values).
func Compare(a, b Value) (int, error) {
	if a.IsNull() || b.IsNull() {
		switch {
		case a.IsNull() && b.IsNull():
			return 0, nil
		case a.IsNull():
			return -1, nil
		default:
			return 1, nil
		}
	}

	switch a.Kind() {
	case Integer:
		return compareInt64(a.Int(), b.Int()), nil
	case Float:
		return compareFloat64(a.Float64(), b.Float64()), nil
	case Boolean:
		return compareBool(a.Bool(), b.Bool()), nil
	case String:
		return strings.Compare(a.Str(), b.Str()), nil
	case Date, DateTime:
		switch {
		case a.DateVal().Before(b.DateVal()):
			return -1, nil
		case a.DateVal().After(b.DateVal()):
			return 1, nil
		default:
			return 0, nil
		}
	case Time:
		return compareInt64(int64(a.TimeVal()), int64(b.TimeVal())), nil
	case List:
		return compareLists(a.ListVal(), b.ListVal())
	default:
		return 0, errs.NewExecutionError("values of type %s cannot be ordered", a.Kind())
	}
}

func compareLists(a, b []Value) (int, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, err := Compare(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return compareInt64(int64(len(a)), int64(len(b))), nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
