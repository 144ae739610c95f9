// Package dispatch implements BEXL's name x argument-kind-tuple
// dispatch registries: the layer that turns an operator token or a
// function identifier plus a list of evaluated arguments into the one
// concrete implementation that handles them.
package dispatch

import (
	"strings"
	"sync"

	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

// Impl is a single dispatch target: an implementation that receives its
// already-evaluated arguments and returns a Value or a typed error.
type Impl func(args []value.Value) (value.Value, error)

type variadicEntry struct {
	minArgs int
	maxArgs int // -1 means unbounded
	fn      Impl
}

// Registry maps names to either a signature table (exact argument-kind
// match, no implicit widening) or a single variadic implementation that
// checks only arity and leaves kind validation to the implementation
// body. A name is registered as exactly one of the two; registering the
// same name both ways is a programming error caught by RegisterVariadic
// panicking if a table already exists for that name (and vice versa).
type Registry struct {
	mu       sync.RWMutex
	tables   map[string]map[string]Impl
	variadic map[string]variadicEntry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tables:   make(map[string]map[string]Impl),
		variadic: make(map[string]variadicEntry),
	}
}

// Register adds fn to name's signature table under the exact kind tuple
// sig. Multiple calls with the same name and different signatures
// accumulate into one table, letting e.g. "date" be registered once for
// a three-integer constructor and again for each single-argument cast
// signature.
func (r *Registry) Register(name string, sig []value.Kind, fn Impl) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.variadic[name]; exists {
		panic("dispatch: " + name + " already registered as variadic")
	}
	table, ok := r.tables[name]
	if !ok {
		table = make(map[string]Impl)
		r.tables[name] = table
	}
	table[sigKey(sig)] = fn
}

// RegisterVariadic registers fn as name's sole implementation, checked
// only for arity: at least minArgs arguments, and at most maxArgs (or
// unbounded if maxArgs is negative).
func (r *Registry) RegisterVariadic(name string, minArgs, maxArgs int, fn Impl) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tables[name]; exists {
		panic("dispatch: " + name + " already registered with a signature table")
	}
	r.variadic[name] = variadicEntry{minArgs: minArgs, maxArgs: maxArgs, fn: fn}
}

// Call dispatches name against args: an exact signature-table lookup by
// argument kind, or an arity-checked call to the variadic
// implementation. An unknown name, a signature-table miss, or an
// out-of-bounds variadic call all fail with a DispatchError.
func (r *Registry) Call(name string, args []value.Value) (value.Value, error) {
	r.mu.RLock()
	table, hasTable := r.tables[name]
	entry, hasVariadic := r.variadic[name]
	r.mu.RUnlock()

	switch {
	case hasTable:
		kinds := value.KindsOf(args)
		fn, ok := table[sigKey(kinds)]
		if !ok {
			return value.Value{}, errs.NewDispatchError(name, kindStrings(kinds))
		}
		return fn(args)

	case hasVariadic:
		if len(args) < entry.minArgs || (entry.maxArgs >= 0 && len(args) > entry.maxArgs) {
			return value.Value{}, &errs.DispatchError{
				Name:    name,
				Kinds:   kindStrings(value.KindsOf(args)),
				Message: "\"" + name + "\" called with the wrong number of arguments",
			}
		}
		return entry.fn(args)

	default:
		return value.Value{}, &errs.DispatchError{
			Name:    name,
			Kinds:   kindStrings(value.KindsOf(args)),
			Message: "\"" + name + "\" is not defined",
		}
	}
}

func sigKey(kinds []value.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}

func kindStrings(kinds []value.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
