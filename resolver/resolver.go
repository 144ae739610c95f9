// Package resolver supplies the flat name-to-value environment an
// evaluation looks up $variable references against.
package resolver

import (
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/value"
)

// Resolver is a flat variable environment. It carries no
// nesting or scoping: every BEXL expression resolves variables against
// exactly one Resolver for the duration of an evaluation.
type Resolver struct {
	vars map[string]value.Value
}

// New wraps an already-built variable map.
func New(vars map[string]value.Value) *Resolver {
	if vars == nil {
		vars = map[string]value.Value{}
	}
	return &Resolver{vars: vars}
}

// FromNative builds a Resolver from a map of plain Go values, converting
// each through value.FromNative.
func FromNative(vars map[string]any) (*Resolver, error) {
	converted := make(map[string]value.Value, len(vars))
	for name, raw := range vars {
		v, err := value.FromNative(raw)
		if err != nil {
			return nil, err
		}
		converted[name] = v
	}
	return &Resolver{vars: converted}, nil
}

// Empty returns a Resolver with no bound names.
func Empty() *Resolver {
	return &Resolver{vars: map[string]value.Value{}}
}

// Resolve looks up name, failing with a ResolverError if it is unbound.
func (r *Resolver) Resolve(name string) (value.Value, error) {
	v, ok := r.vars[name]
	if !ok {
		return value.Value{}, errs.NewResolverError(name)
	}
	return v, nil
}

// Set binds name to v, overwriting any existing binding. Resolvers are
// not safe for concurrent mutation; build one per evaluation.
func (r *Resolver) Set(name string, v value.Value) {
	r.vars[name] = v
}
