// Package bexl evaluates Basic EXpression Language expressions: parse
// once with Parse, evaluate many times against different variable
// environments with Evaluate, or do both in one call with Eval.
package bexl

import (
	"github.com/bexl-lang/bexl/ast"
	"github.com/bexl-lang/bexl/config"
	"github.com/bexl-lang/bexl/eval"
	"github.com/bexl-lang/bexl/parser"
	"github.com/bexl-lang/bexl/resolver"
	"github.com/bexl-lang/bexl/value"
)

// Option configures an evaluation. It is an alias of eval.Option so
// callers never need to import package eval directly.
type Option = eval.Option

// WithLogger and WithConfig re-export the eval package's Options for
// callers that only import the root package.
var (
	WithLogger = eval.WithLogger
	WithConfig = eval.WithConfig
)

// Parse compiles source into a reusable AST.
func Parse(source string) (ast.Node, error) {
	return parser.Parse(source)
}

// Eval parses and evaluates source in one step against vars (a
// map[string]any, a *resolver.Resolver, or nil for an empty
// environment), returning a native Go value.
func Eval(source string, vars any, opts ...Option) (any, error) {
	node, err := Parse(source)
	if err != nil {
		return nil, err
	}
	v, err := Evaluate(node, vars, opts...)
	if err != nil {
		return nil, err
	}
	return value.ToNative(v), nil
}

// Evaluate walks an already-parsed node against vars and returns the
// resulting bexl value.Value, without converting it to a native Go
// value (use Eval, or value.ToNative on the result, for that).
func Evaluate(node ast.Node, vars any, opts ...Option) (value.Value, error) {
	res, err := resolverFrom(vars)
	if err != nil {
		return value.Value{}, err
	}
	return eval.New(res, opts...).Eval(node)
}

func resolverFrom(vars any) (*resolver.Resolver, error) {
	switch v := vars.(type) {
	case nil:
		return resolver.Empty(), nil
	case *resolver.Resolver:
		return v, nil
	case map[string]any:
		return resolver.FromNative(v)
	case map[string]value.Value:
		return resolver.New(v), nil
	default:
		return nil, &unsupportedResolverError{vars: vars}
	}
}

type unsupportedResolverError struct{ vars any }

func (e *unsupportedResolverError) Error() string {
	return "bexl: unsupported variable environment type"
}

// LoadConfig reads environment-driven tunables from path (a .env file; a
// missing file is not an error) for use with WithConfig.
func LoadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}
