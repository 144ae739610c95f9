// Package eval walks a parsed ast.Node and produces a value.Value,
// dispatching every operator and function call through package builtins
// and every variable reference through a resolver.Resolver.
package eval

import (
	"log/slog"
	"os"

	"github.com/bexl-lang/bexl/ast"
	"github.com/bexl-lang/bexl/builtins"
	"github.com/bexl-lang/bexl/config"
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/lexer"
	"github.com/bexl-lang/bexl/resolver"
	"github.com/bexl-lang/bexl/value"
)

// Evaluator walks one AST against one Resolver. It is safe to reuse
// against several trees sharing the same resolver, but not for
// concurrent use.
type Evaluator struct {
	resolver         *resolver.Resolver
	log              *slog.Logger
	maxCollectionLen int
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithLogger attaches a structured logger that records each function
// and operator dispatch at debug level. Without it, New logs through
// slog.Default, whose default handler drops debug records.
func WithLogger(log *slog.Logger) Option {
	return func(e *Evaluator) { e.log = log }
}

// WithConfig applies a loaded config.Config: it reseeds random() when
// RandomSeed is set, sets the logger's level, and records
// MaxCollectionLen, which caps [...] list literals and list()/record()
// calls.
func WithConfig(cfg *config.Config) Option {
	return func(e *Evaluator) {
		if cfg == nil {
			return
		}
		if cfg.RandomSeed != nil {
			builtins.SeedRandom(*cfg.RandomSeed)
		}
		e.maxCollectionLen = cfg.MaxCollectionLen
		e.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}
}

// New builds an Evaluator bound to res. A nil res evaluates against an
// empty environment (any $variable reference fails with ResolverError).
func New(res *resolver.Resolver, opts ...Option) *Evaluator {
	if res == nil {
		res = resolver.Empty()
	}
	e := &Evaluator{resolver: res, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval walks node and returns its value, or the first error encountered,
// decorated with the node at which it occurred.
func (e *Evaluator) Eval(node ast.Node) (value.Value, error) {
	v, err := e.eval(node)
	if err != nil {
		return value.Value{}, errs.WithNode(err, node)
	}
	return v, nil
}

func (e *Evaluator) eval(node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		return e.evalLiteral(n)
	case *ast.Variable:
		return e.resolver.Resolve(n.Name)
	case *ast.Grouping:
		return e.eval(n.Inner)
	case *ast.List:
		return e.evalList(n)
	case *ast.Unary:
		return e.evalUnary(n)
	case *ast.Binary:
		return e.evalBinary(n)
	case *ast.Function:
		return e.evalFunction(n)
	case *ast.Indexing:
		return e.evalIndexing(n)
	case *ast.Property:
		return e.evalProperty(n)
	default:
		return value.Value{}, errs.NewExecutionError("unhandled node type %T", node)
	}
}

func (e *Evaluator) evalLiteral(n *ast.Literal) (value.Value, error) {
	switch n.Kind {
	case lexer.NULL:
		return value.Null(), nil
	case lexer.INTEGER:
		return value.NewInteger(n.Value.(int64)), nil
	case lexer.FLOAT:
		return value.NewFloat(n.Value.(float64)), nil
	case lexer.STRING:
		return value.NewString(n.Value.(string)), nil
	case lexer.TRUE:
		return value.NewBoolean(true), nil
	case lexer.FALSE:
		return value.NewBoolean(false), nil
	default:
		return value.Value{}, errs.NewExecutionError("unhandled literal kind %s", n.Kind)
	}
}

func (e *Evaluator) evalList(n *ast.List) (value.Value, error) {
	if e.maxCollectionLen > 0 && len(n.Elements) > e.maxCollectionLen {
		return value.Value{}, errs.NewExecutionError("list literal exceeds maximum length of %d", e.maxCollectionLen)
	}
	elems := make([]value.Value, len(n.Elements))
	for i, elemNode := range n.Elements {
		v, err := e.eval(elemNode)
		if err != nil {
			return value.Value{}, errs.WithNode(err, elemNode)
		}
		elems[i] = v
	}
	return value.NewList(elems), nil
}

func (e *Evaluator) evalUnary(n *ast.Unary) (value.Value, error) {
	operand, err := e.eval(n.Operand)
	if err != nil {
		return value.Value{}, errs.WithNode(err, n.Operand)
	}
	e.log.Debug("dispatch unary", "op", n.Operator.Type, "operand", operand.Kind())
	return builtins.Unary.Call(string(n.Operator.Type), []value.Value{operand})
}

func (e *Evaluator) evalBinary(n *ast.Binary) (value.Value, error) {
	left, err := e.eval(n.Left)
	if err != nil {
		return value.Value{}, errs.WithNode(err, n.Left)
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return value.Value{}, errs.WithNode(err, n.Right)
	}
	e.log.Debug("dispatch binary", "op", n.Operator.Type, "left", left.Kind(), "right", right.Kind())
	return builtins.Binary.Call(string(n.Operator.Type), []value.Value{left, right})
}

func (e *Evaluator) evalFunction(n *ast.Function) (value.Value, error) {
	args := make([]value.Value, len(n.Arguments))
	for i, argNode := range n.Arguments {
		v, err := e.eval(argNode)
		if err != nil {
			return value.Value{}, errs.WithNode(err, argNode)
		}
		args[i] = v
	}
	if e.maxCollectionLen > 0 && (n.Name == "list" || n.Name == "record") {
		size := len(args)
		if n.Name == "record" {
			size /= 2
		}
		if size > e.maxCollectionLen {
			return value.Value{}, errs.NewExecutionError("%s() exceeds maximum length of %d", n.Name, e.maxCollectionLen)
		}
	}
	e.log.Debug("dispatch function", "name", n.Name, "argc", len(args))
	return builtins.Functions.Call(n.Name, args)
}

func (e *Evaluator) evalIndexing(n *ast.Indexing) (value.Value, error) {
	target, err := e.eval(n.Target)
	if err != nil {
		return value.Value{}, errs.WithNode(err, n.Target)
	}
	if n.IsSlice {
		start, err := e.evalOptional(n.Start)
		if err != nil {
			return value.Value{}, err
		}
		end, err := e.evalOptional(n.End)
		if err != nil {
			return value.Value{}, err
		}
		return builtins.Functions.Call("slice", []value.Value{target, start, end})
	}
	index, err := e.eval(n.Index)
	if err != nil {
		return value.Value{}, errs.WithNode(err, n.Index)
	}
	return builtins.Functions.Call("at", []value.Value{target, index})
}

// evalOptional evaluates an optional slice bound, returning an untyped
// null when the bound was omitted from the source.
func (e *Evaluator) evalOptional(node ast.Node) (value.Value, error) {
	if node == nil {
		return value.Null(), nil
	}
	v, err := e.eval(node)
	if err != nil {
		return value.Value{}, errs.WithNode(err, node)
	}
	return v, nil
}

func (e *Evaluator) evalProperty(n *ast.Property) (value.Value, error) {
	target, err := e.eval(n.Target)
	if err != nil {
		return value.Value{}, errs.WithNode(err, n.Target)
	}
	return builtins.Functions.Call("property", []value.Value{target, value.NewString(n.Name)})
}
