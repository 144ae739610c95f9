// Package errs defines the closed error taxonomy that every BEXL phase
// raises: lexing, parsing, and interpretation. Each concrete type carries
// the locator appropriate to the phase that produced it (a line/column
// pair, an offending token, or the AST node under evaluation) and
// implements the standard error interface so callers can use errors.As
// to recover phase-specific detail.
package errs

import "fmt"

// LexerError reports an unrecognized character, an unterminated string,
// or a malformed numeric literal. Line and Column point at the first
// offending byte.
type LexerError struct {
	Line    int
	Column  int
	Message string
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("lexer error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// Locatable is implemented by any error carrying a node for span
// recovery. InterpreterError is not a concrete type in this package; it
// is this interface, implemented by ResolverError, DispatchError,
// ConversionError, and ExecutionError.
type Locatable interface {
	error
	Node() any
}

// ParserError reports an unexpected or missing token. Tok is whatever
// token value the caller supplies (a lexer.Token, stored as any to avoid
// a dependency cycle between errs and lexer).
type ParserError struct {
	Tok     any
	Message string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("parser error: %s", e.Message)
}

// ResolverError reports a free variable with no entry in the active
// resolver.
type ResolverError struct {
	Name string
	node any
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.Name)
}

func (e *ResolverError) Node() any { return e.node }

// WithNode returns a copy of e with its node set, leaving the receiver
// untouched.
func (e *ResolverError) WithNode(node any) *ResolverError {
	cp := *e
	cp.node = node
	return &cp
}

// DispatchError reports that no implementation is registered for a name
// against a given argument-kind tuple, or that a variadic implementation
// was called outside its accepted arity.
type DispatchError struct {
	Name    string
	Kinds   []string
	Message string
	node    any
}

func (e *DispatchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%q cannot be invoked on arguments of type: %v", e.Name, e.Kinds)
}

func (e *DispatchError) Node() any { return e.node }

func (e *DispatchError) WithNode(node any) *DispatchError {
	cp := *e
	cp.node = node
	return &cp
}

// ConversionError reports that value.Cast could not produce a value of
// the requested target kind. From and To are stored as any (rather than
// value.Value / value.Kind) to keep errs free of a dependency on value.
type ConversionError struct {
	From any
	To   any
	node any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v to %v", e.From, e.To)
}

func (e *ConversionError) Node() any { return e.node }

func (e *ConversionError) WithNode(node any) *ConversionError {
	cp := *e
	cp.node = node
	return &cp
}

// ExecutionError reports a runtime contract violation that is not a
// dispatch or conversion failure: division by zero, an out-of-bounds
// index, negative repetition, a missing record property, an invalid
// temporal component, or a bad arity to a variadic builtin.
type ExecutionError struct {
	Message string
	node    any
}

func NewExecutionError(format string, args ...any) *ExecutionError {
	return &ExecutionError{Message: fmt.Sprintf(format, args...)}
}

func (e *ExecutionError) Error() string { return e.Message }

func (e *ExecutionError) Node() any { return e.node }

func (e *ExecutionError) WithNode(node any) *ExecutionError {
	cp := *e
	cp.node = node
	return &cp
}

// WithNode attaches node to err if err is one of the four
// InterpreterError concrete types above, returning a copy through that
// type's own WithNode method. It is the single attachment point the evaluator
// calls on every propagating error, replacing the exception-reraise
// pattern with one idiomatic helper. Errors that are not one of the four
// known types (e.g. a LexerError or ParserError reaching the evaluator,
// which should never happen) are returned unchanged.
func WithNode(err error, node any) error {
	switch e := err.(type) {
	case *ResolverError:
		return e.WithNode(node)
	case *DispatchError:
		return e.WithNode(node)
	case *ConversionError:
		return e.WithNode(node)
	case *ExecutionError:
		return e.WithNode(node)
	default:
		return err
	}
}

// NewConversionError constructs a ConversionError without requiring the
// caller to import this package's unexported node field machinery.
func NewConversionError(from, to any) *ConversionError {
	return &ConversionError{From: from, To: to}
}

// NewDispatchError constructs a DispatchError for a signature-table miss.
func NewDispatchError(name string, kinds []string) *DispatchError {
	return &DispatchError{Name: name, Kinds: kinds}
}

// NewResolverError constructs a ResolverError for an unknown variable.
func NewResolverError(name string) *ResolverError {
	return &ResolverError{Name: name}
}
