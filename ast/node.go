// Package ast defines the nine-variant abstract syntax tree BEXL's
// parser builds and its evaluator walks. Node definitions are kept
// separate from the parser that constructs them, mirroring the
// go/ast + go/parser split in the standard library: a tree produced by
// one parser implementation can be walked by any evaluator without
// either package depending on the other's internals beyond this one.
package ast

import "github.com/bexl-lang/bexl/lexer"

// Node is implemented by every AST variant. Start and End return the
// first and last token consumed while parsing the node, giving the
// evaluator a precise span to attach to any error raised while
// evaluating it.
type Node interface {
	Start() lexer.Token
	End() lexer.Token
	node()
}

type span struct {
	start lexer.Token
	end   lexer.Token
}

func (s span) Start() lexer.Token { return s.start }
func (s span) End() lexer.Token   { return s.end }
func (span) node()                {}

// Literal is a scalar literal or the Null keyword. Kind is the lexer
// token type that produced it (INTEGER, FLOAT, STRING, TRUE, FALSE, or
// NULL); Value carries the decoded payload for everything but NULL,
// whose payload is never read at evaluation time.
type Literal struct {
	span
	Kind  lexer.TokenType
	Value any
}

// NewLiteral constructs a Literal node spanning a single token.
func NewLiteral(tok lexer.Token) *Literal {
	return &Literal{span: span{tok, tok}, Kind: tok.Type, Value: tok.Literal}
}

// Variable is a free name ($name) to be resolved against the active
// resolver.
type Variable struct {
	span
	Name string
}

func NewVariable(dollar, name lexer.Token) *Variable {
	return &Variable{span: span{dollar, name}, Name: name.Lexeme}
}

// Grouping is a parenthesized sub-expression; it exists only to carry
// its own span and is otherwise transparent to evaluation.
type Grouping struct {
	span
	Inner Node
}

func NewGrouping(open, close lexer.Token, inner Node) *Grouping {
	return &Grouping{span: span{open, close}, Inner: inner}
}

// List is a bracketed, comma-separated sequence of expressions.
type List struct {
	span
	Elements []Node
}

func NewList(open, close lexer.Token, elements []Node) *List {
	return &List{span: span{open, close}, Elements: elements}
}

// Unary is a prefix operator applied to a single operand: '-' or '!'.
type Unary struct {
	span
	Operator lexer.Token
	Operand  Node
}

func NewUnary(operator lexer.Token, operand Node) *Unary {
	return &Unary{span: span{operator, operand.End()}, Operator: operator, Operand: operand}
}

// Binary is an infix operator applied to a left and right operand.
type Binary struct {
	span
	Left     Node
	Operator lexer.Token
	Right    Node
}

func NewBinary(left Node, operator lexer.Token, right Node) *Binary {
	return &Binary{span: span{left.Start(), right.End()}, Left: left, Operator: operator, Right: right}
}

// Function is a call to a named builtin: name(arg1, arg2, ...).
type Function struct {
	span
	Name      string
	Arguments []Node
}

func NewFunction(nameTok lexer.Token, close lexer.Token, args []Node) *Function {
	return &Function{span: span{nameTok, close}, Name: nameTok.Lexeme, Arguments: args}
}

// Indexing is a postfix subscript or slice: target[index] or
// target[start?:end?]. Exactly one of Index or (Start, End) is
// populated; IsSlice distinguishes a bare index from a slice whose
// bounds happen to both be nil (target[:]).
type Indexing struct {
	span
	Target  Node
	IsSlice bool
	Index   Node // populated when !IsSlice
	Start   Node // populated when IsSlice; nil means default to 0
	End     Node // populated when IsSlice; nil means default to length
}

func NewIndex(target Node, index Node, close lexer.Token) *Indexing {
	return &Indexing{span: span{target.Start(), close}, Target: target, IsSlice: false, Index: index}
}

func NewSlice(target Node, start, end Node, close lexer.Token) *Indexing {
	return &Indexing{span: span{target.Start(), close}, Target: target, IsSlice: true, Start: start, End: end}
}

// Property is a postfix .name access, desugared by the evaluator into a
// call to the built-in property(record, name) function.
type Property struct {
	span
	Target Node
	Name   string
}

func NewProperty(target Node, nameTok lexer.Token) *Property {
	return &Property{span: span{target.Start(), nameTok}, Target: target, Name: nameTok.Lexeme}
}
