// Package parser implements BEXL's single-pass, backtrack-free
// recursive-descent parser: tokens in, an ast.Node out.
package parser

import (
	"fmt"

	"github.com/bexl-lang/bexl/ast"
	"github.com/bexl-lang/bexl/errs"
	"github.com/bexl-lang/bexl/lexer"
)

// Parser turns a fully-scanned token stream into an AST. It looks ahead
// by exactly one token; the grammar never needs more.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse scans src completely, then parses a single expression from it.
// Any token left over after a complete expression, or any lexer error
// encountered while scanning, is reported as an error.
func Parse(src string) (ast.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.EOF) {
		return nil, p.errorAt(p.current(), fmt.Sprintf("unexpected token %q", p.current().Lexeme))
	}
	return expr, nil
}

func (p *Parser) current() lexer.Token { return p.tokens[p.pos] }

func (p *Parser) check(t lexer.TokenType) bool { return p.current().Type == t }

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

// match consumes and returns the current token if its type is in types.
func (p *Parser) match(types ...lexer.TokenType) (lexer.Token, bool) {
	for _, t := range types {
		if p.check(t) {
			return p.advance(), true
		}
	}
	return lexer.Token{}, false
}

func (p *Parser) expect(t lexer.TokenType, what string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.current(), fmt.Sprintf("expected %s, got %q", what, p.current().Lexeme))
}

func (p *Parser) errorAt(tok lexer.Token, msg string) error {
	return &errs.ParserError{Tok: tok, Message: msg}
}

// expression is the grammar's entry production.
func (p *Parser) expression() (ast.Node, error) {
	return p.boolean()
}

func (p *Parser) boolean() (ast.Node, error) {
	return p.leftAssoc(p.comparison, lexer.AMPERSAND, lexer.PIPE, lexer.CARET)
}

func (p *Parser) comparison() (ast.Node, error) {
	return p.leftAssoc(p.term,
		lexer.EQUAL_EQUAL, lexer.BANG_EQUAL,
		lexer.LESSER, lexer.LESSER_EQUAL,
		lexer.GREATER, lexer.GREATER_EQUAL,
	)
}

func (p *Parser) term() (ast.Node, error) {
	return p.leftAssoc(p.factor, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) factor() (ast.Node, error) {
	return p.leftAssoc(p.unary, lexer.SLASH, lexer.STAR, lexer.STAR_STAR, lexer.PERCENT)
}

// leftAssoc implements a generic left-associative binary precedence
// level: next() parses one operand at the level below, and any of
// operators repeatedly folds into a left-leaning Binary chain.
func (p *Parser) leftAssoc(next func() (ast.Node, error), operators ...lexer.TokenType) (ast.Node, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.match(operators...)
		if !ok {
			return left, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinary(left, op, right)
	}
}

func (p *Parser) unary() (ast.Node, error) {
	if op, ok := p.match(lexer.BANG, lexer.MINUS); ok {
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, operand), nil
	}
	return p.suffixed()
}

// suffixed parses a primary expression followed by zero or more postfix
// suffixes: '[' index-or-slice ']' and '.' IDENTIFIER.
func (p *Parser) suffixed() (ast.Node, error) {
	node, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(lexer.LEFT_BRACKET):
			node, err = p.indexOrSlice(node)
			if err != nil {
				return nil, err
			}
		case p.check(lexer.PERIOD):
			p.advance()
			name, err := p.expect(lexer.IDENTIFIER, "property name")
			if err != nil {
				return nil, err
			}
			node = ast.NewProperty(node, name)
		default:
			return node, nil
		}
	}
}

// indexOrSlice parses the contents of a '[...]' suffix and disambiguates
// between a bare index and a slice:
//
//	[ expr ]        -> index
//	[ : expr? ]     -> slice, start defaults to 0
//	[ expr : ]      -> slice, end defaults to length
//	[ expr : expr ] -> slice with both bounds
//	[ : ]           -> slice with both bounds defaulted
func (p *Parser) indexOrSlice(target ast.Node) (ast.Node, error) {
	p.advance() // consume '['

	if p.check(lexer.COLON) {
		p.advance()
		var end ast.Node
		if !p.check(lexer.RIGHT_BRACKET) {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			end = e
		}
		close, err := p.expect(lexer.RIGHT_BRACKET, "']'")
		if err != nil {
			return nil, err
		}
		return ast.NewSlice(target, nil, end, close), nil
	}

	first, err := p.expression()
	if err != nil {
		return nil, err
	}

	if p.check(lexer.COLON) {
		p.advance()
		var end ast.Node
		if !p.check(lexer.RIGHT_BRACKET) {
			e, err := p.expression()
			if err != nil {
				return nil, err
			}
			end = e
		}
		close, err := p.expect(lexer.RIGHT_BRACKET, "']'")
		if err != nil {
			return nil, err
		}
		return ast.NewSlice(target, first, end, close), nil
	}

	close, err := p.expect(lexer.RIGHT_BRACKET, "']'")
	if err != nil {
		return nil, err
	}
	return ast.NewIndex(target, first, close), nil
}

// primary parses literals, variables, groupings, lists, and function
// calls. An IDENTIFIER is always a function call; BEXL has no bare
// identifiers.
func (p *Parser) primary() (ast.Node, error) {
	tok := p.current()

	switch tok.Type {
	case lexer.INTEGER, lexer.FLOAT, lexer.STRING, lexer.TRUE, lexer.FALSE, lexer.NULL:
		p.advance()
		return ast.NewLiteral(tok), nil

	case lexer.DOLLAR:
		p.advance()
		name, err := p.expect(lexer.IDENTIFIER, "variable name")
		if err != nil {
			return nil, err
		}
		return ast.NewVariable(tok, name), nil

	case lexer.IDENTIFIER:
		p.advance()
		if _, err := p.expect(lexer.LEFT_PAREN, "'('"); err != nil {
			return nil, err
		}
		args, err := p.argumentList(lexer.RIGHT_PAREN)
		if err != nil {
			return nil, err
		}
		close, err := p.expect(lexer.RIGHT_PAREN, "')'")
		if err != nil {
			return nil, err
		}
		return ast.NewFunction(tok, close, args), nil

	case lexer.LEFT_PAREN:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		close, err := p.expect(lexer.RIGHT_PAREN, "')'")
		if err != nil {
			return nil, err
		}
		return ast.NewGrouping(tok, close, inner), nil

	case lexer.LEFT_BRACKET:
		p.advance()
		elements, err := p.argumentList(lexer.RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		close, err := p.expect(lexer.RIGHT_BRACKET, "']'")
		if err != nil {
			return nil, err
		}
		return ast.NewList(tok, close, elements), nil

	default:
		return nil, p.errorAt(tok, fmt.Sprintf("unexpected token %q", tok.Lexeme))
	}
}

// argumentList parses a comma-separated, possibly empty expression list
// up to (but not consuming) the closing token end.
func (p *Parser) argumentList(end lexer.TokenType) ([]ast.Node, error) {
	var args []ast.Node
	if p.check(end) {
		return args, nil
	}
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if _, ok := p.match(lexer.COMMA); !ok {
			return args, nil
		}
	}
}
