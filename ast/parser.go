// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/tokentree/jval"
)

// maxDepth is the maximum number of nested containers the parser accepts
// before reporting jval.ErrMaxDepth, bounding recursion on hostile input.
const maxDepth = 10000

// A Parser constructs a value tree from a token sequence. The sequence is
// consumed through a forward-only cursor: peeking never consumes, and the
// cursor never rewinds.
type Parser struct {
	toks []jval.Token
	pos  int
}

// NewParser constructs a parser that consumes toks.
func NewParser(toks []jval.Token) *Parser { return &Parser{toks: toks} }

// Parse parses and returns the JSON value from input, running the scanner
// and the parser in sequence. In case of error no value is returned, only
// an error of concrete type [*jval.SyntaxError].
func Parse(input string) (Value, error) {
	toks, err := jval.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

// MustParse is like Parse but panics if input does not parse. It is
// intended for static documents and tests.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic("ast: " + err.Error())
	}
	return v
}

// Parse parses a single rooted value from the token sequence. The whole
// sequence must be consumed; a leftover token after the root value is an
// error. In case of error no value is returned.
func (p *Parser) Parse() (Value, error) {
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, tokenErr(tok, jval.ErrUnexpectedToken, "unexpected %v after value", tok)
	}
	return v, nil
}

// parseValue dispatches on one token of lookahead.
func (p *Parser) parseValue(depth int) (Value, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, eofErr(p.end(), jval.ErrUnexpectedEOF)
	}
	switch tok.Kind() {
	case jval.LBrace:
		return p.parseObject(depth + 1)
	case jval.LSquare:
		return p.parseArray(depth + 1)
	case jval.String:
		return String(p.advance().Text()), nil
	case jval.Number:
		return Number(p.advance().Float64()), nil
	case jval.True, jval.False:
		return Bool(p.advance().Bool()), nil
	case jval.Null:
		p.advance()
		return Null{}, nil
	default:
		return nil, tokenErr(tok, jval.ErrUnexpectedToken, "unexpected %v", tok)
	}
}

// parseObject consumes an object. Precondition: the cursor is at LBrace.
func (p *Parser) parseObject(depth int) (Value, error) {
	open := p.advance()
	if depth > maxDepth {
		return nil, tokenErr(open, jval.ErrMaxDepth, "")
	}

	obj := make(Object)
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, eofErr(p.end(), jval.ErrUnclosedObject)
		}
		if tok.Kind() == jval.RBrace {
			p.advance()
			return obj, nil
		}
		if tok.Kind() != jval.String {
			return nil, tokenErr(tok, jval.ErrObjectKey, "object key must be a string, got %v", tok)
		}
		key := p.advance().Text()

		colon, ok := p.peek()
		if !ok {
			return nil, eofErr(p.end(), jval.ErrUnclosedObject)
		}
		if colon.Kind() != jval.Colon {
			return nil, tokenErr(colon, jval.ErrMissingColon, "expected %v after object key, got %v", jval.Colon, colon)
		}
		p.advance()

		val, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		obj[key] = val // a repeated key overwrites the prior member

		sep, ok := p.peek()
		if !ok {
			return nil, eofErr(p.end(), jval.ErrUnclosedObject)
		}
		switch sep.Kind() {
		case jval.Comma:
			p.advance()
			if next, ok := p.peek(); ok && next.Kind() == jval.RBrace {
				return nil, tokenErr(next, jval.ErrTrailingComma, "trailing comma before %v", next)
			}
		case jval.RBrace:
			// Consumed at the top of the loop.
		default:
			return nil, tokenErr(sep, jval.ErrMissingComma, "expected %v or %v, got %v", jval.Comma, jval.RBrace, sep)
		}
	}
}

// parseArray consumes an array. Precondition: the cursor is at LSquare.
func (p *Parser) parseArray(depth int) (Value, error) {
	open := p.advance()
	if depth > maxDepth {
		return nil, tokenErr(open, jval.ErrMaxDepth, "")
	}

	arr := Array{}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, eofErr(p.end(), jval.ErrUnclosedArray)
		}
		if tok.Kind() == jval.RSquare {
			p.advance()
			return arr, nil
		}

		val, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		sep, ok := p.peek()
		if !ok {
			return nil, eofErr(p.end(), jval.ErrUnclosedArray)
		}
		switch sep.Kind() {
		case jval.Comma:
			p.advance()
			if next, ok := p.peek(); ok && next.Kind() == jval.RSquare {
				return nil, tokenErr(next, jval.ErrTrailingComma, "trailing comma before %v", next)
			}
		case jval.RSquare:
			// Consumed at the top of the loop.
		default:
			return nil, tokenErr(sep, jval.ErrMissingComma, "expected %v or %v, got %v", jval.Comma, jval.RSquare, sep)
		}
	}
}

// peek returns the token at the cursor without consuming it.
func (p *Parser) peek() (jval.Token, bool) {
	if p.pos < len(p.toks) {
		return p.toks[p.pos], true
	}
	return jval.Token{}, false
}

// advance returns the token at the cursor and moves the cursor forward.
// Precondition: the cursor is not at the end of the sequence.
func (p *Parser) advance() jval.Token {
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

// end returns the offset just past the last token, for reporting errors at
// the end of input.
func (p *Parser) end() int {
	if n := len(p.toks); n > 0 {
		return p.toks[n-1].Span().End
	}
	return 0
}

func tokenErr(tok jval.Token, kind error, format string, args ...any) error {
	var detail string
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &jval.SyntaxError{Offset: tok.Span().Pos, Err: kind, Detail: detail}
}

func eofErr(off int, kind error) error {
	return &jval.SyntaxError{Offset: off, Err: kind}
}
