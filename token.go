// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import "strconv"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number, as a 64-bit float
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A Token is a single lexical unit of a JSON document. A Token is immutable
// once created. Value-carrying tokens hold their decoded payload, so a token
// sequence keeps no reference to the input it was scanned from.
type Token struct {
	kind     Kind
	pos, end int
	str      string
	num      float64
}

// Kind reports the lexical class of t.
func (t Token) Kind() Kind { return t.kind }

// Span returns the source span of t.
func (t Token) Span() Span { return Span{Pos: t.pos, End: t.end} }

// Text returns the decoded text of a String token, with escapes undone.
// For all other kinds it returns "".
func (t Token) Text() string { return t.str }

// Float64 returns the value of a Number token, or 0 for other kinds.
func (t Token) Float64() float64 { return t.num }

// Bool reports whether t is the constant true.
func (t Token) Bool() bool { return t.kind == True }

// String renders a human-readable description of t for diagnostics.
func (t Token) String() string {
	switch t.kind {
	case String:
		return strconv.Quote(t.str)
	case Number:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	}
	return t.kind.String()
}
