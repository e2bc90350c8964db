// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import (
	"fmt"
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/tokentree/jval/internal/escape"
)

// A Scanner reads lexical tokens from an input string. Each call to Next
// advances the scanner to the next token, or reports an error.
//
// The input must be fully resident in memory before scanning begins; the
// scanner performs no I/O.
type Scanner struct {
	input string
	pos   int // start offset of the current token
	cur   int // scan offset
	tok   Token
	err   error
}

// NewScanner constructs a new lexical scanner that consumes input.
func NewScanner(input string) *Scanner { return &Scanner{input: input} }

// Next advances s to the next token of the input and reports whether one is
// available. Once Next returns false the scan is over: Err reports nil if
// the input was fully consumed, otherwise the error that stopped the scan.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	// Discard whitespace.
	for s.cur < len(s.input) && isSpace(s.input[s.cur]) {
		s.cur++
	}
	if s.cur == len(s.input) {
		return false
	}
	s.pos = s.cur

	// Handle punctuation.
	ch := s.input[s.cur]
	if t, ok := selfDelim(ch); ok {
		s.cur++
		s.tok = Token{kind: t, pos: s.pos, end: s.cur}
		return true
	}

	// Handle string values.
	if ch == '"' {
		return s.scanString()
	}

	// Handle numbers.
	if isNumStart(ch) {
		return s.scanNumber()
	}

	// Handle constants: true, false, null.
	switch ch {
	case 't', 'f', 'n':
		return s.scanLiteral()
	}
	return s.fail(s.pos, ErrUnexpectedChar, "unexpected %q", ch)
}

// Token returns the current token. It is only valid after a call of Next
// that returned true.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that stopped the scan, or nil if the input was
// consumed completely.
func (s *Scanner) Err() error { return s.err }

// Tokenize scans input and returns its complete token sequence in source
// order. If the scan fails, no tokens are returned, only the error: a scan
// never produces a partial sequence.
func Tokenize(input string) ([]Token, error) {
	s := NewScanner(input)
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

// scanString scans a quoted string starting at s.cur. Bytes are taken
// verbatim except backslash escapes, which are validated here and decoded by
// the escape package once the closing quote is found.
func (s *Scanner) scanString() bool {
	i := s.cur + 1
	for i < len(s.input) {
		switch s.input[i] {
		case '"':
			dec, err := escape.Unquote(mem.S(s.input[s.pos+1 : i]))
			if err != nil {
				return s.fail(s.pos, ErrInvalidEscape, "invalid string: %v", err)
			}
			s.cur = i + 1
			s.tok = Token{kind: String, pos: s.pos, end: s.cur, str: string(dec)}
			return true
		case '\\':
			if i+1 == len(s.input) {
				return s.fail(len(s.input), ErrUnexpectedEOF, "unterminated string")
			}
			if _, ok := escape.Decode(s.input[i+1]); !ok {
				return s.fail(i+1, ErrInvalidEscape, "invalid %q after escape", s.input[i+1])
			}
			i += 2
		default:
			i++
		}
	}
	return s.fail(len(s.input), ErrUnexpectedEOF, "unterminated string")
}

// scanNumber consumes the maximal run of number bytes starting at s.cur.
// The run is collected without positional checks; ParseFloat decides
// validity of the whole run afterward.
func (s *Scanner) scanNumber() bool {
	i := s.cur
	for i < len(s.input) && isNumByte(s.input[i]) {
		i++
	}
	text := s.input[s.cur:i]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return s.fail(s.pos, ErrInvalidNumber, "invalid number %q", text)
	}
	s.cur = i
	s.tok = Token{kind: Number, pos: s.pos, end: i, num: v}
	return true
}

// scanLiteral consumes the maximal run of lowercase letters starting at
// s.cur and requires it to equal one of the constants whole, so an input
// like "truex" is an error rather than "true" plus stray text.
func (s *Scanner) scanLiteral() bool {
	i := s.cur
	for i < len(s.input) && isNameByte(s.input[i]) {
		i++
	}

	var kind Kind
	var want mem.RO
	switch s.input[s.cur] {
	case 't':
		kind, want = True, mem.S("true")
	case 'f':
		kind, want = False, mem.S("false")
	case 'n':
		kind, want = Null, mem.S("null")
	}
	if got := mem.S(s.input[s.cur:i]); !got.Equal(want) {
		return s.fail(s.pos, ErrBadLiteral, "unknown constant %q", s.input[s.cur:i])
	}
	s.cur = i
	s.tok = Token{kind: kind, pos: s.pos, end: i}
	return true
}

func (s *Scanner) fail(off int, kind error, format string, args ...any) bool {
	s.err = &SyntaxError{Offset: off, Err: kind, Detail: fmt.Sprintf(format, args...)}
	return false
}

func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isNumStart(c byte) bool { return c == '-' || isDigit(c) }
func isNameByte(c byte) bool { return 'a' <= c && c <= 'z' }

func isNumByte(c byte) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(c byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", c)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
