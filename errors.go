// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"
)

// Error kinds reported by the scanner and the parser. Every error returned
// by either stage wraps exactly one of these values, so callers can match
// them with errors.Is.
var (
	ErrInvalidEscape   = errors.New("invalid escape sequence")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrUnexpectedChar  = errors.New("unexpected character")
	ErrBadLiteral      = errors.New("unknown constant")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrObjectKey       = errors.New("object key must be a string")
	ErrMissingColon    = errors.New("missing colon after object key")
	ErrMissingComma    = errors.New("missing comma between elements")
	ErrUnclosedObject  = errors.New("object not closed")
	ErrUnclosedArray   = errors.New("array not closed")
	ErrTrailingComma   = errors.New("trailing comma")
	ErrMaxDepth        = errors.New("maximum nesting depth exceeded")
)

// SyntaxError is the concrete type of all errors reported by scanning and
// parsing. It records the byte offset of the offending input and wraps one
// of the Err* kinds.
type SyntaxError struct {
	Offset int    // byte offset into the source text
	Err    error  // the error kind, one of the Err* sentinels
	Detail string // optional human-readable detail
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	msg := e.Detail
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s (offset %d)", msg, e.Offset)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Err }
