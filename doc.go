// Copyright (C) 2024 The jval Authors. All Rights Reserved.

// Package jval converts JSON text into an in-memory tree of structured
// values, for code that needs to read configuration or interchange payloads
// without an external decoding library. It is a two-stage pipeline: a
// lexical scanner that turns text into a token sequence, and (in the ast
// subpackage) a recursive-descent parser that turns the token sequence into
// a value tree. The stages run in strict sequence; the parser never
// re-invokes the scanner.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a
// scanner from an input string and call its Next method to iterate over the
// tokens. Next reports whether another token is available:
//
//	s := jval.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Err reports nil after the input is fully consumed. Tokens carry their
// decoded payloads: string tokens hold the unescaped text, number tokens
// hold a 64-bit float. The token sequence is therefore self-contained and
// keeps no reference to the input text.
//
// Tokenize wraps the loop above and returns the complete token sequence:
//
//	toks, err := jval.Tokenize(input)
//
// # Parsing
//
// The ast subpackage consumes a token sequence and builds the value tree:
//
//	v, err := ast.Parse(input)
//
// # Errors
//
// All failures from both stages have concrete type [*SyntaxError], carrying
// the byte offset of the offending input and wrapping one of the Err*
// sentinel kinds, so callers can match with errors.Is:
//
//	if errors.Is(err, jval.ErrTrailingComma) { ... }
//
// The first error encountered terminates the whole operation; neither stage
// recovers or produces partial results.
//
// # Dialect
//
// The accepted dialect is strict JSON with documented deviations: Unicode
// (\uXXXX) escapes are not decoded and are reported as invalid escapes; raw
// control bytes inside strings are copied verbatim; numbers are scanned as a
// maximal run and validated as 64-bit floats, so integer and fractional
// forms share one representation and leading zeroes are tolerated; duplicate
// object keys are not an error (the last member wins).
package jval
