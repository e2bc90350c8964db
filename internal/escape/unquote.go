// Copyright (C) 2024 The jval Authors. All Rights Reserved.

// Package escape handles unquoting of scanned JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Unquote decodes the body of a JSON string, with the enclosing double
// quotation marks already removed. The eight single-character escapes are
// replaced with their unescaped equivalents; everything else is copied
// verbatim.
//
// Unicode (\uXXXX) escapes are not part of this dialect and are reported as
// errors, as is any other unsupported escape character. The scanner
// validates escapes during its scan, so these error paths guard against
// input that bypassed it.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		b, ok := Decode(src.At(0))
		if !ok {
			return nil, fmt.Errorf("invalid escape character %q", src.At(0))
		}
		dec = append(dec, b)
		src = src.SliceFrom(1)

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// Decode returns the replacement byte for the escape character c, and
// reports whether c is one of the supported escapes.
func Decode(c byte) (byte, bool) {
	switch c {
	case '"', '\\', '/':
		return c, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}
