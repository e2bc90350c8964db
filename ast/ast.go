// Copyright (C) 2024 The jval Authors. All Rights Reserved.

// Package ast defines the value tree produced by parsing JSON text, and a
// parser that constructs value trees from a token sequence.
package ast

// A Value is a single node of a parsed JSON document. The concrete types
// are exactly Null, Bool, Number, String, Array, and Object. A value tree
// is acyclic and holds no reference to the source text or the token
// sequence it was parsed from; the caller owns it exclusively.
type Value interface{ isValue() }

// Null is the JSON null constant.
type Null struct{}

// A Bool is a JSON boolean constant, true or false.
type Bool bool

// A Number is a JSON number. Integer and fractional source forms both map
// to a 64-bit float, so very large integers may lose precision.
type Number float64

// A String is a JSON string with its escapes already decoded.
type String string

// An Array is a sequence of values in source order.
type Array []Value

// An Object maps member keys to values. Keys are unique by construction:
// when a document repeats a key, the last member wins. Iteration order is
// unspecified.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}
