// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval_test

import (
	"encoding/json"
	"os"
	"testing"

	goccy "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
	"github.com/tokentree/jval"
	"github.com/tokentree/jval/ast"
)

// Sinks keep the compiler from discarding the benchmarked results.
var (
	sinkToks  []jval.Token
	sinkValue ast.Value
	sinkAny   any
	sinkBool  bool
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	doc := string(input)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Tokenize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			toks, err := jval.Tokenize(doc)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			sinkToks = toks
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v, err := ast.Parse(doc)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			sinkValue = v
		}
	})

	// The comparisons below decode into interface values, the closest
	// equivalent of the value tree.
	b.Run("encoding/json", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			sinkAny = v
		}
	})

	b.Run("jsoniter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := jsoniter.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			sinkAny = v
		}
	})

	b.Run("goccy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := goccy.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			sinkAny = v
		}
	})

	b.Run("gjson", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			r := gjson.ParseBytes(input)
			sinkBool = r.IsObject()
		}
	})
}
