// Copyright (c) 2024 omalinov. Licensed under MIT.

/*
Package cssparser implements the front end of a CSS parser: the decoder
that turns a raw stylesheet byte stream into Unicode code points, and
the tokenizer that turns those code points into CSS syntax tokens.

The pipeline follows the CSS Syntax Level 3 and WHATWG Encoding
specifications. Decoding never fails on malformed UTF-8 — errors become
U+FFFD — but a UTF-16 byte order mark is rejected, since only UTF-8
stylesheets are supported:

	tokens, err := cssparser.Tokenize(data)
	if err != nil {
		// unsupported encoding, unterminated comment, EOF in url()
	}
	for _, tok := range tokens {
		// ...
	}

Parse runs the same pipeline when only the success indicator matters.
Recoverable tokenization errors do not surface here; they appear in the
token stream as BAD-STRING and BAD-URL tokens.
*/
package cssparser

import (
	"io"

	"golang.org/x/text/transform"

	"github.com/omalinov/css-parser/decoder"
	"github.com/omalinov/css-parser/tokenizer"
)

// Parse decodes and tokenizes a stylesheet, reporting only success.
func Parse(input []byte) error {
	_, err := Tokenize(input)
	return err
}

// Tokenize decodes and tokenizes a stylesheet, returning the token
// stream. On error the partial output is discarded.
func Tokenize(input []byte) ([]tokenizer.Token, error) {
	codePoints, err := decoder.Decode(input)
	if err != nil {
		return nil, err
	}
	return tokenizer.Tokenize(codePoints)
}

// NewReader returns a reader over the canonical code-point stream of r,
// re-encoded as UTF-8: byte order mark stripped, malformed sequences
// replaced with U+FFFD, newlines and NULs normalized. Reads fail with
// decoder.ErrUnsupportedEncoding on UTF-16 input.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, decoder.NewNormalizer())
}
