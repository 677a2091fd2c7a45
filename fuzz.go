// Copyright (c) 2024 omalinov. Licensed under MIT.

package cssparser

import (
	"fmt"
	"unicode/utf8"

	"github.com/omalinov/css-parser/decoder"
	"github.com/omalinov/css-parser/tokenizer"
)

// Entry point for fuzz testing.
func Fuzz(b []byte) int {
	codePoints, err := decoder.Decode(b)
	if err != nil {
		// only a UTF-16 byte order mark may fail decoding
		if len(b) < 3 || !(b[0] == 0xFE && b[1] == 0xFF) && !(b[0] == 0xFF && b[1] == 0xFE) {
			panic(fmt.Sprintf("decode failed without a UTF-16 BOM: %v", err))
		}
		return 0
	}

	for _, cp := range codePoints {
		if cp == 0 || cp == '\f' || cp == '\r' {
			panic(fmt.Sprintf("decoder let %U through preprocessing", cp))
		}
		if cp >= 0xD800 && cp <= 0xDFFF {
			panic(fmt.Sprintf("decoder emitted surrogate %U", cp))
		}
	}

	// Re-decoding the canonical stream must be a fixpoint. A stream
	// whose first code point is U+FEFF is the one exception: re-encoding
	// it reintroduces a byte order mark.
	if len(codePoints) == 0 || codePoints[0] != 0xFEFF {
		reencoded := make([]byte, 0, len(codePoints)*utf8.UTFMax)
		var tmp [utf8.UTFMax]byte
		for _, cp := range codePoints {
			n := utf8.EncodeRune(tmp[:], cp)
			reencoded = append(reencoded, tmp[:n]...)
		}
		again, err := decoder.Decode(reencoded)
		if err != nil {
			panic(fmt.Sprintf("re-decode failed: %v", err))
		}
		if len(again) != len(codePoints) {
			panic(fmt.Sprintf("re-decode changed length: %d != %d", len(again), len(codePoints)))
		}
		for i := range again {
			if again[i] != codePoints[i] {
				panic(fmt.Sprintf("re-decode changed %U to %U at %d", codePoints[i], again[i], i))
			}
		}
	}

	tokens, err := tokenizer.Tokenize(codePoints)
	if err != nil {
		// fatal tokenization errors are a valid outcome
		return 0
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == tokenizer.TokenWhitespace && tokens[i-1].Type == tokenizer.TokenWhitespace {
			panic("adjacent whitespace tokens")
		}
	}
	return 1
}
