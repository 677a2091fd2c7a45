// Copyright (c) 2024 omalinov. Licensed under MIT.

// Package decoder turns a raw stylesheet byte stream into the canonical
// code-point stream consumed by the tokenizer.
//
// The pipeline is the one mandated for CSS input: sniff the byte order
// mark, decode the bytes as UTF-8 following the WHATWG Encoding
// specification (decode errors become U+FFFD, never failures), and
// apply the CSS input preprocessing rules so that the output contains
// no U+0000, U+000C, or U+000D and no surrogates.
//
//	https://encoding.spec.whatwg.org/#utf-8-decoder
//	https://www.w3.org/TR/css-syntax-3/#input-byte-stream
package decoder

import "errors"

// ErrUnsupportedEncoding is returned when the byte stream carries a
// UTF-16 byte order mark. Only UTF-8 input is supported.
var ErrUnsupportedEncoding = errors.New("cssparser: unsupported encoding in byte stream (UTF-16 BOM)")

const replacement rune = 0xFFFD

type encoding int

const (
	encodingUnknown encoding = iota
	encodingUTF8
	encodingUTF16BE
	encodingUTF16LE
)

// bomSniff inspects the first three bytes of the stream. A mark is only
// recognized when at least three bytes are available.
// https://encoding.spec.whatwg.org/#bom-sniff
func bomSniff(input []byte) encoding {
	if len(input) < 3 {
		return encodingUnknown
	}
	switch {
	case input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF:
		return encodingUTF8
	case input[0] == 0xFE && input[1] == 0xFF:
		return encodingUTF16BE
	case input[0] == 0xFF && input[1] == 0xFE:
		return encodingUTF16LE
	}
	return encodingUnknown
}

// preprocess applies the input preprocessing rules to one decoded code
// point: U+000C and U+000D become U+000A (a LF directly following a CR
// is swallowed), U+0000 becomes U+FFFD. The second return value reports
// whether the rewritten code point is emitted at all.
// https://www.w3.org/TR/css-syntax-3/#input-preprocessing
func preprocess(cp rune, crPending *bool) (rune, bool) {
	switch cp {
	case '\f':
		*crPending = false
		return '\n', true
	case '\r':
		*crPending = true
		return '\n', true
	case '\n':
		if *crPending {
			*crPending = false
			return 0, false
		}
		return '\n', true
	case 0:
		*crPending = false
		return replacement, true
	}
	*crPending = false
	return cp, true
}

// utf8State is the WHATWG UTF-8 decoder automaton. lower and upper are
// the dynamic bounds on the next continuation byte; they are
// (re)initialized whenever a multi-byte sequence starts, so the zero
// value is ready for use.
type utf8State struct {
	needed       int
	cp           rune
	lower, upper byte
}

// feed advances the automaton by one input byte. It returns the decoded
// code point when one is completed (emit), and reports whether the byte
// was consumed: a continuation byte outside the current bounds yields
// U+FFFD without being consumed, so the caller rescans it as a lead.
func (d *utf8State) feed(b byte) (cp rune, emit, consumed bool) {
	if d.needed == 0 {
		switch {
		case b <= 0x7F:
			return rune(b), true, true
		case b >= 0xC2 && b <= 0xDF:
			d.lower, d.upper = 0x80, 0xBF
			d.needed = 1
			d.cp = rune(b & 0x1F)
		case b >= 0xE0 && b <= 0xEF:
			d.lower, d.upper = 0x80, 0xBF
			if b == 0xE0 {
				d.lower = 0xA0
			} else if b == 0xED {
				d.upper = 0x9F
			}
			d.needed = 2
			d.cp = rune(b & 0xF)
		case b >= 0xF0 && b <= 0xF4:
			d.lower, d.upper = 0x80, 0xBF
			if b == 0xF0 {
				d.lower = 0x90
			} else if b == 0xF4 {
				d.upper = 0x8F
			}
			d.needed = 3
			d.cp = rune(b & 0x7)
		default:
			return replacement, true, true
		}
		return 0, false, true
	}
	if b < d.lower || b > d.upper {
		d.needed = 0
		return replacement, true, false
	}
	d.lower, d.upper = 0x80, 0xBF
	d.cp = d.cp<<6 | rune(b&0x3F)
	d.needed--
	if d.needed == 0 {
		return d.cp, true, true
	}
	return 0, false, true
}

// Decode converts a stylesheet byte buffer into its canonical code-point
// sequence. The only failure is a UTF-16 byte order mark; everything
// else decodes, with malformed sequences materialized as U+FFFD. An
// embedded NUL byte terminates decoding at that point.
func Decode(input []byte) ([]rune, error) {
	pos := 0
	switch bomSniff(input) {
	case encodingUTF16BE, encodingUTF16LE:
		return nil, ErrUnsupportedEncoding
	case encodingUTF8:
		pos = 3
	}
	out := make([]rune, 0, len(input)-pos)
	var st utf8State
	crPending := false
	push := func(cp rune) {
		if cp, ok := preprocess(cp, &crPending); ok {
			out = append(out, cp)
		}
	}
	for pos < len(input) {
		b := input[pos]
		if b == 0 {
			if st.needed != 0 {
				push(replacement)
			}
			return out, nil
		}
		cp, emit, consumed := st.feed(b)
		if consumed {
			pos++
		}
		if emit {
			push(cp)
		}
	}
	if st.needed != 0 {
		push(replacement)
	}
	return out, nil
}
