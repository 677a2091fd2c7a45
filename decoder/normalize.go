// Copyright (c) 2024 omalinov. Licensed under MIT.

package decoder

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Normalizer rewrites a raw stylesheet byte stream into the canonical
// code-point stream re-encoded as UTF-8. It runs the same pipeline as
// Decode — BOM sniff, WHATWG UTF-8 decode, input preprocessing — in
// streaming form, for use with transform.NewReader and friends.
type Normalizer struct {
	st         utf8State
	crPending  bool
	bomChecked bool
	done       bool
}

// NewNormalizer returns a Normalizer ready for use.
func NewNormalizer() *Normalizer {
	return new(Normalizer)
}

func (n *Normalizer) Reset() {
	*n = Normalizer{}
}

func (n *Normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if n.done {
		return 0, len(src), nil
	}
	if !n.bomChecked {
		if len(src) < 3 && !atEOF {
			return 0, 0, transform.ErrShortSrc
		}
		switch bomSniff(src) {
		case encodingUTF16BE, encodingUTF16LE:
			return 0, 0, ErrUnsupportedEncoding
		case encodingUTF8:
			nSrc = 3
		}
		n.bomChecked = true
	}
	for nSrc < len(src) {
		if len(dst)-nDst < utf8.UTFMax {
			return nDst, nSrc, transform.ErrShortDst
		}
		b := src[nSrc]
		if b == 0 {
			if n.st.needed != 0 {
				n.st.needed = 0
				nDst += n.write(dst[nDst:], replacement)
			}
			n.done = true
			return nDst, len(src), nil
		}
		cp, emit, consumed := n.st.feed(b)
		if consumed {
			nSrc++
		}
		if emit {
			nDst += n.write(dst[nDst:], cp)
		}
	}
	if atEOF && n.st.needed != 0 {
		if len(dst)-nDst < utf8.UTFMax {
			return nDst, nSrc, transform.ErrShortDst
		}
		n.st.needed = 0
		nDst += n.write(dst[nDst:], replacement)
	}
	return nDst, nSrc, nil
}

// write emits one preprocessed code point into dst, which is known to
// have room for it.
func (n *Normalizer) write(dst []byte, cp rune) int {
	cp, ok := preprocess(cp, &n.crPending)
	if !ok {
		return 0
	}
	return utf8.EncodeRune(dst, cp)
}
