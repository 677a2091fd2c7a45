// Copyright (c) 2024 omalinov. Licensed under MIT.

/*
Package tokenizer generates tokens for a CSS3 input.

It implements the tokenization algorithms of the CSS Syntax Level 3
specification located at:

	https://www.w3.org/TR/css-syntax-3/#tokenizer-algorithms

The input is a code-point stream that has already been decoded and
preprocessed (see the decoder package); tokenization runs over the whole
stream in one call:

	tokens, err := tokenizer.Tokenize(codePoints)

Recoverable parse errors — an unescaped newline in a string, a malformed
url() — are represented in the stream as BAD-STRING and BAD-URL tokens
and do not stop tokenization. An unterminated comment or an EOF inside a
bare url() is fatal: Tokenize returns an error and no tokens.

Tokens that carry data beyond their value string have a non-nil .Extra
field. For TokenHash, TokenExtraHash records whether the hash name would
also parse as an identifier. For TokenNumber, TokenPercentage, and
TokenDimension, TokenExtraNumeric holds the converted numeric value (a
64-bit integer or a float64, per the integer flag) and, for dimensions,
the unit.
*/
package tokenizer
