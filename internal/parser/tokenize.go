// Package parser implements the console input tokenizer. Input is split into
// argument tokens on whitespace, with single and double quotes preserving
// embedded whitespace.
package parser

import "unicode"

// Tokenize splits a raw input line into argument tokens.
//
// Rules:
//   - Whitespace outside quotes separates tokens; runs of whitespace never
//     produce empty tokens.
//   - A quote character (" or ') opens a quoted span; everything up to the
//     matching close quote is appended verbatim to the current token. The
//     quote characters themselves are consumed. Quotes are recognized
//     anywhere, so a"b c" yields the single token `ab c`.
//   - An unterminated quote at end of input still emits the partial token.
//   - An explicitly quoted empty string ("" or '') yields an empty token.
//   - Empty or all-whitespace input yields no tokens.
func Tokenize(input string) []string {
	var out []string
	var cur []rune
	var quote rune // 0 when outside a quoted span
	pending := false

	flush := func() {
		if len(cur) > 0 || pending {
			out = append(out, string(cur))
			cur = cur[:0]
		}
		pending = false
	}

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur = append(cur, r)
			}
		case r == '"' || r == '\'':
			quote = r
			pending = true
		case unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}
	flush()

	return out
}
