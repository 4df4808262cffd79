package parser

import (
	"unicode"
	"unicode/utf8"
)

// Token is a single lexical unit together with its byte offsets in the
// raw line. Offsets let the classifier inspect the original spacing of
// multi-word names (Start inclusive, End exclusive).
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits a raw line into tokens. Runs of whitespace separate
// tokens; each comma and each question mark is its own single-character
// token even when glued to a word ("5 Rebis," → "5", "Rebis", ",").
// Any input tokenizes to some sequence, possibly empty.
func Tokenize(line string) []Token {
	var tokens []Token
	start := -1

	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, Token{Text: line[start:end], Start: start, End: end})
			start = -1
		}
	}

	for i, r := range line {
		switch {
		case unicode.IsSpace(r):
			flush(i)
		case r == ',' || r == '?':
			flush(i)
			end := i + utf8.RuneLen(r)
			tokens = append(tokens, Token{Text: line[i:end], Start: i, End: end})
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(line))

	return tokens
}

// texts returns just the token strings, for places where offsets don't matter.
func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}
