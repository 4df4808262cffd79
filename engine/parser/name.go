package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// alphabetic reports whether s is non-empty and contains only letters.
func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// parseCount parses a group quantity: digits only, strictly positive.
// The digit scan runs before conversion, so the engine never sees a
// count that failed to parse.
func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// validName reports whether tokens[from..to] form a valid multi-word
// name: every token alphabetic, and the raw-line span they cover free of
// consecutive whitespace. A name's internal spacing must be exactly one
// space, so "Black  Blood" (double space) is rejected even though it
// tokenizes the same as "Black Blood".
func validName(line string, tokens []Token, from, to int) bool {
	if from > to {
		return false
	}
	for i := from; i <= to; i++ {
		if !alphabetic(tokens[i].Text) {
			return false
		}
	}
	prevSpace := false
	for _, r := range line[tokens[from].Start:tokens[to].End] {
		space := unicode.IsSpace(r)
		if space && prevSpace {
			return false
		}
		prevSpace = space
	}
	return true
}

// ValidWordName reports whether s is a single alphabetic word, the
// lexical rule for ingredient, trophy, monster and sign names.
func ValidWordName(s string) bool {
	return alphabetic(s)
}

// ValidCompoundName reports whether s is one or more alphabetic words
// separated by exactly one space, the lexical rule for potion names.
func ValidCompoundName(s string) bool {
	if s == "" {
		return false
	}
	for _, w := range strings.Split(s, " ") {
		if !alphabetic(w) {
			return false
		}
	}
	return true
}

// joinName reconstructs a multi-word name with single spaces.
func joinName(tokens []Token, from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, tokens[i].Text)
	}
	return strings.Join(parts, " ")
}
