package buffer

import (
	"strings"
	"unicode"
)

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// IsWordRune reports whether r is considered part of a word for cursor
// motion. Words consist of letters, digits, or underscore characters.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordStart returns the start of the word that ends at or before pos.
// Used for Ctrl+Left.
func WordStart(g TextStorage, pos int) int {
	if g == nil || g.Len() == 0 {
		return 0
	}
	if pos > g.Len() {
		pos = g.Len()
	}
	if pos > 0 {
		pos--
	}
	for pos > 0 && !IsWordRune(g.RuneAt(pos)) {
		pos--
	}
	for pos > 0 && IsWordRune(g.RuneAt(pos-1)) {
		pos--
	}
	return pos
}

// NextWordStart returns the start of the next word after pos.
// Used for Ctrl+Right.
func NextWordStart(g TextStorage, pos int) int {
	if g == nil || g.Len() == 0 {
		return 0
	}
	if pos >= g.Len() {
		return g.Len()
	}
	for pos < g.Len() && IsWordRune(g.RuneAt(pos)) {
		pos++
	}
	for pos < g.Len() && !IsWordRune(g.RuneAt(pos)) {
		pos++
	}
	return pos
}
