// Package textnorm produces comparison-safe forms of free-text labels.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize decomposes s, strips combining marks, lowercases it and collapses
// whitespace runs to a single space. "  Épaule \t Gauche " becomes "epaule gauche".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// Canonicalize is Normalize with every non-alphanumeric rune removed, so
// punctuation and spacing differences never cause a mismatch.
func Canonicalize(s string) string {
	n := Normalize(s)
	var b strings.Builder
	b.Grow(len(n))
	for _, r := range n {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Equal reports whether a and b have the same canonical form.
func Equal(a, b string) bool {
	return Canonicalize(a) == Canonicalize(b)
}
