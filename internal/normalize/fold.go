// Package normalize turns locale-specific statement fields into canonical values.
// Every function in this package is pure and safe for concurrent use.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s, removes diacritics and collapses whitespace.
// "Przelew  WEWNĘTRZNY" -> "przelew wewnetrzny"
func Fold(s string) string {
	return strings.ToLower(collapse(StripDiacritics(s)))
}

// StripDiacritics removes combining marks, so "Żabka" becomes "Zabka".
// Polish ł/Ł have no decomposition and are mapped explicitly.
func StripDiacritics(s string) string {
	// Transformers keep internal state, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), runes.Map(mapStroke), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func mapStroke(r rune) rune {
	switch r {
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	}
	return r
}

// collapse trims s and replaces every whitespace run with a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
