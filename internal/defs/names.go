package defs

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of an item name: trimmed and NFC.
// "Piatră" typed with a combining breve and the precomposed form compare equal.
func Normalize(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Fold strips diacritics for fonts without the glyphs ("Oțel" -> "Otel").
func Fold(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, name)
	if err != nil {
		return name
	}
	return out
}
