package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the case-insensitive key of s used for free-text search and
// for string ordering: the NFC normalized, Unicode lowercased text.
// Lowercasing is one-to-one per letter, so "ß" stays "ß" and never matches
// "ss".
//
// A cases.Caser is stateful, so each call builds its own; Fold is safe for
// concurrent use.
func Fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}
