// Package textnorm canonicalizes verse text for storage and comparison.
//
// Loose normalization keeps wording and punctuation and only irons out
// quote style and whitespace. Strict normalization additionally drops
// punctuation and folds case; it is meant for equality tests only.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var quoteReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// Loose replaces curly quotes with ASCII ones, collapses whitespace runs
// to a single space and trims the result.
func Loose(s string) string {
	return collapseSpace(quoteReplacer.Replace(s))
}

// Strict applies Loose, strips every rune that is not a letter, digit or
// whitespace, collapses whitespace again and lowercases.
func Strict(s string) string {
	s = Loose(s)

	s = strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}

		return -1
	}, s)

	return cases.Lower(language.Und).String(collapseSpace(s))
}

// Equal reports whether a and b are the same text under Strict normalization.
func Equal(a, b string) bool {
	return Strict(a) == Strict(b)
}

// isWordRune keeps letters, digits and the underscore. Combining marks
// are dropped, so "cafe\u0301" and "cafe" compare equal.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
