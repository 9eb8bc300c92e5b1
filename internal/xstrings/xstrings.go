// Package xstrings provides helpers for strings.
package xstrings

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// ContainsFold reports whether substr is within s, ignoring case.
// Case is compared with Unicode case folding.
func ContainsFold(s, substr string) bool {
	c := cases.Fold()
	return strings.Contains(c.String(s), c.String(substr))
}

// SplitWords inserts spaces between the words of a camel case identifier.
// Runs of upper case letters are treated as acronyms, e.g. "FSDJump" becomes "FSD Jump".
func SplitWords(s string) string {
	rr := []rune(s)
	var b strings.Builder
	for i, r := range rr {
		if i > 0 && unicode.IsUpper(r) {
			prev := rr[i-1]
			nextIsLower := i+1 < len(rr) && unicode.IsLower(rr[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// JoinsOrEmpty joins strings together like [strings.Join],
// but returns a fallback when the elem slice is empty.
func JoinsOrEmpty(elems []string, sep, empty string) string {
	if len(elems) == 0 {
		return empty
	}
	return strings.Join(elems, sep)
}
