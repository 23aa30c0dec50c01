package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upper returns the language-neutral upper-case form of s.
// A new Caser is built per call since Casers are not safe for concurrent use.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// HasPrefixFold reports whether s starts with prefix, ignoring case.
// Both sides are upper-cased before comparison; an empty prefix never matches.
func HasPrefixFold(s, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(upper(s), upper(prefix))
}
