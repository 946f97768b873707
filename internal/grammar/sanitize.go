package grammar

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var punctuation = strings.NewReplacer(
	"(", "",
	")", "",
	"%", "",
	"-", ",",
)

// Sanitize normalizes raw query text before grammar dispatch: lower-cased,
// trimmed, parentheses and percent signs removed, dashes turned into commas.
func Sanitize(query string) string {
	// A Caser holds state, so each call gets its own.
	s := strings.TrimSpace(cases.Lower(language.Und).String(query))
	return punctuation.Replace(s)
}

// Select returns the first grammar whose prefix the sanitized query starts
// with, along with the remainder after the prefix.
func Select(sanitized string) (Grammar, string, bool) {
	for _, g := range All {
		if rest, ok := strings.CutPrefix(sanitized, g.Prefix()); ok {
			return g, rest, true
		}
	}
	return 0, "", false
}
