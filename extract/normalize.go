// Package extract turns a loaded Dubizzle listing page into a normalized
// vehicle record. Four independent channels (hydrated state, JSON-LD blocks,
// meta tags, visible DOM) each read the same page snapshot; a resolver merges
// their partial results under fixed precedence.
package extract

import (
	"regexp"
	"strings"
)

// arabicDigits maps the Arabic-Indic digits U+0660..U+0669 to ASCII.
var arabicDigits = map[rune]rune{
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// NormalizeDigits rewrites Arabic-Indic digits as ASCII digits and leaves
// every other character untouched. Idempotent.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := arabicDigits[r]; ok {
			return d
		}
		return r
	}, s)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CollapseWhitespace squeezes every whitespace run down to a single space
// and trims the ends. Idempotent.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
