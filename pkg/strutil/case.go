package strutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title converts s to title case using Unicode casing rules for tag. A
// zero tag falls back to English.
func Title(s string, tag language.Tag) string {
	if tag == (language.Tag{}) {
		tag = language.English
	}
	return cases.Title(tag).String(s)
}

// Sentence upper-cases the first letter of s, leaving the rest untouched.
func Sentence(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	head := cases.Upper(language.Und).String(string(runes[0]))
	return head + string(runes[1:])
}

// Slugify lowers s and collapses non-alphanumeric runs into single dashes,
// producing a URL-safe identifier.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteRune('-')
			prevDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
