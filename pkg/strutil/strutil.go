package strutil

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// Shuffle returns a random permutation of the runes in s. The empty string
// and single-rune strings are returned unchanged.
func Shuffle(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	rand.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Truncate shortens s to at most maxLen runes, appending an ellipsis when
// anything was cut. maxLen values below one yield the empty string.
func Truncate(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "…"
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DefaultIfBlank returns fallback when s is blank, s otherwise.
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// IsAlphanumeric reports whether s is non-empty and consists only of
// letters and digits.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether s is non-empty and consists only of digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Mask replaces all but the last visible runes of s with '*'. When s has
// no more than visible runes it is masked entirely.
func Mask(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	masked := len(runes) - visible
	return strings.Repeat("*", masked) + string(runes[masked:])
}
