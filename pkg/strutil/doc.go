// Package strutil provides rune-safe string helpers: shuffling, reversal,
// truncation, masking, blank checks and Unicode-aware case conversion.
//
// All helpers that index into a string operate on runes, so multi-byte
// characters are never split.
package strutil
