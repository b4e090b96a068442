package golingo

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// numericPunctRe matches text built entirely from digits, light punctuation
// and whitespace, e.g. "12.5%", "(2024)", "+44 20 7351".
var numericPunctRe = regexp.MustCompile(`^[\s0-9.,:+()%-]+$`)

// ShouldSkip reports whether a text segment carries no translatable
// content: empty or all-whitespace, a single character, no letters or
// digits at all, or purely numeric/punctuation. Skipped segments pass
// through the pipeline untouched, which keeps decorative glyphs, prices
// and phone numbers out of the provider quota.
func ShouldSkip(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return true
	}
	if utf8.RuneCountInString(trimmed) <= 1 {
		return true
	}
	if !hasWordRune(trimmed) {
		return true
	}
	return numericPunctRe.MatchString(text)
}

// hasWordRune reports whether s contains at least one Unicode letter or
// digit.
func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
