package golingo

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Marker formats for shielded spans. The doubled underscores make
// accidental collisions with natural text unlikely; they are still only a
// best-effort aid, since a provider may garble a marker. Unresolved markers
// are left verbatim in the output rather than raising.
const (
	brandMarker   = "__BRAND_%d__"
	bracketMarker = "__PROT_%d__"
)

// bracketRe matches {{...}} and [[...]] templating placeholders,
// non-greedy, spanning newlines.
var bracketRe = regexp.MustCompile(`(?s)\{\{.*?\}\}|\[\[.*?\]\]`)

// BrandPattern compiles a case-sensitive pattern matching any of the given
// brand tokens. Tokens are ordered longest first so that a token that is a
// substring of another ("PEN" inside "PEN.ai") never shadows the longer
// match. Returns nil for an empty token set.
func BrandPattern(tokens []string) *regexp.Regexp {
	if len(tokens) == 0 {
		return nil
	}
	ordered := make([]string, len(tokens))
	copy(ordered, tokens)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	quoted := make([]string, len(ordered))
	for i, t := range ordered {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// ProtectBrands replaces every match of pattern in s with a positional
// __BRAND_i__ marker and returns the shielded string together with the
// ordered bag of originals. Matching is first-match-wins left to right.
func ProtectBrands(s string, pattern *regexp.Regexp) (string, []string) {
	if s == "" || pattern == nil {
		return s, nil
	}
	var bag []string
	shielded := pattern.ReplaceAllStringFunc(s, func(m string) string {
		bag = append(bag, m)
		return fmt.Sprintf(brandMarker, len(bag)-1)
	})
	return shielded, bag
}

// RestoreBrands replaces each __BRAND_i__ marker with bag[i], in bag order.
// Markers the provider garbled simply stay in place.
func RestoreBrands(s string, bag []string) string {
	for i, v := range bag {
		s = strings.ReplaceAll(s, fmt.Sprintf(brandMarker, i), v)
	}
	return s
}

// ProtectBrackets shields {{...}} and [[...]] templating placeholders with
// __PROT_i__ markers. Run after brand protection so a bracket span inside a
// brand token is not captured twice.
func ProtectBrackets(s string) (string, []string) {
	if s == "" {
		return s, nil
	}
	var bag []string
	shielded := bracketRe.ReplaceAllStringFunc(s, func(m string) string {
		bag = append(bag, m)
		return fmt.Sprintf(bracketMarker, len(bag)-1)
	})
	return shielded, bag
}

// RestoreBrackets replaces each __PROT_i__ marker with bag[i]. Applied
// before RestoreBrands, mirroring the protect order in reverse.
func RestoreBrackets(s string, bag []string) string {
	for i, v := range bag {
		s = strings.ReplaceAll(s, fmt.Sprintf(bracketMarker, i), v)
	}
	return s
}
