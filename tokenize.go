package golingo

import (
	"regexp"
	"strings"
)

// TokenKind discriminates the two token variants produced by SplitTags.
type TokenKind int

const (
	// TokenText is a run of document text between tags.
	TokenText TokenKind = iota
	// TokenTag is a matched <...> span, markup included.
	TokenTag
)

// Token is one piece of a flat HTML token stream. Concatenating the Raw
// fields of a stream in order reproduces the input document byte for byte.
type Token struct {
	Kind TokenKind
	Raw  string
}

// SplitTags splits an HTML document into an ordered stream of tag and text
// tokens using a two-state scan. A tag is any '<' with a later '>' and at
// least one character between them; an unclosed '<' and the empty pair "<>"
// remain text. The split is lossless and never fails on malformed markup.
func SplitTags(doc string) []Token {
	var tokens []Token
	start := 0
	i := 0
	for i < len(doc) {
		if doc[i] != '<' {
			i++
			continue
		}
		gap := strings.IndexByte(doc[i+1:], '>')
		if gap < 0 {
			// No closing '>' anywhere ahead; the rest is text.
			break
		}
		if gap == 0 {
			// "<>" is not a tag.
			i += 2
			continue
		}
		if start < i {
			tokens = append(tokens, Token{Kind: TokenText, Raw: doc[start:i]})
		}
		end := i + 1 + gap + 1
		tokens = append(tokens, Token{Kind: TokenTag, Raw: doc[i:end]})
		i = end
		start = end
	}
	if start < len(doc) {
		tokens = append(tokens, Token{Kind: TokenText, Raw: doc[start:]})
	}
	return tokens
}

var (
	scriptOpenRe  = regexp.MustCompile(`(?i)^<\s*script\b`)
	scriptCloseRe = regexp.MustCompile(`(?i)^<\s*/\s*script\b`)
	styleOpenRe   = regexp.MustCompile(`(?i)^<\s*style\b`)
	styleCloseRe  = regexp.MustCompile(`(?i)^<\s*/\s*style\b`)
)

// elementContext tracks whether the scan position is inside a script or
// style element. Text tokens observed while either flag is set are never
// translated.
type elementContext struct {
	inScript bool
	inStyle  bool
}

// observe updates the context for one tag token. Matching is
// case-insensitive and tolerates whitespace and attributes inside the tag.
func (c *elementContext) observe(tag string) {
	switch {
	case scriptCloseRe.MatchString(tag):
		c.inScript = false
	case scriptOpenRe.MatchString(tag):
		c.inScript = true
	case styleCloseRe.MatchString(tag):
		c.inStyle = false
	case styleOpenRe.MatchString(tag):
		c.inStyle = true
	}
}

func (c *elementContext) suppressed() bool {
	return c.inScript || c.inStyle
}

// Segments returns the translatable text segments of an HTML document in
// document order: text tokens outside script/style that the skip classifier
// would send to translation, trimmed. Used for diffing and dry runs.
func Segments(doc string) []string {
	var segs []string
	var ec elementContext
	for _, tok := range SplitTags(doc) {
		if tok.Kind == TokenTag {
			ec.observe(tok.Raw)
			continue
		}
		if ec.suppressed() || ShouldSkip(tok.Raw) {
			continue
		}
		segs = append(segs, strings.TrimSpace(tok.Raw))
	}
	return segs
}
