package golingo

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// BatchTranslator is the interface for batch translation backends. Result
// length and order must exactly match the input: result[i] is the
// translation of texts[i]. Implementations return honest errors; the Engine
// absorbs them into the fail-open identity path.
type BatchTranslator interface {
	Translate(ctx context.Context, texts []string, targetLang string) ([]string, error)
}

// TranslationCache is the interface for optional cross-request translation
// caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Engine is the HTML translation pipeline. It holds no per-request state
// and is safe for concurrent use across independent documents.
type Engine struct {
	baseLang     string
	supported    map[string]bool
	brandTokens  []string
	brandPattern *regexp.Regexp
	markerName   string
	provider     BatchTranslator
	cache        TranslationCache
	logger       *zap.Logger
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithBaseLang sets the language documents are authored in.
func WithBaseLang(lang string) Option {
	return func(e *Engine) {
		e.baseLang = Normalize(lang)
	}
}

// WithSupportedLanguages restricts the set of target languages. Requests
// for anything outside the set clamp to the base language.
func WithSupportedLanguages(codes []string) Option {
	return func(e *Engine) {
		supported := make(map[string]bool, len(codes))
		for _, c := range codes {
			supported[Normalize(c)] = true
		}
		e.supported = supported
	}
}

// WithBrandTokens sets the brand names shielded from translation.
func WithBrandTokens(tokens []string) Option {
	return func(e *Engine) {
		e.brandTokens = tokens
	}
}

// WithCache sets an optional translation cache consulted per segment
// before batching.
func WithCache(cache TranslationCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets a logger for fail-open events. The Engine stays silent
// without one.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMarkerName overrides the name of the diagnostic meta tag injected
// before </head>.
func WithMarkerName(name string) Option {
	return func(e *Engine) {
		e.markerName = name
	}
}

// New creates an Engine backed by the given provider. A nil provider is
// valid and degrades every translation to the identity path.
func New(provider BatchTranslator, opts ...Option) *Engine {
	e := &Engine{
		baseLang:   DefaultBaseLang,
		supported:  SupportedLanguages,
		markerName: "golingo-lang",
		provider:   provider,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.brandPattern = BrandPattern(e.brandTokens)
	return e
}

// BaseLang returns the configured base language.
func (e *Engine) BaseLang() string {
	return e.baseLang
}

// NormalizeLang maps an arbitrary locale string to a supported target
// code, clamping anything unsupported to the base language.
func (e *Engine) NormalizeLang(lang string) string {
	code := Normalize(lang)
	if !e.supported[code] {
		return e.baseLang
	}
	return code
}

// translationJob queues one shielded text segment for the batch call,
// remembering its output position and restore bags.
type translationJob struct {
	pos        int
	shielded   string
	original   string
	brandBag   []string
	bracketBag []string
}

// TranslateFragment translates the visible text of an HTML document into
// lang and finalizes the document's language metadata. It is a total
// function: identity when lang normalizes to the base language or the
// document is empty, and fail-open to the source text on any provider
// failure. Tag boundaries, attribute values and script/style bodies are
// never altered.
func (e *Engine) TranslateFragment(ctx context.Context, doc, lang string) string {
	lang = e.NormalizeLang(lang)
	if lang == e.baseLang || strings.TrimSpace(doc) == "" {
		return doc
	}

	tokens := SplitTags(doc)
	out := make([]string, len(tokens))
	var jobs []translationJob
	var ec elementContext

	for i, tok := range tokens {
		if tok.Kind == TokenTag {
			ec.observe(tok.Raw)
			out[i] = tok.Raw
			continue
		}
		if ec.suppressed() || ShouldSkip(tok.Raw) {
			out[i] = tok.Raw
			continue
		}
		shielded, brandBag := ProtectBrands(tok.Raw, e.brandPattern)
		shielded, bracketBag := ProtectBrackets(shielded)
		jobs = append(jobs, translationJob{
			pos:        i,
			shielded:   shielded,
			original:   tok.Raw,
			brandBag:   brandBag,
			bracketBag: bracketBag,
		})
	}

	if len(jobs) > 0 {
		texts := make([]string, len(jobs))
		for i, job := range jobs {
			texts[i] = job.shielded
		}
		results := e.translateBatch(ctx, texts, lang)
		for i, job := range jobs {
			translated := results[i]
			if strings.TrimSpace(translated) == "" {
				// Empty result counts as failure for this segment.
				out[job.pos] = job.original
				continue
			}
			translated = RestoreBrackets(translated, job.bracketBag)
			translated = RestoreBrands(translated, job.brandBag)
			out[job.pos] = translated
		}
	}

	return e.finalizeDocument(strings.Join(out, ""), lang)
}

// TranslateText translates a single non-HTML string with the same
// protection and fail-open contract as TranslateFragment, minus
// tokenization and document post-processing.
func (e *Engine) TranslateText(ctx context.Context, text, lang string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	lang = e.NormalizeLang(lang)
	if lang == e.baseLang {
		return text
	}
	shielded, brandBag := ProtectBrands(text, e.brandPattern)
	shielded, bracketBag := ProtectBrackets(shielded)
	result := e.translateBatch(ctx, []string{shielded}, lang)[0]
	if strings.TrimSpace(result) == "" {
		return text
	}
	result = RestoreBrackets(result, bracketBag)
	return RestoreBrands(result, brandBag)
}

// translateBatch issues one provider call for every cache miss in texts and
// returns a slice of the same length and order. Provider errors, count
// mismatches and a nil provider all degrade to returning the miss texts
// unchanged; cache hits survive either way.
func (e *Engine) translateBatch(ctx context.Context, texts []string, lang string) []string {
	results := make([]string, len(texts))
	missIdx := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))

	for i, t := range texts {
		if e.cache != nil {
			if v, ok := e.cache.Get(CacheKey(HashText(t), lang)); ok {
				results[i] = v
				continue
			}
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, t)
	}

	if len(missTexts) == 0 {
		return results
	}

	if e.provider == nil {
		for k, i := range missIdx {
			results[i] = missTexts[k]
		}
		return results
	}

	translated, err := e.provider.Translate(ctx, missTexts, lang)
	if err != nil || len(translated) != len(missTexts) {
		if e.logger != nil {
			e.logger.Warn("batch translation failed, serving source text",
				zap.String("lang", lang),
				zap.Int("segments", len(missTexts)),
				zap.Error(err))
		}
		for k, i := range missIdx {
			results[i] = missTexts[k]
		}
		return results
	}

	for k, i := range missIdx {
		results[i] = translated[k]
		if e.cache != nil && strings.TrimSpace(translated[k]) != "" {
			_ = e.cache.Set(CacheKey(HashText(missTexts[k]), lang), translated[k])
		}
	}
	return results
}

var (
	htmlTagRe      = regexp.MustCompile(`(?i)<html\b`)
	htmlOpenRe     = regexp.MustCompile(`(?i)(<html\b)([^>]*?)>`)
	htmlLangAttrRe = regexp.MustCompile(`(?i)(<html\b[^>]*?)\s+lang="[^"]*"`)
	htmlDirAttrRe  = regexp.MustCompile(`(?i)(<html\b[^>]*?\b)dir="[^"]*"`)
	headCloseRe    = regexp.MustCompile(`(?i)</head>`)
)

// finalizeDocument rewrites the document's language metadata in place: sets
// lang on the <html> tag, forces dir="rtl" for right-to-left languages and
// strips dir otherwise, then injects a diagnostic meta marker before the
// first </head>. Documents without an <html> tag or </head> are returned
// with the affected step silently skipped.
func (e *Engine) finalizeDocument(doc, lang string) string {
	if htmlTagRe.MatchString(doc) {
		doc = htmlLangAttrRe.ReplaceAllString(doc, "$1")
		doc = htmlOpenRe.ReplaceAllString(doc, `$1 lang="`+lang+`"$2>`)
		if IsRTL(lang) {
			if htmlDirAttrRe.MatchString(doc) {
				doc = htmlDirAttrRe.ReplaceAllString(doc, `${1}dir="rtl"`)
			} else {
				doc = htmlOpenRe.ReplaceAllString(doc, `$1 dir="rtl"$2>`)
			}
		} else {
			doc = htmlDirAttrRe.ReplaceAllString(doc, "$1")
		}
	}
	if loc := headCloseRe.FindStringIndex(doc); loc != nil {
		doc = doc[:loc[0]] + `<meta name="` + e.markerName + `" content="` + lang + `">` + doc[loc[0]:]
	}
	return doc
}
