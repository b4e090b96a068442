package golingo

import "strings"

// DefaultBaseLang is the language documents are authored in. Requests for
// this language (or anything unrecognized) take the identity path.
const DefaultBaseLang = "en"

// langAliases maps raw locale strings to canonical supported codes.
// Anything absent from this table normalizes to DefaultBaseLang.
var langAliases = map[string]string{
	"en": "en", "en-gb": "en", "en-us": "en",
	"ar": "ar",
	"ru": "ru",
	"fr": "fr",
	"es": "es",
	"de": "de",
	"it": "it",
	"zh": "zh", "zh-cn": "zh", "zh-hans": "zh", "zh-hant": "zh",
}

// SupportedLanguages is the closed set of target languages the engine
// accepts by default.
var SupportedLanguages = map[string]bool{
	"en": true,
	"zh": true,
	"ar": true,
	"ru": true,
	"fr": true,
	"es": true,
	"de": true,
	"it": true,
}

// RTLLanguages contains supported language codes written right to left.
var RTLLanguages = map[string]bool{
	"ar": true,
}

// languageNames maps supported codes to English language names for
// provider prompts.
var languageNames = map[string]string{
	"en": "English",
	"zh": "Chinese",
	"ar": "Arabic",
	"ru": "Russian",
	"fr": "French",
	"es": "Spanish",
	"de": "German",
	"it": "Italian",
}

// Normalize maps an arbitrary locale string to a canonical supported code.
// It lower-cases and trims the input and falls back to DefaultBaseLang for
// empty or unrecognized values. Total over all inputs, never fails.
func Normalize(lang string) string {
	if lang == "" {
		return DefaultBaseLang
	}
	if code, ok := langAliases[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return code
	}
	return DefaultBaseLang
}

// IsRTL reports whether the language is written right to left.
// The input is normalized first.
func IsRTL(lang string) bool {
	return RTLLanguages[Normalize(lang)]
}

// Direction returns "rtl" for right-to-left languages, "ltr" otherwise.
func Direction(lang string) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

// LanguageName returns the English name for a supported language code,
// falling back to the code itself.
func LanguageName(code string) string {
	if name, ok := languageNames[Normalize(code)]; ok {
		return name
	}
	return code
}
