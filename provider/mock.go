package provider

import (
	"context"
	"fmt"
)

// MockBatcher is a mock batch translator for testing.
type MockBatcher struct {
	Translations map[string]string              // Map of source text to translation
	Transform    func(text, lang string) string // Optional per-text transform, takes precedence
	Err          error                          // If set, Translate fails with this error
	CallCount    int                            // Number of times Translate was called
	LastTexts    []string                       // Texts from the last call
	LastLang     string                         // Target language from the last call
}

// NewMockBatcher creates a new mock with default translations.
func NewMockBatcher() *MockBatcher {
	return &MockBatcher{
		Translations: map[string]string{
			"Hello":                "Bonjour",
			"World":                "Monde",
			"Hello World":          "Bonjour le monde",
			"Welcome to our site.": "Bienvenue sur notre site.",
		},
	}
}

// Translate returns mock translations in input order.
func (m *MockBatcher) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	m.CallCount++
	m.LastTexts = texts
	m.LastLang = targetLang

	if m.Err != nil {
		return nil, m.Err
	}

	results := make([]string, len(texts))
	for i, text := range texts {
		switch {
		case m.Transform != nil:
			results[i] = m.Transform(text, targetLang)
		default:
			if translation, ok := m.Translations[text]; ok {
				results[i] = translation
			} else {
				// Mark unknown translations so tests can spot them
				results[i] = fmt.Sprintf("(%s)", text)
			}
		}
	}

	return results, nil
}

// Reset resets the call count and recorded request.
func (m *MockBatcher) Reset() {
	m.CallCount = 0
	m.LastTexts = nil
	m.LastLang = ""
}

// Verify MockBatcher implements BatchTranslator
var _ BatchTranslator = (*MockBatcher)(nil)
