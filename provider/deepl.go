package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/penlabs/golingo"
)

// DefaultDeepLEndpoint is the free-tier translate endpoint.
const DefaultDeepLEndpoint = "https://api-free.deepl.com/v2/translate"

// defaultDeepLTimeout bounds the one blocking call per document so a slow
// provider cannot stall the caller indefinitely.
const defaultDeepLTimeout = 20 * time.Second

// DeepLConfig holds configuration for the DeepL provider.
type DeepLConfig struct {
	APIKey     string        // DeepL auth key; empty key degrades to passthrough
	Endpoint   string        // Translate endpoint (default: DefaultDeepLEndpoint)
	Timeout    time.Duration // Request timeout (default: 20s)
	HTTPClient *http.Client  // Custom client (optional, timeout ignored if set)
}

// DeepLProvider implements BatchTranslator against the DeepL HTTP API.
// One request carries the whole batch; the response translation list maps
// back positionally.
type DeepLProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewDeepLProvider creates a new DeepL provider.
func NewDeepLProvider(cfg DeepLConfig) *DeepLProvider {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultDeepLEndpoint
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultDeepLTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &DeepLProvider{
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   client,
	}
}

// deepLResponse mirrors the provider wire format:
// {"translations":[{"text":"..."}]}.
type deepLResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate sends all texts in one form-encoded request. With no key
// configured it returns the input unchanged. Result length always equals
// the input length; a short response falls back to source text per item.
func (p *DeepLProvider) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 || p.apiKey == "" {
		return texts, nil
	}

	form := url.Values{}
	for _, t := range texts {
		form.Add("text", t)
	}
	form.Set("auth_key", p.apiKey)
	form.Set("target_lang", strings.ToUpper(targetLang))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &golingo.ProviderError{Message: "building DeepL request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", golingo.UserAgent())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &golingo.ProviderError{Message: "DeepL request failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &golingo.ProviderError{
			Message:   fmt.Sprintf("DeepL returned %s", statusMessage(resp.StatusCode)),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	var out deepLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &golingo.ProviderError{Message: "decoding DeepL response", Cause: err}
	}

	results := make([]string, len(texts))
	for i := range texts {
		if i < len(out.Translations) && out.Translations[i].Text != "" {
			results[i] = out.Translations[i].Text
		} else {
			results[i] = texts[i]
		}
	}
	return results, nil
}

// statusMessage names the DeepL-specific status codes worth telling apart
// in logs.
func statusMessage(code int) string {
	switch code {
	case http.StatusForbidden:
		return "403 (authentication failed)"
	case http.StatusRequestEntityTooLarge:
		return "413 (request size exceeded)"
	case http.StatusTooManyRequests:
		return "429 (too many requests)"
	case 456:
		return "456 (quota exceeded)"
	case http.StatusServiceUnavailable:
		return "503 (service temporarily unavailable)"
	default:
		return fmt.Sprintf("%d", code)
	}
}

// Verify DeepLProvider implements BatchTranslator
var _ BatchTranslator = (*DeepLProvider)(nil)
