package provider

import (
	"errors"
	"strings"
	"testing"

	"github.com/penlabs/golingo"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
		want     []string
		wantErr  bool
	}{
		{
			name:     "translations object",
			content:  `{"translations":["Bonjour","Monde"]}`,
			expected: 2,
			want:     []string{"Bonjour", "Monde"},
		},
		{
			name:     "direct array",
			content:  `["Bonjour","Monde"]`,
			expected: 2,
			want:     []string{"Bonjour", "Monde"},
		},
		{
			name:     "object with other array key",
			content:  `{"results":["Bonjour"]}`,
			expected: 1,
			want:     []string{"Bonjour"},
		},
		{
			name:     "count mismatch",
			content:  `{"translations":["Bonjour"]}`,
			expected: 2,
			wantErr:  true,
		},
		{
			name:     "not json",
			content:  `Bonjour, Monde`,
			expected: 2,
			wantErr:  true,
		},
		{
			name:     "object without array",
			content:  `{"translations":"Bonjour"}`,
			expected: 1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseResponse(tt.content, tt.expected)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseResponse failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseResponse_CountMismatchType(t *testing.T) {
	_, err := parseResponse(`["only one"]`, 3)

	var mismatch *golingo.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CountMismatchError, got %v", err)
	}
	if mismatch.Expected != 3 || mismatch.Got != 1 {
		t.Errorf("mismatch = %d/%d, want 3/1", mismatch.Expected, mismatch.Got)
	}
}

func TestToStringSlice_NonStringValues(t *testing.T) {
	got, err := toStringSlice([]interface{}{"a", 42.0, true}, 3)
	if err != nil {
		t.Fatalf("toStringSlice failed: %v", err)
	}
	if got[1] != "42" || got[2] != "true" {
		t.Errorf("non-string values should be stringified: %v", got)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  string
		want bool
	}{
		{"Rate limit exceeded", true},
		{"request timeout", true},
		{"connection refused", true},
		{"status code 503", true},
		{"status code 429", true},
		{"invalid api key", false},
		{"model not found", false},
	}

	for _, tt := range tests {
		if got := isRetryableError(errors.New(tt.err)); got != tt.want {
			t.Errorf("isRetryableError(%q) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := buildSystemPrompt("fr")

	if !strings.Contains(prompt, "French") {
		t.Error("prompt should name the target language")
	}
	if !strings.Contains(prompt, "__BRAND_0__") || !strings.Contains(prompt, "__PROT_1__") {
		t.Error("prompt should instruct the model to preserve markers")
	}
	if !strings.Contains(prompt, `"translations"`) {
		t.Error("prompt should pin the response format")
	}
}
