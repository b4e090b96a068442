package golingo

import (
	"errors"
	"fmt"
	"testing"
)

func TestProviderError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &ProviderError{Message: "DeepL request failed", Cause: cause, Retryable: true}

	if got := err.Error(); got != "provider error: DeepL request failed: connection refused" {
		t.Errorf("unexpected message: %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}

	bare := &ProviderError{Message: "quota exceeded"}
	if got := bare.Error(); got != "provider error: quota exceeded" {
		t.Errorf("unexpected message: %q", got)
	}
	if bare.Unwrap() != nil {
		t.Error("Unwrap of cause-less error should be nil")
	}
}

func TestCountMismatchError(t *testing.T) {
	err := &CountMismatchError{Expected: 3, Got: 1}
	if got := err.Error(); got != "translation count mismatch: expected 3, got 1" {
		t.Errorf("unexpected message: %q", got)
	}

	var target *CountMismatchError
	if !errors.As(error(err), &target) {
		t.Error("errors.As should match CountMismatchError")
	}
}
