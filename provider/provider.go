// Package provider contains batch translation backends.
package provider

import "github.com/penlabs/golingo"

// BatchTranslator is the interface for batch translation backends.
// This is an alias to the main package interface for convenience.
type BatchTranslator = golingo.BatchTranslator
