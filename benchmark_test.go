package golingo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/penlabs/golingo"
	"github.com/penlabs/golingo/cache"
	"github.com/penlabs/golingo/provider"
)

// Benchmarks for performance validation

func BenchmarkHashText(b *testing.B) {
	text := "Hello World, this is a sample text for hashing"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.HashText(text)
	}
}

func BenchmarkCacheKey(b *testing.B) {
	hash := "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.CacheKey(hash, "fr")
	}
}

func BenchmarkSplitTags_Small(b *testing.B) {
	doc := `<div><p>Hello World</p></div>`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.SplitTags(doc)
	}
}

func BenchmarkSplitTags_Medium(b *testing.B) {
	doc := `<!DOCTYPE html>
<html lang="en">
<head><title>Prospectus</title></head>
<body>
	<nav><a href="/">Home</a><a href="/about">About</a></nav>
	<main>
		<h1>Welcome to Our School</h1>
		<p>This is a paragraph with some text.</p>
		<p>Another paragraph here.</p>
		<ul>
			<li>Item one</li>
			<li>Item two</li>
			<li>Item three</li>
		</ul>
	</main>
	<footer><p>Copyright 2024</p></footer>
</body>
</html>`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.SplitTags(doc)
	}
}

func BenchmarkTranslateFragment_Cached(b *testing.B) {
	p := provider.NewMockBatcher()
	engine := golingo.New(p, golingo.WithCache(cache.NewInMemoryCache(3600)))

	doc := `<div><p>Hello</p><p>World</p></div>`

	// Prime the cache
	engine.TranslateFragment(context.Background(), doc, "fr")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.TranslateFragment(context.Background(), doc, "fr")
	}
}

func BenchmarkTranslateFragment_Uncached(b *testing.B) {
	p := provider.NewMockBatcher()
	engine := golingo.New(p)
	doc := `<div><p>Hello</p><p>World</p></div>`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.TranslateFragment(context.Background(), doc, "fr")
	}
}

func BenchmarkShouldSkip(b *testing.B) {
	samples := []string{"Hello World", "12.5%", "   ", "2024", "Bienvenue"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.ShouldSkip(samples[i%len(samples)])
	}
}

func BenchmarkProtectBrands(b *testing.B) {
	pattern := golingo.BrandPattern([]string{"PEN.ai", "PEN", "Cognitive College"})
	text := strings.Repeat("Welcome to PEN.ai and Cognitive College. ", 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.ProtectBrands(text, pattern)
	}
}

func BenchmarkNormalize(b *testing.B) {
	langs := []string{"en", "EN-GB", "zh-hans", "ar", "pt-br"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		golingo.Normalize(langs[i%len(langs)])
	}
}
