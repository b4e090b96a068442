package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/penlabs/golingo"
)

// diagSample is a tiny document run through the pipeline by /_diag to prove
// the translation path end to end.
const diagSample = `<!doctype html><html><head><title>T</title></head><body><p>Hello from More House, Knightsbridge.</p></body></html>`

type server struct {
	engine    *golingo.Engine
	publicDir string
	logger    *zap.Logger
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/_diag", s.handleDiag)
	r.Get("/prospectus/*", s.handleDocument)

	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w,
		"<h1>golingo document translator</h1>",
		"<p>Try: <code>/prospectus/prospectus_template.html?lang=fr</code></p>",
		"<p>Debug: add <code>?translate=off</code> to view without translation.</p>")
}

// handleDiag exercises the translation path on a fixed sample and reports
// whether the requested language altered it.
func (s *server) handleDiag(w http.ResponseWriter, r *http.Request) {
	lang := s.requestLang(r)
	out := s.engine.TranslateFragment(r.Context(), diagSample, lang)
	changed := 0
	if out != diagSample && lang != s.engine.BaseLang() {
		changed = 1
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "lang=%s<br>sample_changed=%d", lang, changed)
}

// handleDocument serves a file from the public directory (working directory
// as fallback), translating HTML on the way out. Translation never blocks
// delivery: any failure serves the original bytes.
func (s *server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	path, ok := s.lookupFile(name)
	if !ok {
		s.logger.Error("document not found", zap.String("name", name))
		http.Error(w, "Document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("X-Robots-Tag", "noindex, nofollow")

	if !isHTMLFile(path) {
		http.ServeFile(w, r, path)
		return
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is confined by lookupFile
	if err != nil {
		s.logger.Error("reading document", zap.String("path", path), zap.Error(err))
		http.Error(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	body := string(data)
	lang := s.requestLang(r)

	if lang != s.engine.BaseLang() && !bypassRequested(r) && strings.TrimSpace(body) != "" {
		s.logger.Info("translating document",
			zap.String("name", name),
			zap.String("lang", lang),
			zap.Int("bytes", len(body)))
		translated := s.engine.TranslateFragment(r.Context(), body, lang)
		if strings.TrimSpace(translated) != "" {
			body = translated
			w.Header().Set("Cache-Control", "public, max-age=60")
			w.Header().Set("Vary", "Accept-Language")
		} else {
			s.logger.Warn("translator returned empty document, serving original",
				zap.String("name", name), zap.String("lang", lang))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, body)
}

// lookupFile resolves a requested name against the public directory, then
// the working directory, rejecting path escapes.
func (s *server) lookupFile(name string) (string, bool) {
	clean := filepath.Clean("/" + name)
	if clean == "/" {
		return "", false
	}
	clean = clean[1:] // relative again, traversal stripped

	for _, dir := range []string{s.publicDir, "."} {
		candidate := filepath.Join(dir, clean)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// requestLang clamps the ?lang= parameter to a supported language.
func (s *server) requestLang(r *http.Request) string {
	return s.engine.NormalizeLang(r.URL.Query().Get("lang"))
}

func bypassRequested(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("translate"), "off")
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
