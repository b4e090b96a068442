// Command golingo translates HTML files from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penlabs/golingo"
	"github.com/penlabs/golingo/cache"
	"github.com/penlabs/golingo/provider"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("golingo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", "", "Target language code (e.g., fr, ar, zh)")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	apiKey := fs.String("api-key", "", "DeepL API key (default: DEEPL_API_KEY env)")
	endpoint := fs.String("endpoint", "", "DeepL endpoint override")
	brands := fs.String("brands", "", "Comma-separated brand tokens to shield from translation")
	cacheTTL := fs.Int("cache-ttl", 0, "In-memory cache TTL in seconds (0 to disable)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	dryRun := fs.Bool("dry-run", false, "List translatable segments without calling the provider")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	diffFile := fs.String("diff", "", "Compare with previous version and show changed segments")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", golingo.Name, golingo.FullVersion())
		if golingo.BuildDate != "unknown" && golingo.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", golingo.BuildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	if *diffFile != "" {
		return runDiff(input, *diffFile, inputName, stdout, *jsonOutput)
	}

	if *dryRun {
		return runDryRun(input, inputName, *targetLang, stdout, *jsonOutput)
	}

	if *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--lang is required")
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("DEEPL_API_KEY")
	}
	if key == "" && !*quiet {
		fmt.Fprintln(stderr, "warning: no DeepL API key, output will equal input (--api-key or DEEPL_API_KEY env)")
	}

	p := provider.NewDeepLProvider(provider.DeepLConfig{
		APIKey:   key,
		Endpoint: *endpoint,
	})

	opts := []golingo.Option{}
	if *brands != "" {
		var tokens []string
		for _, t := range strings.Split(*brands, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, t)
			}
		}
		opts = append(opts, golingo.WithBrandTokens(tokens))
	}
	if *cacheTTL > 0 {
		opts = append(opts, golingo.WithCache(cache.NewInMemoryCache(*cacheTTL)))
	}

	engine := golingo.New(p, opts...)
	lang := engine.NormalizeLang(*targetLang)

	if !*quiet {
		fmt.Fprintf(stderr, "Translating %s to %s...\n", inputName, lang)
	}

	start := time.Now()
	result := engine.TranslateFragment(context.Background(), input, lang)
	elapsed := time.Since(start)

	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		return writeJSON(out, jsonResult{
			Content:    result,
			TargetLang: lang,
			Segments:   len(golingo.Segments(input)),
			Changed:    result != input,
			ElapsedMs:  elapsed.Milliseconds(),
		})
	}

	fmt.Fprint(out, result)

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
	}
	return nil
}

// runDryRun lists the segments a translation would send to the provider.
func runDryRun(input, inputName, targetLang string, stdout io.Writer, jsonOut bool) error {
	segments := golingo.Segments(input)

	if jsonOut {
		type dryRunOutput struct {
			InputFile    string   `json:"input_file"`
			TargetLang   string   `json:"target_lang,omitempty"`
			SegmentCount int      `json:"segment_count"`
			Segments     []string `json:"segments"`
		}
		return writeJSON(stdout, dryRunOutput{
			InputFile:    inputName,
			TargetLang:   targetLang,
			SegmentCount: len(segments),
			Segments:     segments,
		})
	}

	fmt.Fprintf(stdout, "Dry run: %s\n", inputName)
	fmt.Fprintf(stdout, "Found %d translatable segments:\n\n", len(segments))
	for i, seg := range segments {
		if len(seg) > 60 {
			seg = seg[:57] + "..."
		}
		fmt.Fprintf(stdout, "%3d. %q\n", i+1, seg)
	}
	return nil
}

// runDiff compares new content with a previous version and shows what a
// re-translation would send.
func runDiff(newContent, oldPath, inputName string, stdout io.Writer, jsonOut bool) error {
	oldData, err := os.ReadFile(oldPath) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return fmt.Errorf("reading previous version: %w", err)
	}

	diff := golingo.DiffDocuments(string(oldData), newContent)
	stats := diff.Stats()

	if jsonOut {
		type diffOutput struct {
			InputFile    string `json:"input_file"`
			PreviousFile string `json:"previous_file"`
			Stats        struct {
				Added     int `json:"added"`
				Removed   int `json:"removed"`
				Unchanged int `json:"unchanged"`
			} `json:"stats"`
			NeedsTranslation []string `json:"needs_translation"`
			Removed          []string `json:"removed,omitempty"`
		}
		out := diffOutput{
			InputFile:    inputName,
			PreviousFile: filepath.Base(oldPath),
		}
		out.Stats.Added = stats.Added
		out.Stats.Removed = stats.Removed
		out.Stats.Unchanged = stats.Unchanged
		for _, s := range diff.NeedsTranslation() {
			out.NeedsTranslation = append(out.NeedsTranslation, s.Text)
		}
		for _, s := range diff.Removed {
			out.Removed = append(out.Removed, s.Text)
		}
		return writeJSON(stdout, out)
	}

	fmt.Fprintf(stdout, "Diff: %s vs %s\n\n", inputName, filepath.Base(oldPath))
	fmt.Fprintf(stdout, "Summary:\n")
	fmt.Fprintf(stdout, "  Unchanged: %d\n", stats.Unchanged)
	fmt.Fprintf(stdout, "  Added:     %d\n", stats.Added)
	fmt.Fprintf(stdout, "  Removed:   %d\n", stats.Removed)
	fmt.Fprintf(stdout, "\n")

	if !diff.HasChanges() {
		fmt.Fprintf(stdout, "No changes detected.\n")
		return nil
	}

	if len(diff.Added) > 0 {
		fmt.Fprintf(stdout, "Needs translation:\n")
		for _, s := range diff.Added {
			text := s.Text
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			fmt.Fprintf(stdout, "  + %q\n", text)
		}
		fmt.Fprintf(stdout, "\n")
	}

	if len(diff.Removed) > 0 {
		fmt.Fprintf(stdout, "Removed:\n")
		for _, s := range diff.Removed {
			text := s.Text
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			fmt.Fprintf(stdout, "  - %q\n", text)
		}
	}
	return nil
}

// jsonResult is the JSON output format for a translation run.
type jsonResult struct {
	Content    string `json:"content"`
	TargetLang string `json:"target_lang"`
	Segments   int    `json:"segments"`
	Changed    bool   `json:"changed"`
	ElapsedMs  int64  `json:"elapsed_ms"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
