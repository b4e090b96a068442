// Package golingo translates the visible text of HTML documents on the fly
// while leaving markup, scripts, styles and embedded tracking untouched.
//
// The document is split into a flat stream of tag and text tokens rather than
// a DOM tree, so malformed markup never breaks delivery: the split is
// lossless and only matched <...> spans are treated as tags. Text tokens that
// carry no linguistic content are skipped, brand names and templating
// placeholders ({{...}}, [[...]]) are shielded behind opaque markers, and the
// surviving segments are sent to the translation provider in a single batch.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "fmt"
//	    "os"
//
//	    "github.com/penlabs/golingo"
//	    "github.com/penlabs/golingo/provider"
//	)
//
//	func main() {
//	    p := provider.NewDeepLProvider(provider.DeepLConfig{
//	        APIKey: os.Getenv("DEEPL_API_KEY"),
//	    })
//
//	    engine := golingo.New(p,
//	        golingo.WithBrandTokens([]string{"More House", "PEN.ai"}),
//	    )
//
//	    out := engine.TranslateFragment(context.Background(), html, "fr")
//	    fmt.Println(out)
//	}
//
// TranslateFragment is total: any provider failure, malformed response or
// malformed HTML degrades to returning the source text, never an error.
package golingo
