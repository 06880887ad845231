// Package figmatokens pulls design tokens (colors, spacing, typography and
// line heights) out of a Figma file and normalizes them into a stable token
// document for styling tools.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/kataras/figma-tokens" // package figmatokens
//
// # Document layout
//
// The first page of the file holds one frame per token group. A group's
// name selects its category, case-insensitively and in singular or plural
// form: "Color(s)", "Spacing(s)", "Font(s)" and "LineHeight(s)". Other
// groups are reported and skipped.
//
//	Page 1
//	├── Colors       (rectangles; first fill is the color)
//	├── Spacing      (rectangles; bounding-box width is the value)
//	├── Fonts        (text layers; the text style is the record)
//	└── LineHeights  (text layers; line height in px is the value)
//
// # Quick start
//
//	result, err := figmatokens.Run(ctx, figmatokens.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    File:        "https://www.figma.com/design/ABC123/Tokens",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tokens.json", result.Output, 0644)
//
// The JSON output keeps groups and tokens in document order:
//
//	{
//	    "Colors": {
//	        "primary": "#1a2b3c"
//	    },
//	    "Spacing": {
//	        "md": "12px"
//	    }
//	}
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages and warnings about skipped groups. A nil Logger silences all
// output.
//
// # Errors
//
// A document without groups fails with extractor.ErrEmptyDocument. Malformed
// token layers fail the whole run with an *extractor.ItemError naming the
// group, the layer and the field; no partial token document is produced.
package figmatokens
