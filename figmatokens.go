package figmatokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/kataras/figma-tokens/pkg/extractor"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/formatter"
)

// ErrNoSource is returned when neither a Figma file nor an input document
// is configured.
var ErrNoSource = errors.New("a Figma file URL or key, or an input document, is required")

// ErrNoAccessToken is returned when a remote file is requested without a
// personal access token.
var ErrNoAccessToken = errors.New("a Figma access token is required to fetch remote files")

// Options configures the extraction.
type Options struct {
	AccessToken string
	File        string           // Figma file URL or bare file key
	Input       string           // exported document JSON on disk; takes precedence over File
	UseRGBA     bool             // "rgba(R, G, B, A)" instead of "#rrggbb"
	Format      formatter.Format // "" = JSON
	Client      *figma.Client    // nil = figma.NewClient(AccessToken)
	Logger      Logger           // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	Tokens      *extractor.TokenSet
	Diagnostics []extractor.Diagnostic
	FileName    string // Figma file name
	Output      []byte // Tokens encoded in Options.Format
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run loads the document, extracts its tokens and encodes them.
func Run(ctx context.Context, opts Options) (*Result, error) {
	doc, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}

	return Process(doc, opts)
}

// Load reads the document from Options.Input or fetches Options.File from
// the Figma API.
func Load(ctx context.Context, opts Options) (*figma.FileResponse, error) {
	if opts.Input != "" {
		opts.logInfo("Reading document from %s...", opts.Input)
		doc, err := figma.ReadFile(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		return doc, nil
	}

	if opts.File == "" {
		return nil, ErrNoSource
	}

	opts.logInfo("Resolving file key...")
	fileKey, err := figma.ResolveFileKey(opts.File)
	if err != nil {
		return nil, fmt.Errorf("resolve file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	client := opts.Client
	if client == nil {
		if opts.AccessToken == "" {
			return nil, ErrNoAccessToken
		}
		opts.logInfo("Authenticating with Figma API...")
		client = figma.NewClient(opts.AccessToken)
	}

	opts.logInfo("Fetching file data from Figma...")
	doc, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	opts.logInfo("File: %s", doc.Name)

	return doc, nil
}

// Process extracts and encodes the tokens of an already loaded document.
// Unrecognized and empty groups are reported through the Logger and kept in
// Result.Diagnostics; they never fail the run.
func Process(doc *figma.FileResponse, opts Options) (*Result, error) {
	format := opts.Format
	if format == "" {
		format = formatter.JSON
	}

	opts.logInfo("Extracting design tokens...")
	extracted, err := extractor.Extract(&doc.Document, extractor.Options{UseRGBA: opts.UseRGBA})
	if err != nil {
		if errors.Is(err, extractor.ErrEmptyDocument) {
			opts.logError("No children found in document.")
		}
		return nil, fmt.Errorf("extract tokens: %w", err)
	}

	for _, d := range extracted.Diagnostics {
		switch d.Reason {
		case extractor.ReasonUnrecognized:
			opts.logWarn("Could not find expected token in group %q, skipping", d.Group)
		default:
			opts.logWarn("Group %q: %s", d.Group, d.Reason)
		}
	}

	opts.logInfo("Encoding %d group(s) as %s...", extracted.Tokens.Len(), format)
	out, err := formatter.Encode(format, extracted.Tokens, doc.Name)
	if err != nil {
		return nil, fmt.Errorf("encode tokens: %w", err)
	}

	return &Result{
		Tokens:      extracted.Tokens,
		Diagnostics: extracted.Diagnostics,
		FileName:    doc.Name,
		Output:      out,
	}, nil
}
