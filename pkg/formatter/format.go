package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/figma-tokens/pkg/extractor"
)

// Format is an output encoding for a TokenSet.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
)

// ParseFormat resolves a format name, accepting the usual aliases
// ("yml", "md").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return "", fmt.Errorf("invalid output format %q (must be json, yaml or markdown)", name)
	}
}

// Extension returns the file extension of the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case YAML:
		return ".yaml"
	case Markdown:
		return ".md"
	default:
		return ".json"
	}
}

// DefaultOutput is the file name written when no output path is given.
func (f Format) DefaultOutput() string {
	return "tokens" + f.Extension()
}

// Encode serializes tokens in the given format. title is only used by the
// markdown format.
func Encode(f Format, tokens *extractor.TokenSet, title string) ([]byte, error) {
	switch f {
	case JSON:
		return ToJSON(tokens)
	case YAML:
		return ToYAML(tokens)
	case Markdown:
		return []byte(ToMarkdown(tokens, title)), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}
