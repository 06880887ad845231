package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kataras/figma-tokens/pkg/extractor"
)

// Indent is the indentation of the JSON output.
const Indent = "    "

// ToJSON encodes tokens as the tokens.json document consumed by styling
// tools: groups and token names in document order, four-space indentation,
// UTF-8 text without ASCII or HTML escaping and no trailing newline.
func ToJSON(tokens *extractor.TokenSet) ([]byte, error) {
	var compact bytes.Buffer

	compact.WriteByte('{')
	for i, group := range tokens.Groups() {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeJSON(&compact, group.Name); err != nil {
			return nil, err
		}
		compact.WriteByte(':')

		if err := writeGroupJSON(&compact, group); err != nil {
			return nil, fmt.Errorf("group %q: %w", group.Name, err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", Indent); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func writeGroupJSON(buf *bytes.Buffer, group *extractor.Group) error {
	if group.IsSequence() {
		fonts := group.Fonts()
		if fonts == nil {
			fonts = []extractor.FontToken{}
		}
		return writeJSON(buf, fonts)
	}

	buf.WriteByte('{')
	for i, entry := range group.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, entry.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSON(buf, entry.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	return nil
}

// writeJSON appends the compact encoding of v without HTML escaping.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
