package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/figma-tokens/pkg/extractor"
)

var cssPrefixes = map[extractor.Category]string{
	extractor.Color:      "color",
	extractor.Spacing:    "space",
	extractor.LineHeight: "leading",
	extractor.Font:       "font",
}

// ToMarkdown renders tokens as a markdown document with one CSS custom
// property block per group, ready to be pasted into a stylesheet. Font
// groups additionally get a table of their records.
func ToMarkdown(tokens *extractor.TokenSet, title string) string {
	var sb strings.Builder

	if title == "" {
		sb.WriteString("# Design Tokens\n\n")
	} else {
		sb.WriteString(fmt.Sprintf("# Design Tokens - %s\n\n", title))
	}
	sb.WriteString("This document contains the design tokens extracted from the Figma file.\n\n")

	for _, group := range tokens.Groups() {
		sb.WriteString(fmt.Sprintf("## %s\n\n", group.Name))

		if group.Len() == 0 {
			sb.WriteString("_No tokens._\n\n")
			continue
		}

		prefix := cssPrefixes[group.Category]

		if group.IsSequence() {
			writeFontTable(&sb, group.Fonts())
		}

		sb.WriteString("```css\n")
		if group.IsSequence() {
			for i, font := range group.Fonts() {
				// CSS font shorthand: weight size/line-height family.
				sb.WriteString(fmt.Sprintf("--%s-%s: %g %s/%s '%s';\n",
					prefix, cssName(font.Name, i), font.FontWeight, font.FontSize, font.LineHeight, font.FontFamily))
			}
		} else {
			for i, entry := range group.Entries() {
				sb.WriteString(fmt.Sprintf("--%s-%s: %s;\n", prefix, cssName(entry.Name, i), entry.Value))
			}
		}
		sb.WriteString("```\n\n")
	}

	return sb.String()
}

func writeFontTable(sb *strings.Builder, fonts []extractor.FontToken) {
	sb.WriteString("| Name | Family | Style | Weight | Size | Line Height | Align |\n")
	sb.WriteString("|------|--------|-------|--------|------|-------------|-------|\n")
	for _, font := range fonts {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %g | %s | %s | %s |\n",
			font.Name, font.FontFamily, font.FontStyle, font.FontWeight, font.FontSize, font.LineHeight, font.TextAlign))
	}
	sb.WriteString("\n")
}

// cssName turns a layer name into a custom property suffix, falling back to
// the token's position when nothing usable is left.
func cssName(name string, index int) string {
	if kebab := toKebabCase(name); kebab != "" {
		return kebab
	}
	return fmt.Sprintf("%d", index+1)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
// Spaces, underscores, dots and slashes become hyphens; other characters
// outside [a-z0-9-] are removed and repeated hyphens collapse.
func toKebabCase(s string) string {
	s = strings.ToLower(s)

	var result strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			result.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '_' || r == '.' || r == '/':
			if !lastHyphen {
				result.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}
