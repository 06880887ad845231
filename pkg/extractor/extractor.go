package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// Diagnostic reasons.
const (
	ReasonUnrecognized = "could not find expected token category"
	ReasonEmpty        = "group has no children"
)

// Options configures extraction.
type Options struct {
	// UseRGBA emits colors as "rgba(R, G, B, A)" instead of "#rrggbb".
	UseRGBA bool
}

// Result is the outcome of a successful extraction.
type Result struct {
	Tokens      *TokenSet
	Diagnostics []Diagnostic
}

// Extract walks the token groups of a document and normalizes them into a
// TokenSet.
//
// The groups are the children of the first page of root. Every group is
// classified by name and handed to the matching extractor; the result is
// keyed by the group's original name. Unrecognized groups are recorded as
// diagnostics and skipped. The first data-shape error aborts the run and is
// returned as an *ItemError. ErrEmptyDocument is returned when there are no
// groups at all.
//
// root is only read; the result holds no references into it.
func Extract(root *figma.Node, opts Options) (*Result, error) {
	if root == nil || len(root.Children) == 0 || len(root.Children[0].Children) == 0 {
		return nil, ErrEmptyDocument
	}

	result := &Result{Tokens: NewTokenSet()}

	groups := root.Children[0].Children
	for i := range groups {
		node := &groups[i]

		category := Classify(node.Name)
		if category == Unrecognized {
			result.Diagnostics = append(result.Diagnostics, diagnose(node, ReasonUnrecognized))
			continue
		}

		group, err := ExtractGroup(node, category, opts)
		if err != nil {
			return nil, err
		}
		if group.Len() == 0 {
			result.Diagnostics = append(result.Diagnostics, diagnose(node, ReasonEmpty))
		}

		result.Tokens.Set(group)
	}

	return result, nil
}

func diagnose(node *figma.Node, reason string) Diagnostic {
	raw, err := json.Marshal(node)
	if err != nil {
		raw, _ = json.Marshal(err.Error())
	}
	return Diagnostic{Group: node.Name, Reason: reason, Raw: raw}
}

// ExtractGroup dispatches a group node to the extractor of its category.
func ExtractGroup(node *figma.Node, category Category, opts Options) (*Group, error) {
	switch category {
	case Color:
		return ExtractColors(node, opts.UseRGBA)
	case Spacing:
		return ExtractSpacing(node)
	case Font:
		return ExtractFonts(node)
	case LineHeight:
		return ExtractLineHeights(node)
	default:
		return nil, fmt.Errorf("group %q (%s): %w", node.Name, category, ErrUnimplementedCategory)
	}
}

// ExtractColors reads the first fill of every swatch in the group.
// A later swatch with the same name overwrites an earlier one.
func ExtractColors(node *figma.Node, useRGBA bool) (*Group, error) {
	group := NewGroup(node.Name, Color)

	for i := range node.Children {
		swatch := &node.Children[i]

		if len(swatch.Fills) == 0 {
			return nil, itemError(node, i, "fills", ErrMissingFillData)
		}
		c := swatch.Fills[0].Color
		if c == nil {
			return nil, itemError(node, i, "fills[0].color", fmt.Errorf("%w: no color object", ErrInvalidColorData))
		}

		value, err := FormatColor(c.R, c.G, c.B, c.A, useRGBA)
		if err != nil {
			return nil, itemError(node, i, "fills[0].color", err)
		}
		group.Put(swatch.Name, value)
	}

	return group, nil
}

// ExtractSpacing turns the bounding-box width of every child into a
// dimension token.
func ExtractSpacing(node *figma.Node) (*Group, error) {
	group := NewGroup(node.Name, Spacing)

	for i := range node.Children {
		child := &node.Children[i]

		if child.AbsoluteBoundingBox == nil {
			return nil, itemError(node, i, "absoluteBoundingBox.width", ErrMissingBoundingBox)
		}

		value, err := FormatDimension(child.AbsoluteBoundingBox.Width)
		if err != nil {
			return nil, itemError(node, i, "absoluteBoundingBox.width", err)
		}
		group.Put(child.Name, value)
	}

	return group, nil
}

// ExtractFonts builds one FontToken per text layer, in document order.
//
// The font style is the lowercased second segment of the PostScript name
// ("Inter-SemiBold" gives "semibold"); names without a hyphen are "regular".
func ExtractFonts(node *figma.Node) (*Group, error) {
	group := NewGroup(node.Name, Font)

	for i := range node.Children {
		child := &node.Children[i]

		style := child.Style
		if style == nil {
			return nil, itemError(node, i, "style", ErrMissingStyleData)
		}
		if style.FontFamily == "" {
			return nil, itemError(node, i, "style.fontFamily", ErrMissingStyleData)
		}
		if style.FontPostScriptName == "" {
			return nil, itemError(node, i, "style.fontPostScriptName", ErrMissingStyleData)
		}

		fontStyle := "regular"
		if segments := strings.Split(style.FontPostScriptName, "-"); len(segments) > 1 {
			fontStyle = strings.ToLower(segments[1])
		}

		size, err := FormatDimension(style.FontSize)
		if err != nil {
			return nil, itemError(node, i, "style.fontSize", err)
		}
		lineHeight, err := FormatDimension(style.LineHeightPx)
		if err != nil {
			return nil, itemError(node, i, "style.lineHeightPx", err)
		}

		group.Append(FontToken{
			FontSize:   size,
			LineHeight: lineHeight,
			TextAlign:  strings.ToLower(style.TextAlignHorizontal),
			FontStyle:  fontStyle,
			FontWeight: style.FontWeight,
			FontFamily: style.FontFamily,
			Name:       child.Name,
		})
	}

	return group, nil
}

// ExtractLineHeights maps every text layer to its line height in pixels,
// the same shape as a spacing group.
func ExtractLineHeights(node *figma.Node) (*Group, error) {
	group := NewGroup(node.Name, LineHeight)

	for i := range node.Children {
		child := &node.Children[i]

		if child.Style == nil {
			return nil, itemError(node, i, "style.lineHeightPx", ErrMissingStyleData)
		}

		value, err := FormatDimension(child.Style.LineHeightPx)
		if err != nil {
			return nil, itemError(node, i, "style.lineHeightPx", err)
		}
		group.Put(child.Name, value)
	}

	return group, nil
}

func itemError(group *figma.Node, index int, field string, err error) error {
	return &ItemError{
		Group: group.Name,
		Child: group.Children[index].Name,
		Index: index,
		Field: field,
		Err:   err,
	}
}
