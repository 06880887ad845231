package extractor

import (
	"fmt"
	"strings"
)

// Category is the semantic role of a top-level group.
type Category int

const (
	// Unrecognized groups are reported and skipped.
	Unrecognized Category = iota
	Color
	Spacing
	Font
	LineHeight
)

var categoryNames = map[Category]string{
	Unrecognized: "unrecognized",
	Color:        "color",
	Spacing:      "spacing",
	Font:         "font",
	LineHeight:   "lineheight",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Classify maps a group name to its Category. Matching is case-insensitive
// and accepts the singular and plural spelling of each category.
func Classify(groupName string) Category {
	switch strings.ToLower(strings.TrimSpace(groupName)) {
	case "color", "colors":
		return Color
	case "spacing", "spacings":
		return Spacing
	case "font", "fonts":
		return Font
	case "lineheight", "lineheights":
		return LineHeight
	default:
		return Unrecognized
	}
}
