package extractor

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FontToken is one typography style. Field order is the serialized key order.
type FontToken struct {
	FontSize   string  `json:"fontSize" yaml:"fontSize"`
	LineHeight string  `json:"lineHeight" yaml:"lineHeight"`
	TextAlign  string  `json:"textAlign" yaml:"textAlign"`
	FontStyle  string  `json:"fontStyle" yaml:"fontStyle"`
	FontWeight float64 `json:"fontWeight" yaml:"fontWeight"`
	FontFamily string  `json:"fontFamily" yaml:"fontFamily"`
	Name       string  `json:"name" yaml:"name"`
}

// Entry is a named token value of a Color, Spacing or LineHeight group.
type Entry struct {
	Name  string
	Value string
}

// Group holds the tokens extracted from one top-level group.
//
// Font groups are an ordered sequence of FontToken records because layer
// names of text styles are not unique. Every other category is a mapping
// from token name to value, kept in document order; writing an existing
// name replaces its value in place.
type Group struct {
	Name     string
	Category Category

	values *orderedmap.OrderedMap[string, string]
	fonts  []FontToken
}

// NewGroup returns an empty group of the given category.
func NewGroup(name string, category Category) *Group {
	g := &Group{Name: name, Category: category}
	if !g.IsSequence() {
		g.values = orderedmap.New[string, string]()
	}
	return g
}

// IsSequence reports whether the group holds FontToken records rather than
// named values.
func (g *Group) IsSequence() bool {
	return g.Category == Font
}

// Put sets a named value. It panics on a Font group.
func (g *Group) Put(name, value string) {
	if g.IsSequence() {
		panic(fmt.Sprintf("extractor: Put on %s group %q", g.Category, g.Name))
	}
	g.values.Set(name, value)
}

// Value returns the value stored under name.
func (g *Group) Value(name string) (string, bool) {
	if g.values == nil {
		return "", false
	}
	return g.values.Get(name)
}

// Entries returns the named values in document order.
func (g *Group) Entries() []Entry {
	if g.values == nil {
		return nil
	}

	entries := make([]Entry, 0, g.values.Len())
	for pair := g.values.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Name: pair.Key, Value: pair.Value})
	}
	return entries
}

// Append adds a typography record. It panics on a non-Font group.
func (g *Group) Append(font FontToken) {
	if !g.IsSequence() {
		panic(fmt.Sprintf("extractor: Append on %s group %q", g.Category, g.Name))
	}
	g.fonts = append(g.fonts, font)
}

// Fonts returns a copy of the typography records in document order.
func (g *Group) Fonts() []FontToken {
	return append([]FontToken(nil), g.fonts...)
}

// Len is the number of tokens in the group.
func (g *Group) Len() int {
	if g.IsSequence() {
		return len(g.fonts)
	}
	return g.values.Len()
}

// TokenSet maps the original group names to their tokens, in document order.
type TokenSet struct {
	groups *orderedmap.OrderedMap[string, *Group]
}

// NewTokenSet returns an empty TokenSet.
func NewTokenSet() *TokenSet {
	return &TokenSet{groups: orderedmap.New[string, *Group]()}
}

// Set stores g under g.Name. A group with the same name is replaced but
// keeps its position.
func (s *TokenSet) Set(g *Group) {
	s.groups.Set(g.Name, g)
}

// Get returns the group stored under name.
func (s *TokenSet) Get(name string) (*Group, bool) {
	return s.groups.Get(name)
}

// Len is the number of groups.
func (s *TokenSet) Len() int {
	return s.groups.Len()
}

// Groups returns the groups in document order.
func (s *TokenSet) Groups() []*Group {
	groups := make([]*Group, 0, s.groups.Len())
	for pair := s.groups.Oldest(); pair != nil; pair = pair.Next() {
		groups = append(groups, pair.Value)
	}
	return groups
}

// Diagnostic is a non-fatal finding about a top-level group.
type Diagnostic struct {
	Group  string
	Reason string
	// Raw is a JSON copy of the group node.
	Raw json.RawMessage
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: group %q with data %s", d.Reason, d.Group, d.Raw)
}
