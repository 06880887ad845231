package formatter

import (
	"bytes"

	"go.yaml.in/yaml/v3"

	"github.com/kataras/figma-tokens/pkg/extractor"
)

// ToYAML encodes tokens as a YAML document with the same shape and order as
// the JSON output.
func ToYAML(tokens *extractor.TokenSet) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, group := range tokens.Groups() {
		value, err := groupNode(group)
		if err != nil {
			return nil, err
		}
		root.Content = append(root.Content, stringNode(group.Name), value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func groupNode(group *extractor.Group) (*yaml.Node, error) {
	if group.IsSequence() {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, font := range group.Fonts() {
			var n yaml.Node
			if err := n.Encode(font); err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, &n)
		}
		return seq, nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range group.Entries() {
		mapping.Content = append(mapping.Content, stringNode(entry.Name), stringNode(entry.Value))
	}
	return mapping, nil
}

// stringNode is tagged explicitly so that names like "yes" or "1" stay strings.
func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
