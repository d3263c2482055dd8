package attmap

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlNoder is implemented by every mapping kind in this package.
type yamlNoder interface {
	yamlNode() (*yaml.Node, error)
	unmarshalYAML(node *yaml.Node) error
}

func (m *store) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m.snapshot() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key}
		var value *yaml.Node
		if nested, ok := e.value.(yamlNoder); ok {
			v, err := nested.yamlNode()
			if err != nil {
				return nil, err
			}
			value = v
		} else {
			value = new(yaml.Node)
			if err := value.Encode(m.retrieve(e.value)); err != nil {
				return nil, fmt.Errorf("attmap: encode %q: %w", e.key, err)
			}
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}

// ToYAML renders the mapping as a block YAML document in iteration order.
func (m *store) ToYAML(trailingNewline bool) (string, error) {
	node, err := m.yamlNode()
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", err
	}
	s := string(out)
	if !trailingNewline {
		s = strings.TrimSuffix(s, "\n")
	}
	return s, nil
}

// unmarshalYAML adds the entries of a YAML mapping in document order.
func (m *store) unmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("attmap: cannot unmarshal YAML %s into a mapping", node.ShortTag())
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind == yaml.MappingNode {
			child := m.newKind()
			child.Init(nil, withConfig(m.config()))
			if err := child.(yamlNoder).unmarshalYAML(v); err != nil {
				return err
			}
			if !m.merge(k.Value, child) {
				m.SetItem(k.Value, child)
			}
			continue
		}
		var value any
		if err := v.Decode(&value); err != nil {
			return fmt.Errorf("attmap: decode %q: %w", k.Value, err)
		}
		m.SetItem(k.Value, value)
	}
	return nil
}
