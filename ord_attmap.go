package attmap

import "gopkg.in/yaml.v3"

// OrdAttMap is an attribute-accessible mapping that remembers insertion
// order. Re-setting an existing key keeps its position; deleting and
// re-adding a key moves it to the end.
//
// Seed entries passed as a Go map have no order of their own and are
// inserted in sorted key order. Use SetItem or UnmarshalYAML to control
// the layout.
type OrdAttMap struct {
	store
}

// NewOrdAttMap creates a new OrdAttMap seeded with entries.
func NewOrdAttMap(entries map[string]any, options ...func(*Config)) *OrdAttMap {
	m := &OrdAttMap{}
	m.Init(entries, options...)
	return m
}

// Init resets the mapping to hold entries. Nested mappings become OrdAttMaps.
func (m *OrdAttMap) Init(entries map[string]any, options ...func(*Config)) {
	m.init(kindInfo{
		name:    "OrdAttMap",
		ordered: true,
		newFn:   func() AttMapLike { return new(OrdAttMap) },
	}, entries, options)
}

// UnmarshalJSON JSON deserialization, merging into existing entries
func (m *OrdAttMap) UnmarshalJSON(data []byte) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalJSON(data)
}

// UnmarshalYAML implements yaml.Unmarshaler. Document order becomes
// insertion order.
func (m *OrdAttMap) UnmarshalYAML(node *yaml.Node) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalYAML(node)
}
