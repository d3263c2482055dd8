package attmap

import "gopkg.in/yaml.v3"

// EchoAttMap is a PathExAttMap whose attribute access returns the requested
// name itself when no such entry exists. Names beginning with "__" are
// never echoed.
//
// Only Attr echoes: Item still reports ErrKeyNotFound for absent keys and
// Contains still reports false, so templates can reference optional
// attributes while code that subscripts the map sees the real contents.
type EchoAttMap struct {
	store
}

// NewEchoAttMap creates a new EchoAttMap seeded with entries.
func NewEchoAttMap(entries map[string]any, options ...func(*Config)) *EchoAttMap {
	m := &EchoAttMap{}
	m.Init(entries, options...)
	return m
}

// Init resets the mapping to hold entries. Nested mappings become EchoAttMaps.
func (m *EchoAttMap) Init(entries map[string]any, options ...func(*Config)) {
	m.init(kindInfo{
		name:    "EchoAttMap",
		ordered: true,
		expand:  true,
		echo:    true,
		newFn:   func() AttMapLike { return new(EchoAttMap) },
	}, entries, options)
}

// UnmarshalJSON JSON deserialization, merging into existing entries
func (m *EchoAttMap) UnmarshalJSON(data []byte) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalJSON(data)
}

// UnmarshalYAML implements yaml.Unmarshaler. Document order becomes
// insertion order.
func (m *EchoAttMap) UnmarshalYAML(node *yaml.Node) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalYAML(node)
}
