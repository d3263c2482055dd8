package attmap

import "gopkg.in/yaml.v3"

// PathExAttMap is an OrdAttMap whose string values are expanded when they
// are read: a leading ~ becomes the user's home directory and $VAR or
// ${VAR} references are replaced from the environment. Variables that are
// not set are left in place. Stored values are never rewritten, so
// expansion reflects the environment at read time.
//
// Strings held directly in []string or []any values are expanded too.
type PathExAttMap struct {
	store
}

// NewPathExAttMap creates a new PathExAttMap seeded with entries.
//
// Parameters:
//   - WithLookupEnv to read variables from somewhere other than os.LookupEnv
//   - WithoutExpansion to read raw values
func NewPathExAttMap(entries map[string]any, options ...func(*Config)) *PathExAttMap {
	m := &PathExAttMap{}
	m.Init(entries, options...)
	return m
}

// Init resets the mapping to hold entries. Nested mappings become PathExAttMaps.
func (m *PathExAttMap) Init(entries map[string]any, options ...func(*Config)) {
	m.init(kindInfo{
		name:    "PathExAttMap",
		ordered: true,
		expand:  true,
		newFn:   func() AttMapLike { return new(PathExAttMap) },
	}, entries, options)
}

// UnmarshalJSON JSON deserialization, merging into existing entries
func (m *PathExAttMap) UnmarshalJSON(data []byte) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalJSON(data)
}

// UnmarshalYAML implements yaml.Unmarshaler. Document order becomes
// insertion order.
func (m *PathExAttMap) UnmarshalYAML(node *yaml.Node) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalYAML(node)
}
