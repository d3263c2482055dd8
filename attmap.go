// Package attmap provides string-keyed mappings whose entries can be read
// both by subscript (Item) and by attribute name (Attr).
//
// Four kinds are provided:
//   - AttMap: unordered, iterates in sorted key order
//   - OrdAttMap: preserves insertion order
//   - PathExAttMap: ordered, expands ~ and environment variables in string
//     values on retrieval
//   - EchoAttMap: a PathExAttMap whose attribute access echoes the requested
//     name when it is missing
//
// Mapping values stored into any kind are converted into that same kind, so
// nested configuration trees stay uniformly accessible. All kinds are safe
// for concurrent use.
package attmap

import (
	"errors"

	"gopkg.in/yaml.v3"
)

var (
	// ErrKeyNotFound is returned by subscript lookups of absent keys.
	ErrKeyNotFound = errors.New("attmap: key not found")
	// ErrAttributeNotFound is returned by attribute lookups of absent names.
	ErrAttributeNotFound = errors.New("attmap: attribute not found")
)

// Subscripter is implemented by mappings that support subscript lookup.
// Lookup of an absent key must return an error wrapping ErrKeyNotFound.
type Subscripter interface {
	Item(key string) (any, error)
}

// Container is implemented by mappings that support containment checks.
type Container interface {
	Contains(key string) bool
}

// Initializer is implemented by mappings that can be (re)built from a seed
// collection of entries. A nil entries map yields an empty mapping.
type Initializer interface {
	Init(entries map[string]any, options ...func(*Config))
}

// AttMapLike is the capability shared by every mapping kind in this package.
type AttMapLike interface {
	Subscripter
	Container
	Initializer

	// SetItem stores value under key. Mapping values are converted into the
	// receiver's kind.
	SetItem(key string, value any)
	// DelItem removes key, returning an error wrapping ErrKeyNotFound when
	// the key is absent.
	DelItem(key string) error
	// Attr reads an entry by attribute name.
	Attr(name string) (any, error)
	// Get returns the value for key, or def when the key is absent.
	Get(key string, def any) any
	// IsNull reports whether key is present with a nil value.
	IsNull(key string) bool
	// NonNull reports whether key is present with a non-nil value.
	NonNull(key string) bool
	// AddEntries merges entries into the mapping. A mapping value merged
	// onto an existing nested mapping is merged recursively.
	AddEntries(entries map[string]any)

	Size() int
	IsZero() bool
	Clear()
	Range(yield func(key string, value any) bool)
	All() func(yield func(string, any) bool)
	Keys() func(yield func(string) bool)
	Values() func(yield func(any) bool)

	// ToMap returns a deep copy with nested mappings as plain maps.
	ToMap() map[string]any
	// ToYAML renders the mapping as a YAML document in iteration order.
	ToYAML(trailingNewline bool) (string, error)
	// Clone returns a deep copy of the same kind and configuration.
	Clone() AttMapLike
	String() string
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Config defines configurable mapping options.
type Config struct {
	sizeHint  int
	lookupEnv func(key string) (string, bool)
	noExpand  bool
}

// WithPresize configures a new mapping with capacity enough to hold
// sizeHint entries. If sizeHint is zero or negative, the value is ignored.
func WithPresize(sizeHint int) func(*Config) {
	return func(c *Config) {
		c.sizeHint = sizeHint
	}
}

// WithLookupEnv replaces os.LookupEnv as the variable source used by
// path-expanding kinds.
func WithLookupEnv(lookup func(key string) (string, bool)) func(*Config) {
	return func(c *Config) {
		c.lookupEnv = lookup
	}
}

// WithoutExpansion disables retrieval-time expansion for path-expanding kinds.
func WithoutExpansion() func(*Config) {
	return func(c *Config) {
		c.noExpand = true
	}
}

// withConfig carries a resolved configuration to nested children and clones.
func withConfig(cfg Config) func(*Config) {
	return func(c *Config) {
		*c = cfg
	}
}

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// AttMap is an unordered attribute-accessible mapping. Iteration, String,
// JSON and YAML output visit keys in sorted order.
//
// Use NewAttMap or Init before first use. An AttMap must not be copied
// after first use.
type AttMap struct {
	store
}

// NewAttMap creates a new AttMap seeded with entries.
func NewAttMap(entries map[string]any, options ...func(*Config)) *AttMap {
	m := &AttMap{}
	m.Init(entries, options...)
	return m
}

// Init resets the mapping to hold entries. Nested mappings become AttMaps.
func (m *AttMap) Init(entries map[string]any, options ...func(*Config)) {
	m.init(kindInfo{
		name:  "AttMap",
		newFn: func() AttMapLike { return new(AttMap) },
	}, entries, options)
}

// UnmarshalJSON JSON deserialization, merging into existing entries
func (m *AttMap) UnmarshalJSON(data []byte) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalJSON(data)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *AttMap) UnmarshalYAML(node *yaml.Node) error {
	if !m.initialized() {
		m.Init(nil)
	}
	return m.unmarshalYAML(node)
}

var (
	_ AttMapLike = (*AttMap)(nil)
	_ AttMapLike = (*OrdAttMap)(nil)
	_ AttMapLike = (*PathExAttMap)(nil)
	_ AttMapLike = (*EchoAttMap)(nil)
)
