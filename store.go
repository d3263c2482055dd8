package attmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// kindInfo describes the behavior a concrete mapping kind layers on the
// shared store.
type kindInfo struct {
	name    string
	ordered bool // iterate in insertion order
	expand  bool // expand paths on retrieval
	echo    bool // Attr echoes missing names
	newFn   func() AttMapLike
}

// store is the state shared by every mapping kind. Kinds embed it and
// supply their kindInfo from Init.
type store struct {
	mu    sync.RWMutex
	data  map[string]any
	order []string // insertion order, ordered kinds only
	cfg   Config
	kind  kindInfo
}

// entry is a key-value pair captured by a snapshot.
type entry struct {
	key   string
	value any
}

// kinded is implemented by every mapping kind in this package.
type kinded interface {
	kindName() string
	base() *store
}

func (m *store) init(kind kindInfo, entries map[string]any, options []func(*Config)) {
	var cfg Config
	for _, o := range options {
		o(&cfg)
	}
	m.mu.Lock()
	m.kind = kind
	m.cfg = cfg
	m.data = make(map[string]any, max(cfg.sizeHint, len(entries)))
	m.order = nil
	m.mu.Unlock()
	m.AddEntries(entries)
}

func (m *store) base() *store {
	return m
}

func (m *store) kindName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.kind.name == "" {
		return "AttMap"
	}
	return m.kind.name
}

// newKind allocates an uninitialized mapping of the receiver's kind.
func (m *store) newKind() AttMapLike {
	m.mu.RLock()
	newFn := m.kind.newFn
	m.mu.RUnlock()
	if newFn == nil {
		return new(AttMap)
	}
	return newFn()
}

func (m *store) config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// finalize converts mapping values into the receiver's kind. A mapping that
// is, or reaches, the receiver is replaced by a clone taken before insertion.
func (m *store) finalize(value any) any {
	if k, ok := value.(kinded); !ok || k.kindName() != m.kindName() {
		entries, ok := toStringMap(value)
		if !ok {
			return value
		}
		child := m.newKind()
		child.Init(entries, withConfig(m.config()))
		value = child
	}
	if reaches(value, m) {
		return value.(AttMapLike).Clone()
	}
	return value
}

// reaches reports whether value is target or holds it in a nested mapping.
func reaches(value any, target *store) bool {
	k, ok := value.(kinded)
	if !ok {
		return false
	}
	s := k.base()
	if s == target {
		return true
	}
	for _, e := range s.snapshot() {
		if reaches(e.value, target) {
			return true
		}
	}
	return false
}

// retrieve applies retrieval-time transformations to a stored value.
func (m *store) retrieve(value any) any {
	m.mu.RLock()
	expand := m.kind.expand && !m.cfg.noExpand
	lookup := m.cfg.lookupEnv
	m.mu.RUnlock()
	if !expand {
		return value
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return expandValue(value, lookup)
}

// Item implements Subscripter.
func (m *store) Item(key string) (any, error) {
	m.mu.RLock()
	value, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return m.retrieve(value), nil
}

// Contains implements Container.
func (m *store) Contains(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

func (m *store) SetItem(key string, value any) {
	value = m.finalize(value)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]any)
	}
	if _, ok := m.data[key]; !ok && m.kind.ordered {
		m.order = append(m.order, key)
	}
	m.data[key] = value
}

func (m *store) DelItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(m.data, key)
	if m.kind.ordered {
		m.order = lo.Without(m.order, key)
	}
	return nil
}

func (m *store) Attr(name string) (any, error) {
	if value, err := m.Item(name); err == nil {
		return value, nil
	}
	m.mu.RLock()
	echo := m.kind.echo
	m.mu.RUnlock()
	if echo && !strings.HasPrefix(name, "__") {
		return name, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
}

func (m *store) Get(key string, def any) any {
	value, err := m.Item(key)
	if err != nil {
		return def
	}
	return value
}

func (m *store) IsNull(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return ok && value == nil
}

func (m *store) NonNull(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return ok && value != nil
}

// AddEntries applies entries in sorted key order so ordered kinds get a
// deterministic layout from an unordered seed.
func (m *store) AddEntries(entries map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		value := entries[key]
		if m.merge(key, value) {
			continue
		}
		m.SetItem(key, value)
	}
}

// merge folds a mapping value into an existing nested mapping under key.
func (m *store) merge(key string, value any) bool {
	m.mu.RLock()
	existing, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	nested, ok := existing.(AttMapLike)
	if !ok {
		return false
	}
	var entries map[string]any
	if other, isMap := value.(AttMapLike); isMap {
		entries = other.ToMap()
	} else if entries, ok = toStringMap(value); !ok {
		return false
	}
	nested.AddEntries(entries)
	return true
}

// Size returns the number of entries in the mapping.
func (m *store) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// IsZero reports whether the mapping has no entries.
func (m *store) IsZero() bool {
	return m.Size() == 0
}

// Clear removes all entries, keeping kind and configuration.
func (m *store) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]any, max(m.cfg.sizeHint, 0))
	m.order = nil
}

// snapshot captures the raw entries in iteration order.
func (m *store) snapshot() []entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	if m.kind.ordered {
		keys = m.order
	} else {
		keys = lo.Keys(m.data)
		slices.Sort(keys)
	}
	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{key: k, value: m.data[k]}
	}
	return entries
}

// Range calls yield for each entry in iteration order until yield returns
// false. It iterates over a snapshot, so yield may modify the mapping.
func (m *store) Range(yield func(key string, value any) bool) {
	for _, e := range m.snapshot() {
		if !yield(e.key, m.retrieve(e.value)) {
			return
		}
	}
}

// All is the iterator version of Range.
func (m *store) All() func(yield func(string, any) bool) {
	return m.Range
}

// Keys is the iterator version for iterating over all keys.
func (m *store) Keys() func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for _, e := range m.snapshot() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values is the iterator version for iterating over all values.
func (m *store) Values() func(yield func(any) bool) {
	return func(yield func(any) bool) {
		m.Range(func(_ string, value any) bool {
			return yield(value)
		})
	}
}

func (m *store) ToMap() map[string]any {
	a := make(map[string]any, m.Size())
	m.Range(func(key string, value any) bool {
		if nested, ok := value.(AttMapLike); ok {
			value = nested.ToMap()
		}
		a[key] = value
		return true
	})
	return a
}

func (m *store) Clone() AttMapLike {
	c := m.newKind()
	c.Init(nil, withConfig(m.config()))
	for _, e := range m.snapshot() {
		value := e.value
		if nested, ok := value.(AttMapLike); ok {
			value = nested.Clone()
		}
		c.SetItem(e.key, value)
	}
	return c
}

// String implement the formatting output interface fmt.Stringer
func (m *store) String() string {
	const limit = 1024
	var b strings.Builder
	b.WriteString(m.kindName())
	b.WriteByte('[')
	for i, e := range m.snapshot() {
		if i == limit {
			b.WriteString(" ...")
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%v", e.key, m.retrieve(e.value))
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON JSON serialization, keys in iteration order
func (m *store) MarshalJSON() ([]byte, error) {
	marshal := json.Marshal
	if jsonMarshal != nil {
		marshal = jsonMarshal
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.snapshot() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshal(e.key)
		if err != nil {
			return nil, err
		}
		v, err := marshal(m.retrieve(e.value))
		if err != nil {
			return nil, fmt.Errorf("attmap: marshal %q: %w", e.key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *store) unmarshalJSON(data []byte) error {
	var a map[string]any
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &a); err != nil {
			return err
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
	}
	m.AddEntries(a)
	return nil
}

func (m *store) initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.kind.newFn != nil
}

// toStringMap reports whether value is a string-keyed mapping and returns
// its entries.
func toStringMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	case AttMapLike:
		return v.ToMap(), true
	case map[any]any:
		entries := make(map[string]any, len(v))
		for k, e := range v {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			entries[s] = e
		}
		return entries, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	entries := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		entries[it.Key().String()] = it.Value().Interface()
	}
	return entries, true
}
