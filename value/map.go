package value

import "slices"

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value Value
}

// Map is an insertion-ordered string-keyed mapping.
// Documents loaded by the parser are never modified after construction; Set is
// used only while building a tree.
type Map struct {
	entries []Entry
	index   map[string]int
}

// NewMap returns an empty mapping with room for n entries.
func NewMap(n int) *Map {
	return &Map{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Set stores val under key. An existing key keeps its position.
func (m *Map) Set(key string, val Value) *Map {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = val
		return m
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: val})
	return m
}

// SetDefault stores val under key only if key is not already present.
func (m *Map) SetDefault(key string, val Value) *Map {
	if _, ok := m.index[key]; !ok {
		m.Set(key, val)
	}
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.entries[i].Value, true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	return slices.Clone(m.entries)
}

// Value wraps the mapping as a Value.
func (m *Map) Value() Value {
	if m == nil {
		m = NewMap(0)
	}
	return Value{kind: KindMapping, m: m}
}

func (m *Map) equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := range m.Len() {
		a, b := m.entries[i], o.entries[i]
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}
