package ident

// Map is a case-insensitive string-keyed map. Keys are compared via
// Normalize; the casing of the key used in the most recent Set call is
// preserved and returned by GetOriginalKey and Keys.
type Map[V any] struct {
	entries map[string]mapEntry[V]
}

type mapEntry[V any] struct {
	originalKey string
	value       V
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{entries: make(map[string]mapEntry[V])}
}

// NewMapWithCapacity creates an empty Map pre-sized for capacity entries.
func NewMapWithCapacity[V any](capacity int) *Map[V] {
	return &Map[V]{entries: make(map[string]mapEntry[V], capacity)}
}

// Set stores value under key, overwriting any existing entry regardless
// of the casing it was originally stored with. The casing of this call's
// key becomes the new original key.
func (m *Map[V]) Set(key string, value V) {
	m.entries[Normalize(key)] = mapEntry[V]{originalKey: key, value: value}
}

// SetIfAbsent stores value under key only if no entry exists yet
// (case-insensitively). It reports whether the value was stored.
func (m *Map[V]) SetIfAbsent(key string, value V) bool {
	norm := Normalize(key)
	if _, ok := m.entries[norm]; ok {
		return false
	}
	m.entries[norm] = mapEntry[V]{originalKey: key, value: value}
	return true
}

// Get looks up key case-insensitively.
func (m *Map[V]) Get(key string) (V, bool) {
	e, ok := m.entries[Normalize(key)]
	return e.value, ok
}

// GetOriginalKey returns the casing key was last Set with, or "" if key is
// not present.
func (m *Map[V]) GetOriginalKey(key string) string {
	e, ok := m.entries[Normalize(key)]
	if !ok {
		return ""
	}
	return e.originalKey
}

// Has reports whether key is present, ignoring case.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.entries[Normalize(key)]
	return ok
}

// Delete removes key, ignoring case, and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	norm := Normalize(key)
	if _, ok := m.entries[norm]; !ok {
		return false
	}
	delete(m.entries, norm)
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Keys returns the original-cased keys in unspecified order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.originalKey)
	}
	return keys
}

// Range calls fn for every entry in unspecified order, stopping early if
// fn returns false.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for _, e := range m.entries {
		if !fn(e.originalKey, e.value) {
			return
		}
	}
}

// Clear removes all entries.
func (m *Map[V]) Clear() {
	m.entries = make(map[string]mapEntry[V])
}

// Clone returns a shallow copy: entries are copied, values are not.
func (m *Map[V]) Clone() *Map[V] {
	clone := NewMapWithCapacity[V](len(m.entries))
	for k, e := range m.entries {
		clone.entries[k] = e
	}
	return clone
}
