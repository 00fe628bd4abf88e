package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// prefKind tags the scalar type held under a key.
type prefKind int

const (
	kindInt prefKind = iota
	kindInt64
	kindFloat64
	kindString
	kindStringSet
)

// prefValue is one stored scalar.
type prefValue struct {
	kind prefKind
	i    int
	i64  int64
	f64  float64
	s    string
	set  map[string]bool
}

// MemoryPrefStore is a map-backed PrefStore. It is the default backend when
// no database is configured and the standard test double. Commit is a no-op;
// values are visible as soon as they are set.
type MemoryPrefStore struct {
	mu     sync.RWMutex
	values map[string]prefValue
}

// NewMemoryPrefStore creates an empty in-memory preference store.
func NewMemoryPrefStore() *MemoryPrefStore {
	return &MemoryPrefStore{
		values: make(map[string]prefValue),
	}
}

// Ensure MemoryPrefStore implements PrefStore.
var _ PrefStore = (*MemoryPrefStore)(nil)

// GetInt implements PrefStore.GetInt.
func (m *MemoryPrefStore) GetInt(_ context.Context, key string, def int) (int, error) {
	if key == "" {
		return def, ErrKeyEmpty
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return def, nil
	}
	if v.kind != kindInt {
		return def, ErrWrongType
	}
	return v.i, nil
}

// SetInt implements PrefStore.SetInt.
func (m *MemoryPrefStore) SetInt(_ context.Context, key string, value int) error {
	if key == "" {
		return ErrKeyEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = prefValue{kind: kindInt, i: value}
	return nil
}

// GetInt64 implements PrefStore.GetInt64.
func (m *MemoryPrefStore) GetInt64(_ context.Context, key string, def int64) (int64, error) {
	if key == "" {
		return def, ErrKeyEmpty
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return def, nil
	}
	if v.kind != kindInt64 {
		return def, ErrWrongType
	}
	return v.i64, nil
}

// SetInt64 implements PrefStore.SetInt64.
func (m *MemoryPrefStore) SetInt64(_ context.Context, key string, value int64) error {
	if key == "" {
		return ErrKeyEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = prefValue{kind: kindInt64, i64: value}
	return nil
}

// GetFloat64 implements PrefStore.GetFloat64.
func (m *MemoryPrefStore) GetFloat64(_ context.Context, key string, def float64) (float64, error) {
	if key == "" {
		return def, ErrKeyEmpty
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return def, nil
	}
	if v.kind != kindFloat64 {
		return def, ErrWrongType
	}
	return v.f64, nil
}

// SetFloat64 implements PrefStore.SetFloat64.
func (m *MemoryPrefStore) SetFloat64(_ context.Context, key string, value float64) error {
	if key == "" {
		return ErrKeyEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = prefValue{kind: kindFloat64, f64: value}
	return nil
}

// GetString implements PrefStore.GetString.
func (m *MemoryPrefStore) GetString(_ context.Context, key string, def string) (string, error) {
	if key == "" {
		return def, ErrKeyEmpty
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return def, nil
	}
	if v.kind != kindString {
		return def, ErrWrongType
	}
	return v.s, nil
}

// SetString implements PrefStore.SetString.
func (m *MemoryPrefStore) SetString(_ context.Context, key string, value string) error {
	if key == "" {
		return ErrKeyEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = prefValue{kind: kindString, s: value}
	return nil
}

// GetStringSet implements PrefStore.GetStringSet.
func (m *MemoryPrefStore) GetStringSet(_ context.Context, key string, def []string) ([]string, error) {
	if key == "" {
		return copyStrings(def), ErrKeyEmpty
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return copyStrings(def), nil
	}
	if v.kind != kindStringSet {
		return copyStrings(def), ErrWrongType
	}

	out := make([]string, 0, len(v.set))
	for s := range v.set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// SetStringSet implements PrefStore.SetStringSet.
func (m *MemoryPrefStore) SetStringSet(_ context.Context, key string, value []string) error {
	if key == "" {
		return ErrKeyEmpty
	}

	set := make(map[string]bool, len(value))
	for _, s := range value {
		set[s] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = prefValue{kind: kindStringSet, set: set}
	return nil
}

// Delete implements PrefStore.Delete.
func (m *MemoryPrefStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrKeyEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// DeletePrefix implements PrefStore.DeletePrefix.
func (m *MemoryPrefStore) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.values {
		if strings.HasPrefix(key, prefix) {
			delete(m.values, key)
		}
	}
	return nil
}

// Commit implements PrefStore.Commit. Writes are immediate in memory, so
// this always succeeds.
func (m *MemoryPrefStore) Commit(_ context.Context) error {
	return nil
}

// Len returns the number of stored keys. Used by tests.
func (m *MemoryPrefStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
