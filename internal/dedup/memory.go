// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"sync"

	"github.com/pdiddy/curation-engine/pkg/types"
)

// MemoryIndex is an in-process Index backed by a map. Safe for
// concurrent use.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries map[string]types.IndexEntry
}

// NewMemoryIndex returns an empty in-memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{entries: make(map[string]types.IndexEntry)}
}

// Lookup returns the entry stored under key, if any.
func (m *MemoryIndex) Lookup(key string) (types.IndexEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	return e, ok, nil
}

// Insert stores entry under key.
func (m *MemoryIndex) Insert(key string, entry types.IndexEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry
	return nil
}

// Entries returns a copy of the index contents.
func (m *MemoryIndex) Entries() (map[string]types.IndexEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]types.IndexEntry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out, nil
}

// Len reports the number of stored fingerprints.
func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
