package cache

import "sync"

// Memory is an ephemeral Store backed by sync.Map. It is created fresh per
// process and holds values only for the lifetime of that process.
//
// sync.Map fits the access pattern here: the key space is small and stable
// (one key per distinct step), writes happen once per key, and reads may
// come from any goroutine a step body spawns.
type Memory struct {
	values sync.Map
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the value stored under key, or false when absent.
func (m *Memory) Get(key string) (any, bool) {
	return m.values.Load(key)
}

// Set records value under key.
func (m *Memory) Set(key string, value any) {
	m.values.Store(key, value)
}
