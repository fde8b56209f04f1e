package session

import "maps"

// MemoryMedium keeps the entries in process memory.
type MemoryMedium struct {
	entries map[string]string
}

// NewMemoryStore returns a store that lives as long as the process.
func NewMemoryStore(options ...StoreOption) *PersistentStore {
	return NewStore(&MemoryMedium{entries: make(map[string]string)}, options...)
}

func (m *MemoryMedium) Load() (map[string]string, error) {
	return maps.Clone(m.entries), nil
}

func (m *MemoryMedium) Save(entries map[string]string) error {
	m.entries = maps.Clone(entries)
	return nil
}
