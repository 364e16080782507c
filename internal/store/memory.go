package store

import "github.com/shnupta/scc/internal/connection"

// MemoryBackend is a Backend for tests. It records every save.
type MemoryBackend struct {
	Conns   []connection.Connection
	Saves   int
	SaveErr error
	LoadErr error
	Layout  Schema // reported by Schema; empty means SchemaExtended
	dirty   bool
}

// compile-time checks
var (
	_ Backend       = (*MemoryBackend)(nil)
	_ ChangeWatcher = (*MemoryBackend)(nil)
	_ Backend       = (*FileBackend)(nil)
	_ ChangeWatcher = (*FileBackend)(nil)

	_ SchemaReporter = (*MemoryBackend)(nil)
	_ SchemaReporter = (*FileBackend)(nil)
)

// NewMemoryBackend returns a MemoryBackend seeded with conns.
func NewMemoryBackend(conns ...connection.Connection) *MemoryBackend {
	return &MemoryBackend{Conns: conns}
}

func (m *MemoryBackend) Load() ([]connection.Connection, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.dirty = false
	cp := make([]connection.Connection, len(m.Conns))
	copy(cp, m.Conns)
	return cp, nil
}

func (m *MemoryBackend) Save(conns []connection.Connection) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Conns = append([]connection.Connection(nil), conns...)
	return nil
}

// Replace simulates an external edit of the underlying storage.
func (m *MemoryBackend) Replace(conns ...connection.Connection) {
	m.Conns = conns
	m.dirty = true
}

func (m *MemoryBackend) Changed() bool { return m.dirty }

func (m *MemoryBackend) Schema() Schema {
	if m.Layout == "" {
		return SchemaExtended
	}
	return m.Layout
}
