package store

import (
	"errors"
	"fmt"

	"github.com/shnupta/scc/internal/connection"
	"github.com/shnupta/scc/internal/domain"
)

// ID identifies an entry for the lifetime of the process. IDs are never
// reused, so a stale ID simply fails to resolve. The zero ID is never assigned.
type ID uint64

// ErrNotLoaded is reported by Err when a mutation was not saved because the
// last Load failed. Saving then would overwrite data that could not be read.
var ErrNotLoaded = errors.New("connections not loaded, changes are not saved")

// Entry is a stored connection together with its identity.
type Entry struct {
	ID ID
	connection.Connection
}

// Store owns the connection list and rewrites the backend after every mutation.
// It is not safe for concurrent use.
type Store struct {
	backend Backend
	entries []Entry
	nextID  ID
	err     error
	loadErr error // last Load failure; blocks saving until a Load succeeds
}

// NewStore creates an empty Store persisting through backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load replaces all entries with the backend contents. Every entry gets a
// fresh ID, so no ID handed out before the call resolves afterwards.
// Records that fail validation are skipped.
func (s *Store) Load() error {
	conns, err := s.backend.Load()
	s.entries = nil
	s.loadErr = err
	if err != nil {
		return err
	}
	for _, c := range conns {
		if c.Validate() != nil {
			continue
		}
		s.entries = append(s.entries, s.newEntry(c))
	}
	return nil
}

// ReloadIfChanged reloads the store when the backend reports that its
// contents differ from what was last loaded or saved.
func (s *Store) ReloadIfChanged() (bool, error) {
	w, ok := s.backend.(ChangeWatcher)
	if !ok || !w.Changed() {
		return false, nil
	}
	return true, s.Load()
}

// Add appends c and persists. Duplicate names are allowed.
// Returns false only if c has an invalid field.
func (s *Store) Add(c connection.Connection) bool {
	if c.Validate() != nil {
		return false
	}
	s.entries = append(s.entries, s.newEntry(c))
	s.save()
	return true
}

// AddUnique appends c and persists only if no entry has the same name.
func (s *Store) AddUnique(c connection.Connection) bool {
	if _, ok := s.FindByName(c.Name); ok {
		return false
	}
	return s.Add(c)
}

// Duplicate appends a verbatim copy of the entry with the given ID.
func (s *Store) Duplicate(id ID) bool {
	e, ok := s.Get(id)
	if !ok {
		return false
	}
	return s.Add(e.Connection)
}

// Update overwrites the fields of the entry with the given ID in place.
func (s *Store) Update(id ID, c connection.Connection) bool {
	if c.Validate() != nil {
		return false
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Connection = c
			s.save()
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given ID and persists. It returns the ID
// of the entry that now occupies the removed position, or false if the
// removed entry was last, the store is empty, or id is unknown.
func (s *Store) Remove(id ID) (ID, bool) {
	var next ID
	var found bool
	for i := 0; i < len(s.entries); {
		if s.entries[i].ID != id {
			i++
			continue
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		found = true
		next = 0
		if i < len(s.entries) {
			next = s.entries[i].ID
		}
	}
	if !found {
		return 0, false
	}
	s.save()
	return next, next != 0
}

// Get resolves an ID to its entry.
func (s *Store) Get(id ID) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// FindByName returns the last entry with the given name, so later entries
// shadow earlier ones.
func (s *Store) FindByName(name string) (Entry, bool) {
	var found Entry
	var ok bool
	for _, e := range s.entries {
		if e.Name == name {
			found, ok = e, true
		}
	}
	return found, ok
}

// Query returns entries matching search (all when empty), sorted by name.
func (s *Store) Query(search string) []Entry {
	conns := s.connections()
	return s.pick(conns, domain.ApplyFilter(search, conns))
}

// QueryByGroup returns entries in group (all for domain.AllGroups), sorted by name.
func (s *Store) QueryByGroup(group string) []Entry {
	conns := s.connections()
	return s.pick(conns, domain.FilterByGroup(group, conns))
}

// Groups returns the derived group list, see domain.DeriveGroups.
func (s *Store) Groups() []string {
	return domain.DeriveGroups(s.connections())
}

// All returns a copy of all entries in insertion order.
func (s *Store) All() []Entry {
	cp := make([]Entry, len(s.entries))
	copy(cp, s.entries)
	return cp
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// NamesOnly reports whether the backend stores nothing but connection names.
// Names are then unique and a name is itself the command to run.
func (s *Store) NamesOnly() bool {
	r, ok := s.backend.(SchemaReporter)
	return ok && r.Schema() == SchemaSimple
}

// Err returns the error of the most recent save, if it failed, or
// ErrNotLoaded when the save was skipped.
func (s *Store) Err() error {
	return s.err
}

func (s *Store) newEntry(c connection.Connection) Entry {
	s.nextID++
	return Entry{ID: s.nextID, Connection: c}
}

func (s *Store) connections() []connection.Connection {
	conns := make([]connection.Connection, len(s.entries))
	for i, e := range s.entries {
		conns[i] = e.Connection
	}
	return conns
}

func (s *Store) pick(conns []connection.Connection, indices []int) []Entry {
	domain.SortByName(indices, conns)
	result := make([]Entry, len(indices))
	for i, idx := range indices {
		result[i] = s.entries[idx]
	}
	return result
}

// save rewrites the backend. Best effort: the error is kept for Err and
// the mutation stands either way.
func (s *Store) save() {
	if s.loadErr != nil {
		s.err = fmt.Errorf("%w: %v", ErrNotLoaded, s.loadErr)
		return
	}
	s.err = s.backend.Save(s.connections())
}
