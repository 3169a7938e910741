// Package registry holds the process-wide in-memory state: tournaments,
// practice rooms, debate sessions, and user profiles, each keyed by a
// short code or ID. State is volatile by contract; nothing survives a
// restart. Every entity is guarded by its own lock so unrelated
// tournaments and debates never serialize against each other.
package registry

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/Dosada05/debate-arena/models"
)

var (
	ErrKeyExists   = errors.New("registry: key already exists")
	ErrKeyNotFound = errors.New("registry: key not found")
)

type entry[T any] struct {
	mu  sync.Mutex
	val T
}

// Store is a keyed collection with per-key mutual exclusion. The outer
// map lock is held only long enough to find or insert an entry; all
// entity work happens under that entry's own lock via With and View.
type Store[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{entries: make(map[string]*entry[T])}
}

func (s *Store[T]) lookup(key string) (*entry[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// Create inserts a new entity. ErrKeyExists when the key is taken.
func (s *Store[T]) Create(key string, val T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		return ErrKeyExists
	}
	s.entries[key] = &entry[T]{val: val}
	return nil
}

// With runs fn with exclusive access to the entity. All mutation goes
// through here; holding the returned value outside fn is a bug.
func (s *Store[T]) With(key string, fn func(T) error) error {
	e, ok := s.lookup(key)
	if !ok {
		return ErrKeyNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.val)
}

// View is With for readers; same lock, clearer intent.
func (s *Store[T]) View(key string, fn func(T) error) error {
	return s.With(key, fn)
}

func (s *Store[T]) Has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}

func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Keys returns a snapshot of the current keys.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// ForEach visits every entity under its own lock. The iteration order is
// unspecified. fn must not call back into the store.
func (s *Store[T]) ForEach(fn func(key string, val T)) {
	for _, key := range s.Keys() {
		e, ok := s.lookup(key)
		if !ok {
			continue
		}
		e.mu.Lock()
		fn(key, e.val)
		e.mu.Unlock()
	}
}

// Len reports the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Registry is the single owner of all core entities. It is constructed
// once at process start and passed by handle; there is no ambient global
// state.
type Registry struct {
	Tournaments *Store[*models.Tournament]
	Rooms       *Store[*models.Room]
	Debates     *Store[*models.DebateSession]
	Profiles    *Store[*models.UserProfile]
}

func New() *Registry {
	return &Registry{
		Tournaments: NewStore[*models.Tournament](),
		Rooms:       NewStore[*models.Room](),
		Debates:     NewStore[*models.DebateSession](),
		Profiles:    NewStore[*models.UserProfile](),
	}
}

// NewTournamentCode generates an unused 8-character tournament code,
// retrying on the (unlikely) collision.
func (r *Registry) NewTournamentCode() string {
	for {
		code := GenerateCode(TournamentCodeLength)
		if !r.Tournaments.Has(code) {
			return code
		}
	}
}

// NewRoomCode generates an unused 6-character room code.
func (r *Registry) NewRoomCode() string {
	for {
		code := GenerateCode(RoomCodeLength)
		if !r.Rooms.Has(code) {
			return code
		}
	}
}

// DeepCopy clones a JSON-serializable entity so callers can hand out
// snapshots without aliasing registry-owned state. Panics on a
// non-serializable type, which is a programmer error.
func DeepCopy[T any](src T) T {
	data, err := json.Marshal(src)
	if err != nil {
		panic("registry: deep copy marshal: " + err.Error())
	}
	var dst T
	if err := json.Unmarshal(data, &dst); err != nil {
		panic("registry: deep copy unmarshal: " + err.Error())
	}
	return dst
}
