package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// Store wraps a Backend with JSON serialization and per-key write locks.
// One Store exists per process; ledgers get per-student views via ForUser.
//
// Ledger operations never see storage errors: failures are logged and
// reported as a false return, and loads fall back to the caller's defaults.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store on top of a backend
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[string]*sync.Mutex),
	}
}

// keyLock returns the mutex guarding a fully-qualified key, creating it lazily
func (s *Store) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// ForUser returns a view of the store scoped to one student's namespace
func (s *Store) ForUser(userID string) *UserStore {
	return &UserStore{root: s, prefix: "user:" + userID + ":"}
}

// UserStore is a per-student view of the store. Save/Load/Remove operate on
// short ledger keys ("stats", "vocabulary", ...) within the student's
// namespace.
type UserStore struct {
	root   *Store
	prefix string
}

// Save serializes a value and persists it under the key. Returns false and
// logs on failure; never returns an error to the caller.
func (u *UserStore) Save(key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: failed to encode %s%s: %v", u.prefix, key, err)
		return false
	}
	if err := u.root.backend.Set(u.prefix+key, data); err != nil {
		log.Printf("storage: failed to save %s%s: %v", u.prefix, key, err)
		return false
	}
	return true
}

// Load reads and decodes the value under the key into dest. Returns false
// when the key is absent or the stored bytes don't decode, leaving dest
// untouched so pre-populated defaults survive.
func (u *UserStore) Load(key string, dest interface{}) bool {
	data, err := u.root.backend.Get(u.prefix + key)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("storage: failed to load %s%s: %v", u.prefix, key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("storage: corrupt value under %s%s: %v", u.prefix, key, err)
		return false
	}
	return true
}

// Remove deletes the value under the key
func (u *UserStore) Remove(key string) bool {
	if err := u.root.backend.Delete(u.prefix + key); err != nil {
		log.Printf("storage: failed to remove %s%s: %v", u.prefix, key, err)
		return false
	}
	return true
}

// Clear removes every key in the student's namespace. Not atomic across
// keys: a concurrent writer may observe a partially cleared namespace.
func (u *UserStore) Clear() bool {
	if err := u.root.backend.DeleteAll(u.prefix); err != nil {
		log.Printf("storage: failed to clear %s: %v", u.prefix, err)
		return false
	}
	return true
}

// Update runs fn while holding the key's write lock. Every ledger
// read-modify-write goes through here; Save and Load themselves do not lock,
// so fn can call them freely.
func (u *UserStore) Update(key string, fn func()) {
	l := u.root.keyLock(u.prefix + key)
	l.Lock()
	defer l.Unlock()
	fn()
}
