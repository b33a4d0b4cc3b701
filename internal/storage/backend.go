package storage

import "errors"

// ErrNotFound is returned by Backend.Get when a key has no value
var ErrNotFound = errors.New("storage: key not found")

// Backend is the durable byte-level store behind the ledger state.
// Implementations: the learning_state SQL table in production, an in-memory
// map in tests.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error

	// DeleteAll removes every key with the given prefix. Not required to be
	// atomic across keys.
	DeleteAll(prefix string) error
}
