// Package ops implements the business logic operations for todobar.
package ops

import "github.com/wbartel/todobar/internal/model"

// Store defines the persistence interface required by business logic
// operations. The concrete implementations are storage.FileStore and
// storage.SQLiteStore, but this interface allows alternative backends
// (in-memory, HTTP, etc.) for testing and GUI use.
type Store interface {
	// Load returns a snapshot of the current state. A store with no
	// persisted data yet returns an empty state, not an error.
	Load() (*model.State, error)

	// Update runs fn on the current state inside a scoped exclusive
	// acquisition of the backing storage and persists the result if fn
	// returns nil. If fn returns an error, nothing is persisted and the
	// error is returned unchanged.
	Update(fn func(*model.State) error) error
}
