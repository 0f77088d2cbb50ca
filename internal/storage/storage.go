// Package storage provides the persistent backends for the task store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wbartel/todobar/internal/model"
)

const (
	// StateFileEnv overrides the state file location.
	StateFileEnv = "TODOBAR_STATE_FILE"

	// dataDirName is the subdirectory of the user data dir holding state.
	dataDirName = "todobar"
	// stateFileName is the name of the state file within the data dir.
	stateFileName = "tasks.json"
)

// DefaultStatePath resolves the state file location: the TODOBAR_STATE_FILE
// environment variable if set, else $XDG_DATA_HOME/todobar/tasks.json,
// else ~/.local/share/todobar/tasks.json.
func DefaultStatePath() (string, error) {
	if p := os.Getenv(StateFileEnv); p != "" {
		return p, nil
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, dataDirName, stateFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", dataDirName, stateFileName), nil
}

// FileStore persists the task list as a single JSON document. Mutations
// run under a lock file so that overlapping invocations (a double click
// on the bar) cannot interleave their read-modify-write cycles.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given state file path.
// The file does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing state file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the current state. A missing file yields an empty store.
func (s *FileStore) Load() (*model.State, error) {
	return model.LoadState(s.path)
}

// Update runs fn on the current state under the store's lock file and,
// if fn succeeds, writes the result back atomically. The lock is
// released on every exit path.
func (s *FileStore) Update(fn func(*model.State) error) error {
	lock, err := acquireLock(s.path + ".lock")
	if err != nil {
		return err
	}
	defer lock.release()

	st, err := model.LoadState(s.path)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return model.SaveState(s.path, st)
}
