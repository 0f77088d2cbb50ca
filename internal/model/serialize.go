package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorruptState is wrapped by load errors when the state file exists
// but cannot be parsed. Callers must treat this as fatal for the
// invocation; the file is never repaired or discarded automatically.
var ErrCorruptState = errors.New("corrupt state file")

// LoadState reads a state file from the given path.
// A missing file is not an error: it yields an empty store.
func LoadState(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, path, err)
	}
	if err := st.checkConsistency(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptState, path, err)
	}

	// Older files written before the allocator was persisted carry
	// next_id: 0. Derive it from the highest id seen.
	if st.NextID < 1 {
		st.NextID = 1
		for _, t := range st.Tasks {
			if t.ID >= st.NextID {
				st.NextID = t.ID + 1
			}
		}
	}
	if st.Version == 0 {
		st.Version = Version
	}

	return &st, nil
}

// SaveState writes a state file atomically: the document is written to a
// temp file in the same directory and renamed over the target, so a
// concurrent reader never sees a partial write.
func SaveState(path string, st *State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".tasks-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file %s: %w", path, err)
	}
	return nil
}

// checkConsistency rejects documents that parse as JSON but violate the
// store invariants (duplicate ids, ids at or above next_id, empty text).
func (s *State) checkConsistency() error {
	seen := make(map[int]bool, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID < 1 {
			return fmt.Errorf("task has invalid id %d", t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
		if t.Text == "" {
			return fmt.Errorf("task %d has empty text", t.ID)
		}
		if s.NextID >= 1 && t.ID >= s.NextID {
			return fmt.Errorf("task id %d is not below next_id %d", t.ID, s.NextID)
		}
	}
	return nil
}
