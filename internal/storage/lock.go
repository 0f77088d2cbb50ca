package storage

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	// lockRetryInterval is how long to wait between acquisition attempts.
	lockRetryInterval = 10 * time.Millisecond
	// lockTimeout bounds the total time spent waiting for the lock.
	lockTimeout = 2 * time.Second
	// lockStaleAfter is the age past which a lock file is considered
	// abandoned (a crashed invocation) and may be broken.
	lockStaleAfter = 10 * time.Second
)

// fileLock is an advisory lock implemented as an exclusively-created
// file holding an owner token. Invocations are sub-second, so a short
// retry loop is enough to serialize overlapping clicks.
type fileLock struct {
	path  string
	token string
}

// acquireLock creates the lock file, retrying until lockTimeout. A lock
// file older than lockStaleAfter is removed and acquisition retried.
func acquireLock(path string) (*fileLock, error) {
	token := uuid.NewString()
	deadline := time.Now().Add(lockTimeout)

	for {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			_, werr := f.WriteString(token)
			cerr := f.Close()
			if werr == nil {
				werr = cerr
			}
			if werr != nil {
				os.Remove(path)
				return nil, fmt.Errorf("failed to write lock file %s: %w", path, werr)
			}
			return &fileLock{path: path, token: token}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lock file %s: %w", path, err)
		}

		if info, serr := os.Stat(path); serr == nil && time.Since(info.ModTime()) > lockStaleAfter {
			// Held by a crashed invocation; break it and retry.
			os.Remove(path)
			continue
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for lock file %s", path)
		}
		time.Sleep(lockRetryInterval)
	}
}

// release removes the lock file if this invocation still owns it.
func (l *fileLock) release() {
	data, err := os.ReadFile(l.path)
	if err != nil || string(data) != l.token {
		// Broken as stale and re-acquired by someone else.
		return
	}
	os.Remove(l.path)
}
