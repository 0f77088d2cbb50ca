package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json.lock")

	lock, err := acquireLock(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err, "lock file should exist while held")

	lock.release()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "lock file should be gone after release")
}

func TestAcquireWaitsForHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json.lock")

	first, err := acquireLock(path)
	require.NoError(t, err)

	// Release shortly after the second acquirer starts waiting.
	go func() {
		time.Sleep(50 * time.Millisecond)
		first.release()
	}()

	start := time.Now()
	second, err := acquireLock(path)
	require.NoError(t, err)
	defer second.release()

	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond,
		"second acquirer should have waited for the first")
}

func TestAcquireBreaksStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json.lock")

	// A lock file from a crashed invocation, well past the stale age.
	require.NoError(t, os.WriteFile(path, []byte("dead-owner"), 0644))
	old := time.Now().Add(-2 * lockStaleAfter)
	require.NoError(t, os.Chtimes(path, old, old))

	lock, err := acquireLock(path)
	require.NoError(t, err)
	defer lock.release()
}

func TestReleaseDoesNotRemoveForeignLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json.lock")

	lock, err := acquireLock(path)
	require.NoError(t, err)

	// Someone broke our lock as stale and took it over.
	require.NoError(t, os.WriteFile(path, []byte("other-owner"), 0644))

	lock.release()
	_, err = os.Stat(path)
	require.NoError(t, err, "release must not remove a lock owned by another invocation")
}
