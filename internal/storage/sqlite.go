package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wbartel/todobar/internal/model"
)

// SQLiteStore is the alternative backend selected by `backend: sqlite`
// in the config file. The database serializes concurrent invocations
// itself, so no lock file is needed.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS meta (
  key   TEXT PRIMARY KEY,
  value INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
  id         INTEGER PRIMARY KEY,
  text       TEXT NOT NULL,
  priority   INTEGER NOT NULL,
  done       INTEGER NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`

// DefaultDBPath returns the sqlite path for a given state file path:
// a tasks.db sibling of tasks.json.
func DefaultDBPath(statePath string) string {
	return filepath.Join(filepath.Dir(statePath), "tasks.db")
}

// OpenSQLite opens (creating if necessary) a sqlite-backed store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	// _txlock=immediate takes the write lock at BEGIN so a whole
	// read-modify-write transaction is serialized against other
	// invocations; _busy_timeout covers overlapping clicks.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=2000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads a snapshot of the current state.
func (s *SQLiteStore) Load() (*model.State, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()
	return loadState(tx)
}

// Update runs fn inside an exclusive transaction and rewrites the
// stored state if fn succeeds.
func (s *SQLiteStore) Update(fn func(*model.State) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	st, err := loadState(tx)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	if err := saveState(tx, st); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func loadState(q querier) (*model.State, error) {
	st := model.NewState()
	st.NextID = 0

	rows, err := q.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan meta: %w", err)
		}
		switch key {
		case "next_id":
			st.NextID = value
		case "show_index":
			st.ShowIndex = value
		case "version":
			st.Version = value
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meta: %w", err)
	}

	// Ids are monotonic, so id order is insertion order.
	rows, err = q.Query(`SELECT id, text, priority, done, created_at FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Priority, &t.Done, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		st.Tasks = append(st.Tasks, t)
		if t.ID >= st.NextID {
			st.NextID = t.ID + 1
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	if st.NextID < 1 {
		st.NextID = 1
	}
	return st, nil
}

func saveState(q querier, st *model.State) error {
	if _, err := q.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	if len(st.Tasks) > 0 {
		var sb strings.Builder
		sb.WriteString(`INSERT INTO tasks (id, text, priority, done, created_at) VALUES `)
		args := make([]any, 0, len(st.Tasks)*5)
		for i, t := range st.Tasks {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(?, ?, ?, ?, ?)")
			args = append(args, t.ID, t.Text, t.Priority, t.Done, t.CreatedAt)
		}
		if _, err := q.Exec(sb.String(), args...); err != nil {
			return fmt.Errorf("failed to write tasks: %w", err)
		}
	}

	for key, value := range map[string]int{
		"version":    st.Version,
		"next_id":    st.NextID,
		"show_index": st.ShowIndex,
	} {
		if _, err := q.Exec(
			`INSERT INTO meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("failed to write meta %s: %w", key, err)
		}
	}
	return nil
}
