package ops

import (
	"fmt"
	"sort"
	"time"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/model"
)

// Filter selects which tasks a list operation returns.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPending Filter = "pending"
	FilterDone    Filter = "done"
)

// ParseFilter parses a --filter flag value.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, FilterPending, FilterDone:
		return Filter(s), nil
	default:
		return "", &cli.ValidationError{
			Field:   "filter",
			Message: fmt.Sprintf("%q is not one of all, pending, done", s),
		}
	}
}

// ListTasks returns tasks matching the filter in insertion order.
func ListTasks(s Store, filter Filter) ([]model.Task, error) {
	st, err := s.Load()
	if err != nil {
		return nil, err
	}

	var out []model.Task
	for _, t := range st.Tasks {
		switch filter {
		case FilterPending:
			if t.Done {
				continue
			}
		case FilterDone:
			if !t.Done {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// Pending returns the tasks that are not done, in insertion order.
func Pending(tasks []model.Task) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if !t.Done {
			out = append(out, t)
		}
	}
	return out
}

// SortTasks returns a copy sorted by (priority, created_at, text).
// Higher-urgency (lower number) priorities come first.
func SortTasks(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// DisplayPool returns the tasks eligible for status-bar rotation:
// pending tasks in sort order, or every task when none are pending.
func DisplayPool(st *model.State) []model.Task {
	pool := SortTasks(Pending(st.Tasks))
	if len(pool) > 0 {
		return pool
	}
	return SortTasks(st.Tasks)
}

// DisplayTask returns a pointer into st for the pending task currently
// shown in the status bar, rotated by wall clock and offset by the view
// cursor. Returns nil when no tasks are pending.
func DisplayTask(st *model.State, rotation time.Duration, now time.Time) *model.Task {
	pool := SortTasks(Pending(st.Tasks))
	if len(pool) == 0 {
		return nil
	}
	secs := int64(rotation / time.Second)
	if secs < 1 {
		secs = 1
	}
	idx := (int(now.Unix()/secs) + st.ShowIndex) % len(pool)
	return st.Find(pool[idx].ID)
}
