package ops

import (
	"strings"
	"time"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/model"
)

// ValidateText checks that a task description is not empty or whitespace-only.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &cli.ValidationError{Field: "text", Message: "must not be empty"}
	}
	return nil
}

// ValidatePriority checks that priority is within the valid range (1-5).
// A priority of 0 is allowed as it means "use default".
func ValidatePriority(priority int) error {
	if priority == 0 {
		return nil
	}
	if priority < model.PriorityHighest || priority > model.PriorityLowest {
		return &cli.ValidationError{
			Field:   "priority",
			Message: "must be between 1 and 5",
		}
	}
	return nil
}

// AddTask creates a new task with the next unused id and appends it to
// the store. A priority of 0 uses the default.
func AddTask(s Store, text string, priority int) (model.Task, error) {
	var task model.Task

	if err := ValidateText(text); err != nil {
		return task, err
	}
	if err := ValidatePriority(priority); err != nil {
		return task, err
	}
	if priority == 0 {
		priority = model.PriorityDefault
	}

	err := s.Update(func(st *model.State) error {
		task = model.Task{
			ID:        st.AllocateID(),
			Text:      strings.TrimSpace(text),
			Priority:  priority,
			CreatedAt: time.Now(),
		}
		st.Tasks = append(st.Tasks, task)
		return nil
	})
	return task, err
}

// CompleteTask marks the task as done.
func CompleteTask(s Store, id int) (model.Task, error) {
	return setDone(s, id, true)
}

// UncompleteTask marks the task as not done.
func UncompleteTask(s Store, id int) (model.Task, error) {
	return setDone(s, id, false)
}

func setDone(s Store, id int, done bool) (model.Task, error) {
	var task model.Task
	err := s.Update(func(st *model.State) error {
		t := st.Find(id)
		if t == nil {
			return &cli.NotFoundError{ID: id}
		}
		t.Done = done
		task = *t
		return nil
	})
	return task, err
}

// ToggleTask flips the done flag of the task with the given id.
func ToggleTask(s Store, id int) (model.Task, error) {
	var task model.Task
	err := s.Update(func(st *model.State) error {
		t := st.Find(id)
		if t == nil {
			return &cli.NotFoundError{ID: id}
		}
		t.Done = !t.Done
		task = *t
		return nil
	})
	return task, err
}

// ToggleTop flips the done flag of the task currently shown in the status
// bar. Fails with a validation error when there are no pending tasks.
func ToggleTop(s Store, rotation time.Duration, now time.Time) (model.Task, error) {
	var task model.Task
	err := s.Update(func(st *model.State) error {
		t := DisplayTask(st, rotation, now)
		if t == nil {
			return &cli.ValidationError{Message: "no pending tasks to toggle"}
		}
		t.Done = !t.Done
		st.ShowIndex = 0
		task = *t
		return nil
	})
	return task, err
}

// RemoveTask deletes the task with the given id. The ids of the
// remaining tasks are unchanged and the removed id is never reused.
func RemoveTask(s Store, id int) error {
	return s.Update(func(st *model.State) error {
		for i := range st.Tasks {
			if st.Tasks[i].ID == id {
				st.Tasks = append(st.Tasks[:i], st.Tasks[i+1:]...)
				return nil
			}
		}
		return &cli.NotFoundError{ID: id}
	})
}

// TaskChanges represents fields that can be updated on a task.
// Nil fields are left unchanged.
type TaskChanges struct {
	Text     *string
	Priority *int
}

// EditTask updates the text and/or priority of an existing task.
func EditTask(s Store, id int, changes TaskChanges) (model.Task, error) {
	var task model.Task

	if changes.Text != nil {
		if err := ValidateText(*changes.Text); err != nil {
			return task, err
		}
	}
	if changes.Priority != nil {
		if err := ValidatePriority(*changes.Priority); err != nil {
			return task, err
		}
	}

	err := s.Update(func(st *model.State) error {
		t := st.Find(id)
		if t == nil {
			return &cli.NotFoundError{ID: id}
		}
		if changes.Text != nil {
			t.Text = strings.TrimSpace(*changes.Text)
		}
		if changes.Priority != nil && *changes.Priority != 0 {
			t.Priority = *changes.Priority
		}
		task = *t
		return nil
	})
	return task, err
}

// ClearDone removes all completed tasks and resets the rotation cursor.
// Returns the number of tasks removed.
func ClearDone(s Store) (int, error) {
	removed := 0
	err := s.Update(func(st *model.State) error {
		kept := st.Tasks[:0]
		for _, t := range st.Tasks {
			if t.Done {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		st.Tasks = kept
		st.ShowIndex = 0
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// CycleView advances the status-bar rotation cursor by one, wrapping
// around the pending pool.
func CycleView(s Store) error {
	return s.Update(func(st *model.State) error {
		pool := Pending(st.Tasks)
		if len(pool) == 0 {
			st.ShowIndex = 0
			return nil
		}
		st.ShowIndex = (st.ShowIndex + 1) % len(pool)
		return nil
	})
}

// ResetView zeroes the rotation cursor.
func ResetView(s Store) error {
	return s.Update(func(st *model.State) error {
		st.ShowIndex = 0
		return nil
	})
}
