package ops

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbartel/todobar/internal/cli"
	"github.com/wbartel/todobar/internal/model"
	"github.com/wbartel/todobar/internal/storage"
)

// setupTestStore creates a file store backed by a temp directory.
func setupTestStore(t *testing.T) Store {
	t.Helper()
	return storage.NewFileStore(filepath.Join(t.TempDir(), "tasks.json"))
}

func mustList(t *testing.T, s Store, filter Filter) []model.Task {
	t.Helper()
	tasks, err := ListTasks(s, filter)
	require.NoError(t, err)
	return tasks
}

func TestAddAllocatesUniqueIncreasingIDs(t *testing.T) {
	s := setupTestStore(t)

	texts := []string{"one", "two", "three", "four"}
	prev := 0
	for _, text := range texts {
		task, err := AddTask(s, text, 0)
		require.NoError(t, err)
		assert.Greater(t, task.ID, prev, "ids must be strictly increasing")
		prev = task.ID
		assert.False(t, task.Done)
		assert.Equal(t, model.PriorityDefault, task.Priority)
		assert.False(t, task.CreatedAt.IsZero())
	}

	tasks := mustList(t, s, FilterAll)
	require.Len(t, tasks, 4)
	seen := map[int]bool{}
	for _, task := range tasks {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
}

func TestAddValidation(t *testing.T) {
	s := setupTestStore(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := AddTask(s, text, 0)
		require.Error(t, err)
		var ve *cli.ValidationError
		assert.ErrorAs(t, err, &ve)
	}

	_, err := AddTask(s, "fine", 9)
	var ve *cli.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "priority", ve.Field)

	// Failed adds leave the store unchanged.
	assert.Empty(t, mustList(t, s, FilterAll))
}

func TestAddTrimsText(t *testing.T) {
	s := setupTestStore(t)

	task, err := AddTask(s, "  buy milk  ", 2)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Text)
	assert.Equal(t, 2, task.Priority)
}

func TestCompleteUncomplete(t *testing.T) {
	s := setupTestStore(t)
	added, err := AddTask(s, "buy milk", 0)
	require.NoError(t, err)

	task, err := CompleteTask(s, added.ID)
	require.NoError(t, err)
	assert.True(t, task.Done)

	task, err = UncompleteTask(s, added.ID)
	require.NoError(t, err)
	assert.False(t, task.Done)
}

func TestCompleteNotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := AddTask(s, "buy milk", 0)
	require.NoError(t, err)

	_, err = CompleteTask(s, 42)
	var nf *cli.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 42, nf.ID)

	// Store unchanged.
	tasks := mustList(t, s, FilterAll)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Done)
}

func TestToggle(t *testing.T) {
	s := setupTestStore(t)
	added, err := AddTask(s, "buy milk", 0)
	require.NoError(t, err)

	task, err := ToggleTask(s, added.ID)
	require.NoError(t, err)
	assert.True(t, task.Done)

	task, err = ToggleTask(s, added.ID)
	require.NoError(t, err)
	assert.False(t, task.Done)

	_, err = ToggleTask(s, 99)
	var nf *cli.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestRemove(t *testing.T) {
	s := setupTestStore(t)
	a, _ := AddTask(s, "a", 0)
	b, _ := AddTask(s, "b", 0)
	c, _ := AddTask(s, "c", 0)

	require.NoError(t, RemoveTask(s, b.ID))

	tasks := mustList(t, s, FilterAll)
	require.Len(t, tasks, 2)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)

	err := RemoveTask(s, b.ID)
	var nf *cli.NotFoundError
	assert.ErrorAs(t, err, &nf)

	// A removed id is never reused.
	d, err := AddTask(s, "d", 0)
	require.NoError(t, err)
	assert.Greater(t, d.ID, c.ID)
}

func TestListFilters(t *testing.T) {
	s := setupTestStore(t)
	a, _ := AddTask(s, "pending one", 0)
	b, _ := AddTask(s, "done one", 0)
	c, _ := AddTask(s, "pending two", 0)
	_, err := CompleteTask(s, b.ID)
	require.NoError(t, err)

	all := mustList(t, s, FilterAll)
	require.Len(t, all, 3)
	// Insertion order.
	assert.Equal(t, []int{a.ID, b.ID, c.ID}, []int{all[0].ID, all[1].ID, all[2].ID})

	pending := mustList(t, s, FilterPending)
	require.Len(t, pending, 2)
	assert.Equal(t, a.ID, pending[0].ID)
	assert.Equal(t, c.ID, pending[1].ID)

	done := mustList(t, s, FilterDone)
	require.Len(t, done, 1)
	assert.Equal(t, b.ID, done[0].ID)
}

func TestParseFilter(t *testing.T) {
	for _, valid := range []string{"all", "pending", "done"} {
		f, err := ParseFilter(valid)
		require.NoError(t, err)
		assert.Equal(t, Filter(valid), f)
	}

	_, err := ParseFilter("open")
	var ve *cli.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestEditTask(t *testing.T) {
	s := setupTestStore(t)
	added, err := AddTask(s, "buy milk", 0)
	require.NoError(t, err)

	text := "buy oat milk"
	priority := 1
	task, err := EditTask(s, added.ID, TaskChanges{Text: &text, Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", task.Text)
	assert.Equal(t, 1, task.Priority)

	// Nil fields are left alone.
	task, err = EditTask(s, added.ID, TaskChanges{})
	require.NoError(t, err)
	assert.Equal(t, "buy oat milk", task.Text)
	assert.Equal(t, 1, task.Priority)

	empty := "  "
	_, err = EditTask(s, added.ID, TaskChanges{Text: &empty})
	var ve *cli.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = EditTask(s, 99, TaskChanges{Text: &text})
	var nf *cli.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestClearDone(t *testing.T) {
	s := setupTestStore(t)
	a, _ := AddTask(s, "a", 0)
	b, _ := AddTask(s, "b", 0)
	c, _ := AddTask(s, "c", 0)
	CompleteTask(s, a.ID)
	CompleteTask(s, c.ID)

	removed, err := ClearDone(s)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	tasks := mustList(t, s, FilterAll)
	require.Len(t, tasks, 1)
	assert.Equal(t, b.ID, tasks[0].ID)

	removed, err = ClearDone(s)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestSortTasks(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		{ID: 1, Text: "later", Priority: 3, CreatedAt: now.Add(time.Hour)},
		{ID: 2, Text: "urgent", Priority: 1, CreatedAt: now},
		{ID: 3, Text: "earlier", Priority: 3, CreatedAt: now},
		{ID: 4, Text: "relaxed", Priority: 5, CreatedAt: now},
	}

	sorted := SortTasks(tasks)
	assert.Equal(t, []int{2, 3, 1, 4}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	// Input untouched.
	assert.Equal(t, 1, tasks[0].ID)
}

func TestCycleViewWraps(t *testing.T) {
	s := setupTestStore(t)
	AddTask(s, "a", 0)
	AddTask(s, "b", 0)

	showIndex := func() int {
		st, err := s.Load()
		require.NoError(t, err)
		return st.ShowIndex
	}

	require.NoError(t, CycleView(s))
	assert.Equal(t, 1, showIndex())
	require.NoError(t, CycleView(s))
	assert.Equal(t, 0, showIndex(), "cycle wraps modulo the pending count")

	require.NoError(t, CycleView(s))
	require.NoError(t, ResetView(s))
	assert.Equal(t, 0, showIndex())
}

func TestCycleViewEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, CycleView(s))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, st.ShowIndex)
}

func TestDisplayTaskRotation(t *testing.T) {
	st := model.NewState()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	st.Tasks = []model.Task{
		{ID: st.AllocateID(), Text: "a", Priority: 1, CreatedAt: now},
		{ID: st.AllocateID(), Text: "b", Priority: 2, CreatedAt: now},
		{ID: st.AllocateID(), Text: "c", Priority: 3, Done: true, CreatedAt: now},
	}

	rotation := 2 * time.Second

	// Two pending tasks: consecutive rotation windows alternate.
	first := DisplayTask(st, rotation, now)
	second := DisplayTask(st, rotation, now.Add(rotation))
	third := DisplayTask(st, rotation, now.Add(2*rotation))
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.ID, third.ID)

	// Done tasks never rotate in.
	for i := 0; i < 4; i++ {
		task := DisplayTask(st, rotation, now.Add(time.Duration(i)*rotation))
		assert.NotEqual(t, 3, task.ID)
	}

	// The view cursor offsets the rotation.
	st.ShowIndex = 1
	shifted := DisplayTask(st, rotation, now)
	assert.NotEqual(t, first.ID, shifted.ID)
}

func TestDisplayTaskNoPending(t *testing.T) {
	st := model.NewState()
	st.Tasks = []model.Task{{ID: st.AllocateID(), Text: "a", Priority: 3, Done: true}}

	assert.Nil(t, DisplayTask(st, 2*time.Second, time.Now()))
	assert.Nil(t, DisplayTask(model.NewState(), 2*time.Second, time.Now()))
}

func TestToggleTop(t *testing.T) {
	s := setupTestStore(t)
	_, err := AddTask(s, "only one", 0)
	require.NoError(t, err)

	task, err := ToggleTop(s, 2*time.Second, time.Now())
	require.NoError(t, err)
	assert.True(t, task.Done)
	assert.Equal(t, "only one", task.Text)

	// Nothing pending now.
	_, err = ToggleTop(s, 2*time.Second, time.Now())
	var ve *cli.ValidationError
	assert.ErrorAs(t, err, &ve)
}

// TestScenario walks the documented add/complete/list/summary sequence.
func TestScenario(t *testing.T) {
	s := setupTestStore(t)

	task, err := AddTask(s, "buy milk", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "buy milk", task.Text)
	assert.False(t, task.Done)

	_, err = CompleteTask(s, 1)
	require.NoError(t, err)

	tasks := mustList(t, s, FilterAll)
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "buy milk", tasks[0].Text)
	assert.True(t, tasks[0].Done)

	assert.Empty(t, Pending(tasks))
}
