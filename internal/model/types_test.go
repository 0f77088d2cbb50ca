package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	st := NewState()
	assert.Equal(t, Version, st.Version)
	assert.Equal(t, 1, st.NextID)
	assert.Equal(t, 0, st.ShowIndex)
	assert.Empty(t, st.Tasks)
}

func TestAllocateID(t *testing.T) {
	st := NewState()

	assert.Equal(t, 1, st.AllocateID())
	assert.Equal(t, 2, st.AllocateID())
	assert.Equal(t, 3, st.AllocateID())
	assert.Equal(t, 4, st.NextID)
}

func TestFind(t *testing.T) {
	st := NewState()
	st.Tasks = []Task{
		{ID: 1, Text: "one"},
		{ID: 3, Text: "three"},
	}

	t.Run("existing id returns pointer into state", func(t *testing.T) {
		task := st.Find(3)
		assert.NotNil(t, task)
		assert.Equal(t, "three", task.Text)

		// Mutations through the pointer land in the state.
		task.Done = true
		assert.True(t, st.Tasks[1].Done)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		assert.Nil(t, st.Find(2))
	})
}
