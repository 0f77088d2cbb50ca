// Package model defines the core data structures for todobar.
package model

import "time"

// Priority bounds. 1 is the most urgent.
const (
	PriorityHighest = 1
	PriorityDefault = 3
	PriorityLowest  = 5
)

// Version is the current state file layout version.
const Version = 1

// Task is a single to-do item. All mutation goes through the store
// operations in internal/ops; nothing else touches these fields.
type Task struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Priority  int       `json:"priority"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// State is the full persisted store: the task list in insertion order
// plus the id allocator and the status-bar rotation cursor.
type State struct {
	Version   int    `json:"version"`
	NextID    int    `json:"next_id"`
	ShowIndex int    `json:"show_index"`
	Tasks     []Task `json:"tasks"`
}

// NewState returns an empty store. The first allocated id is 1.
func NewState() *State {
	return &State{Version: Version, NextID: 1}
}

// Find returns a pointer to the task with the given id, or nil.
func (s *State) Find(id int) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// AllocateID returns the next unused id and advances the allocator.
// Ids are never reused, even after the task holding one is removed.
func (s *State) AllocateID() int {
	id := s.NextID
	s.NextID++
	return id
}
