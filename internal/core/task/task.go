// Package task defines the task list domain model and the controller that
// owns its state.
package task

import "slices"

// ID identifies a task. IDs are unique among the tasks of one list and are
// never reused or changed once assigned.
type ID int64

// Task is a single to-do item. Completed is the only field that changes
// after creation, and it changes by replacing the value, not in place.
type Task struct {
	ID        ID     `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// State is a snapshot of the task list and the text being composed for the
// next task. Tasks are kept in insertion order.
type State struct {
	Tasks        []Task `json:"tasks"`
	PendingInput string `json:"pending_input"`
}

// CompletedCount returns the number of completed tasks.
func (s State) CompletedCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// Find returns the task with the given ID.
func (s State) Find(id ID) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.Tasks[i], true
}

// Clone returns a copy of s that shares no memory with it.
func (s State) Clone() State {
	return State{
		Tasks:        slices.Clone(s.Tasks),
		PendingInput: s.PendingInput,
	}
}

func (s State) index(id ID) int {
	return slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == id })
}

func (s State) maxID() ID {
	var m ID
	for _, t := range s.Tasks {
		m = max(m, t.ID)
	}
	return m
}
