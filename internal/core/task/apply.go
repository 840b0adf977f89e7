package task

import (
	"slices"
	"strings"
)

// Op identifies a user interaction that can change the task list.
type Op string

const (
	OpInput  Op = "input"
	OpAdd    Op = "add"
	OpToggle Op = "toggle"
	OpDelete Op = "delete"
)

// IsValid reports whether o is a known operation.
func (o Op) IsValid() bool {
	switch o {
	case OpInput, OpAdd, OpToggle, OpDelete:
		return true
	default:
		return false
	}
}

// Event is one interaction forwarded from a presentation layer. Text is used
// by OpInput and ID by OpToggle and OpDelete.
type Event struct {
	Op   Op     `json:"op"`
	Text string `json:"text,omitempty"`
	ID   ID     `json:"id"`
}

// Apply returns the state that results from applying ev to s, and whether
// anything changed. s is never modified; when nothing changes s itself is
// returned. Events that do not apply (blank input on add, unknown IDs,
// unknown ops) are no-ops rather than errors.
func Apply(s State, ev Event, ids IDSource) (State, bool) {
	switch ev.Op {
	case OpInput:
		if s.PendingInput == ev.Text {
			return s, false
		}
		return State{Tasks: s.Tasks, PendingInput: ev.Text}, true

	case OpAdd:
		if strings.TrimSpace(s.PendingInput) == "" {
			return s, false
		}

		id := ids.Next()
		if s.index(id) >= 0 {
			id = s.maxID() + 1
		}

		tasks := make([]Task, len(s.Tasks), len(s.Tasks)+1)
		copy(tasks, s.Tasks)
		tasks = append(tasks, Task{ID: id, Text: s.PendingInput})

		return State{Tasks: tasks}, true

	case OpToggle:
		i := s.index(ev.ID)
		if i < 0 {
			return s, false
		}

		tasks := slices.Clone(s.Tasks)
		tasks[i] = Task{ID: tasks[i].ID, Text: tasks[i].Text, Completed: !tasks[i].Completed}

		return State{Tasks: tasks, PendingInput: s.PendingInput}, true

	case OpDelete:
		i := s.index(ev.ID)
		if i < 0 {
			return s, false
		}

		tasks := slices.Delete(slices.Clone(s.Tasks), i, i+1)

		return State{Tasks: tasks, PendingInput: s.PendingInput}, true

	default:
		return s, false
	}
}
