package task

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/tasklist/internal/core/logging"
)

// Change describes a state transition made by the Controller. Task is the
// task that was added, toggled, or deleted; it is the zero value for
// OpInput. For OpToggle it holds the task after the flip.
type Change struct {
	Op     Op
	Task   Task
	Before State
	After  State
}

// Subscriber is invoked after every operation that changes state.
type Subscriber func(Change)

// Controller owns a task list and is the only way to change it.
//
// A Controller is not safe for concurrent use. Presentation layers call it
// from a single event loop, which also fixes the order operations apply in.
type Controller struct {
	state       State
	ids         IDSource
	log         zerolog.Logger
	subscribers []Subscriber
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDSource sets the source of new task IDs. The default is a ClockIDs
// source.
func WithIDSource(ids IDSource) Option {
	return func(c *Controller) {
		c.ids = ids
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// NewController returns a controller with an empty list.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		log: logging.Component("task-controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ids == nil {
		c.ids = NewClockIDs(nil)
	}
	return c
}

// Subscribe registers fn to be called after each state change.
func (c *Controller) Subscribe(fn Subscriber) {
	c.subscribers = append(c.subscribers, fn)
}

// SetPendingInput replaces the pending input verbatim.
func (c *Controller) SetPendingInput(text string) {
	c.Dispatch(Event{Op: OpInput, Text: text})
}

// AddTask creates a task from the pending input and clears it. When the
// pending input is blank nothing happens and ok is false.
func (c *Controller) AddTask() (t Task, ok bool) {
	ch, ok := c.Dispatch(Event{Op: OpAdd})
	return ch.Task, ok
}

// ToggleTask flips the completed flag of the task with the given ID. Unknown
// IDs are ignored.
func (c *Controller) ToggleTask(id ID) bool {
	_, ok := c.Dispatch(Event{Op: OpToggle, ID: id})
	return ok
}

// DeleteTask removes the task with the given ID. Unknown IDs are ignored.
func (c *Controller) DeleteTask(id ID) bool {
	_, ok := c.Dispatch(Event{Op: OpDelete, ID: id})
	return ok
}

// CompletedCount returns the number of completed tasks.
func (c *Controller) CompletedCount() int {
	return c.state.CompletedCount()
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Dispatch applies ev and notifies subscribers if the state changed.
func (c *Controller) Dispatch(ev Event) (Change, bool) {
	before := c.state
	after, changed := Apply(before, ev, c.ids)
	if !changed {
		c.log.Debug().
			Str("op", string(ev.Op)).
			Int64("id", int64(ev.ID)).
			Msg("no-op")
		return Change{}, false
	}

	c.state = after

	ch := Change{Op: ev.Op, Before: before.Clone(), After: after.Clone()}
	switch ev.Op {
	case OpAdd:
		ch.Task = after.Tasks[len(after.Tasks)-1]
	case OpToggle:
		ch.Task, _ = after.Find(ev.ID)
	case OpDelete:
		ch.Task, _ = before.Find(ev.ID)
	}

	if ev.Op != OpInput {
		c.log.Debug().
			Str("op", string(ev.Op)).
			Int64("id", int64(ch.Task.ID)).
			Int("tasks", len(after.Tasks)).
			Int("completed", after.CompletedCount()).
			Msg("task list changed")
	}

	for _, fn := range c.subscribers {
		fn(ch)
	}

	return ch, true
}
