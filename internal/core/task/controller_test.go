package task

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	return NewController(WithIDSource(&CounterIDs{}), WithLogger(zerolog.Nop()))
}

func TestController_EndToEnd(t *testing.T) {
	c := newTestController()
	assert.Empty(t, c.State().Tasks)

	c.SetPendingInput("A")
	a, ok := c.AddTask()
	require.True(t, ok)

	st := c.State()
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, "A", st.Tasks[0].Text)
	assert.False(t, st.Tasks[0].Completed)
	assert.Empty(t, st.PendingInput)

	_, ok = c.AddTask()
	assert.False(t, ok, "second add with empty input is a no-op")
	assert.Len(t, c.State().Tasks, 1)

	require.True(t, c.ToggleTask(a.ID))
	assert.True(t, c.State().Tasks[0].Completed)
	assert.Equal(t, 1, c.CompletedCount())

	require.True(t, c.DeleteTask(a.ID))
	assert.Empty(t, c.State().Tasks)
	assert.Equal(t, 0, c.CompletedCount())
}

func TestController_UnknownIDsAreNoops(t *testing.T) {
	c := newTestController()
	c.SetPendingInput("keep")
	kept, _ := c.AddTask()
	c.ToggleTask(kept.ID)

	before := c.State()

	assert.False(t, c.ToggleTask(kept.ID+100))
	assert.False(t, c.DeleteTask(kept.ID+100))
	assert.Equal(t, before, c.State())

	// stale reference: a toggle arriving after the delete
	require.True(t, c.DeleteTask(kept.ID))
	assert.False(t, c.ToggleTask(kept.ID))
	assert.Empty(t, c.State().Tasks)
}

func TestController_StateIsACopy(t *testing.T) {
	c := newTestController()
	c.SetPendingInput("original")
	c.AddTask()

	st := c.State()
	st.Tasks[0].Text = "mutated"
	st.Tasks[0].Completed = true

	assert.Equal(t, "original", c.State().Tasks[0].Text)
	assert.False(t, c.State().Tasks[0].Completed)
}

func TestController_Subscribe(t *testing.T) {
	c := newTestController()

	var changes []Change
	c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	c.SetPendingInput("A")
	c.AddTask()
	c.AddTask()
	c.ToggleTask(1)
	c.ToggleTask(42)
	c.DeleteTask(1)

	require.Len(t, changes, 4, "no-ops do not notify")

	ops := make([]Op, 0, len(changes))
	for _, ch := range changes {
		ops = append(ops, ch.Op)
	}
	assert.Equal(t, []Op{OpInput, OpAdd, OpToggle, OpDelete}, ops)

	assert.Equal(t, Task{ID: 1, Text: "A"}, changes[1].Task)
	assert.Equal(t, Task{ID: 1, Text: "A", Completed: true}, changes[2].Task)
	assert.Equal(t, Task{ID: 1, Text: "A", Completed: true}, changes[3].Task)
	assert.Len(t, changes[3].Before.Tasks, 1)
	assert.Empty(t, changes[3].After.Tasks)
}

func TestController_DefaultsToClockIDs(t *testing.T) {
	c := NewController(WithLogger(zerolog.Nop()))
	assert.IsType(t, &ClockIDs{}, c.ids)
}

func TestController_LogsChanges(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(
		WithIDSource(&CounterIDs{}),
		WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)),
	)

	c.SetPendingInput("A")
	c.AddTask()
	c.DeleteTask(99)

	out := buf.String()
	assert.Contains(t, out, `"message":"task list changed"`)
	assert.Contains(t, out, `"op":"add"`)
	assert.Contains(t, out, `"message":"no-op"`)
}

// TestController_RandomSequences drives the controller with random
// operations and checks the list invariants after every step.
func TestController_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	inputs := []string{"", " ", "\t", "a", " b ", "milk", "milk"}

	for run := range 50 {
		c := newTestController()
		seen := map[ID]bool{}

		for step := range 200 {
			st := c.State()
			switch rng.IntN(4) {
			case 0:
				c.SetPendingInput(inputs[rng.IntN(len(inputs))])
			case 1:
				if task, ok := c.AddTask(); ok {
					assert.False(t, seen[task.ID], "run %d step %d: id %d reused", run, step, task.ID)
					seen[task.ID] = true
				}
			case 2:
				c.ToggleTask(randomID(rng, st))
			case 3:
				before := c.State()
				id := randomID(rng, st)
				if c.DeleteTask(id) {
					assertOrderPreserved(t, before.Tasks, c.State().Tasks, id)
				}
			}

			after := c.State()
			ids := map[ID]bool{}
			completed := 0
			for _, task := range after.Tasks {
				assert.NotEmpty(t, strings.TrimSpace(task.Text))
				assert.False(t, ids[task.ID], "duplicate id %d", task.ID)
				ids[task.ID] = true
				if task.Completed {
					completed++
				}
			}
			assert.Equal(t, completed, c.CompletedCount())
			assert.LessOrEqual(t, c.CompletedCount(), len(after.Tasks))
		}
	}
}

func randomID(rng *rand.Rand, st State) ID {
	if len(st.Tasks) == 0 || rng.IntN(5) == 0 {
		return ID(rng.IntN(1000) + 1000)
	}
	return st.Tasks[rng.IntN(len(st.Tasks))].ID
}

func assertOrderPreserved(t *testing.T, before, after []Task, removed ID) {
	t.Helper()

	want := make([]Task, 0, len(before))
	for _, task := range before {
		if task.ID != removed {
			want = append(want, task)
		}
	}
	assert.Equal(t, want, after)
}
