// Package tui implements the interactive terminal front end. It renders the
// task controller's state and turns key presses into controller operations.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/tasklist/internal/core/config"
	"github.com/hay-kot/tasklist/internal/core/logging"
	"github.com/hay-kot/tasklist/internal/core/task"
)

// Focus identifies which part of the screen receives key presses.
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyCtrlC = "ctrl+c"
)

// Deps are the collaborators the TUI needs.
type Deps struct {
	Controller *task.Controller
	Config     *config.Config
}

// Model is the Bubble Tea model for the task list.
type Model struct {
	ctrl  *task.Controller
	tui   config.TUIConfig
	keys  KeyMap
	input textinput.Model
	help  help.Model
	log   zerolog.Logger

	focus    Focus
	cursor   int
	status   string
	width    int
	quitting bool
}

// New creates a model with the input field focused.
func New(deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = deps.Config.TUI.Placeholder
	ti.CharLimit = deps.Config.TUI.CharLimit
	ti.Width = 40
	ti.Focus()
	ti.SetValue(deps.Controller.State().PendingInput)

	return Model{
		ctrl:  deps.Controller,
		tui:   deps.Config.TUI,
		keys:  NewKeyMap(deps.Config.Keys),
		input: ti,
		help:  help.New(),
		log:   logging.Component("tui"),
		focus: FocusInput,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-16, 10)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.focus == FocusInput {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m = m.apply(task.Event{Op: task.OpAdd})
		return m, nil
	case key.Matches(msg, m.keys.FocusList):
		m.focus = FocusList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.ctrl.State().PendingInput {
		m.ctrl.SetPendingInput(m.input.Value())
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.ctrl.State().Tasks

	// Each key resolves to at most one action; config validation keeps the
	// list bindings disjoint.
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.FocusInput):
		m.focus = FocusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if len(tasks) > 0 {
			m = m.apply(task.Event{Op: task.OpToggle, ID: tasks[m.cursor].ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if len(tasks) > 0 {
			m = m.apply(task.Event{Op: task.OpDelete, ID: tasks[m.cursor].ID})
		}
	}

	return m, nil
}

// apply dispatches ev, updates the status line, and re-syncs the view state
// that mirrors the controller.
func (m Model) apply(ev task.Event) Model {
	ch, changed := m.ctrl.Dispatch(ev)
	if changed {
		m.status = describe(ch)
	} else if ev.Op == task.OpAdd {
		m.status = "Type a task first"
	}

	st := m.ctrl.State()
	if ev.Op == task.OpAdd && changed {
		m.cursor = len(st.Tasks) - 1
	}
	m.cursor = clampCursor(m.cursor, len(st.Tasks))

	if m.input.Value() != st.PendingInput {
		m.input.SetValue(st.PendingInput)
	}

	m.log.Debug().
		Str("op", string(ev.Op)).
		Bool("changed", changed).
		Int("cursor", m.cursor).
		Msg("key handled")

	return m
}

func describe(ch task.Change) string {
	switch ch.Op {
	case task.OpAdd:
		return fmt.Sprintf("Added %q", ch.Task.Text)
	case task.OpToggle:
		if ch.Task.Completed {
			return fmt.Sprintf("Completed %q", ch.Task.Text)
		}
		return fmt.Sprintf("Reopened %q", ch.Task.Text)
	case task.OpDelete:
		return fmt.Sprintf("Deleted %q", ch.Task.Text)
	default:
		return ""
	}
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(cursor, 0), n-1)
}

// Focus returns the area that currently receives key presses.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor returns the index of the highlighted task.
func (m Model) Cursor() int {
	return m.cursor
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}
