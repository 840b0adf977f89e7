package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/tasklist/internal/core/styles"
	"github.com/hay-kot/tasklist/internal/core/task"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.ctrl.State()

	inputStyle := styles.InputStyle
	if m.focus == FocusInput {
		inputStyle = styles.InputFocusedStyle
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(m.tui.Title),
		"",
		inputStyle.Render(m.input.View()),
		"",
		m.renderTasks(st.Tasks),
		styles.SummaryStyle.Render(summary(st)),
	)

	var b strings.Builder
	b.WriteString(styles.CardStyle.Render(card))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(styles.StatusStyle.Render(m.status))
		b.WriteString("\n")
	}

	keys := m.keys.listHelp()
	if m.focus == FocusInput {
		keys = m.keys.inputHelp()
	}
	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m Model) renderTasks(tasks []task.Task) string {
	if len(tasks) == 0 {
		return styles.TextMutedStyle.Render(m.tui.EmptyMessage)
	}

	rows := make([]string, 0, len(tasks))
	for i, t := range tasks {
		prefix := "  "
		if m.focus == FocusList && i == m.cursor {
			prefix = styles.CursorStyle.Render("┃ ")
		}

		box := styles.CheckboxStyle.Render("[ ]")
		text := styles.TaskStyle.Render(t.Text)
		if t.Completed {
			box = styles.CheckboxDoneStyle.Render("[x]")
			text = styles.TaskCompletedStyle.Render(t.Text)
		}

		rows = append(rows, prefix+box+" "+text)
	}

	return strings.Join(rows, "\n")
}

func summary(st task.State) string {
	return fmt.Sprintf("%d of %d completed", st.CompletedCount(), len(st.Tasks))
}
