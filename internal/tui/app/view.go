package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/basecamp/tasklist/internal/tasks"
)

const title = "Todo List"

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.viewHeader(),
		m.viewSearch(),
		m.viewFilters(),
		m.viewEntry(),
		"",
		m.viewTasks(),
		"",
		m.viewFooter(),
	}
	content := strings.Join(sections, "\n")

	root := m.styles.Root.Padding(0, 1)
	if m.width > 0 {
		root = root.Width(m.width)
	}
	if m.height > 0 {
		root = root.Height(m.height)
	}
	return root.Render(content)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-2, 10)
}

func (m *Model) viewHeader() string {
	s := m.styles
	left := s.Title.Render(title)
	right := s.ThemeToggle.Render(m.widget.Theme().Icon())

	gap := 1
	if w := m.contentWidth(); w > 0 {
		gap = max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) viewSearch() string {
	if m.focus == focusSearch {
		return m.styles.InputFocused.Render(m.search.View())
	}
	return m.styles.Input.Render(m.search.View())
}

func (m *Model) viewFilters() string {
	current := m.widget.Filter()
	buttons := make([]string, 0, len(tasks.FilterModes()))
	for _, f := range tasks.FilterModes() {
		if f == current {
			buttons = append(buttons, m.styles.FilterActive.Render(f.Label()))
		} else {
			buttons = append(buttons, m.styles.FilterInactive.Render(f.Label()))
		}
	}
	return strings.Join(buttons, " ")
}

func (m *Model) viewEntry() string {
	if m.focus == focusEntry {
		return m.styles.InputFocused.Render(m.entry.View())
	}
	return m.styles.Input.Render(m.entry.View())
}

func (m *Model) viewTasks() string {
	s := m.styles
	visible := m.widget.Visible()

	if len(visible) == 0 {
		if m.widget.Counts().Total == 0 {
			return s.Muted.Render("No tasks yet. Press a to add one.")
		}
		return s.Muted.Render("No matching tasks.")
	}

	entry := m.widget.Entry()
	width := m.contentWidth()
	lines := make([]string, 0, len(visible))
	for i, t := range visible {
		pointer := "  "
		if i == m.cursor && m.focus == focusList {
			pointer = s.Cursor.Render("> ")
		}

		text := t.Text
		if entry.Mode == tasks.Editing && entry.TaskID == t.ID {
			text += " (editing)"
		}
		if width > 0 {
			// pointer and checkbox take 6 cells
			text = ansi.Truncate(text, max(width-6, 1), "…")
		}

		lines = append(lines, pointer+s.RenderCheckbox(t.Completed, text))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewFooter() string {
	s := m.styles
	c := m.widget.Counts()
	noun := "tasks"
	if c.Total == 1 {
		noun = "task"
	}
	parts := []string{
		s.Muted.Render(fmt.Sprintf("%d %s · %d completed · %d remaining", c.Total, noun, c.Completed, c.Remaining)),
	}

	if m.status != "" {
		if m.statusErr {
			parts = append(parts, s.StatusError.Render(m.status))
		} else {
			parts = append(parts, s.StatusOK.Render(m.status))
		}
	}

	if m.focus == focusList {
		parts = append(parts, m.help.View(m.keys))
	} else {
		parts = append(parts, m.help.View(inputKeyMap{submit: m.keys.Submit, cancel: m.keys.Cancel}))
	}
	return strings.Join(parts, "\n")
}
