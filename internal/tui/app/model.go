// Package app is the full-screen task list program.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/basecamp/tasklist/internal/tasks"
	"github.com/basecamp/tasklist/internal/theme"
	"github.com/basecamp/tasklist/internal/tui"
)

const (
	placeholderAdd    = "Add a task..."
	placeholderEdit   = "Edit task..."
	placeholderSearch = "Search tasks..."
)

// focus is which part of the screen receives key presses.
type focus int

const (
	focusList focus = iota
	focusEntry
	focusSearch
)

// prefsChangedMsg reports that the prefs file changed on disk.
type prefsChangedMsg struct{}

// Model is the bubbletea model for the task list. It translates key events
// into widget operations and renders the derived view; all task state lives
// in the widget.
type Model struct {
	widget  *tasks.Widget
	pref    *theme.Preference
	palette tui.Theme
	styles  *tui.Styles
	keys    KeyMap
	help    help.Model
	logger  *slog.Logger

	entry  textinput.Model
	search textinput.Model
	focus  focus
	cursor int

	width  int
	height int

	status    string
	statusErr bool

	changes <-chan struct{}
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default keybindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keys = km }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithChanges makes the model re-read the theme preference each time a
// value arrives on ch.
func WithChanges(ch <-chan struct{}) Option {
	return func(m *Model) { m.changes = ch }
}

// New creates the model with an empty task list. The palette supplies the
// colors; pref supplies and persists the active mode.
func New(pref *theme.Preference, palette tui.Theme, opts ...Option) *Model {
	m := &Model{
		pref:    pref,
		palette: palette,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.widget = tasks.NewWidget(pref, m.logger)

	m.entry = textinput.New()
	m.entry.Prompt = "+ "
	m.entry.Placeholder = placeholderAdd
	m.entry.CharLimit = 500

	m.search = textinput.New()
	m.search.Prompt = "/ "
	m.search.Placeholder = placeholderSearch
	m.search.CharLimit = 200

	m.applyTheme(pref.Mode())
	pref.OnChange(m.applyTheme)
	return m
}

// Widget returns the underlying task state.
func (m *Model) Widget() *tasks.Widget {
	return m.widget
}

// Styles returns the styles for the active mode.
func (m *Model) Styles() *tui.Styles {
	return m.styles
}

// Cursor returns the highlighted position in the visible list.
func (m *Model) Cursor() int {
	return m.cursor
}

// Status returns the transient status line.
func (m *Model) Status() string {
	return m.status
}

// applyTheme rebuilds every style for mode. It runs as the theme apply hook.
func (m *Model) applyTheme(mode theme.Mode) {
	m.styles = tui.NewStylesFor(m.palette, mode)

	s := m.styles
	for _, in := range []*textinput.Model{&m.entry, &m.search} {
		in.PromptStyle = s.Cursor
		in.TextStyle = s.Body
		in.PlaceholderStyle = s.Muted
		in.Cursor.Style = s.Cursor
	}

	m.help.Styles.ShortKey = s.Bold
	m.help.Styles.ShortDesc = s.Muted
	m.help.Styles.ShortSeparator = s.Muted
	m.help.Styles.FullKey = s.Bold
	m.help.Styles.FullDesc = s.Muted
	m.help.Styles.FullSeparator = s.Muted
	m.help.Styles.Ellipsis = s.Muted

	m.logger.Debug("tui: styles rebuilt", "mode", mode)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// waitForChange blocks on ch and reports one change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return prefsChangedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		inputWidth := max(msg.Width-6, 10)
		m.entry.Width = inputWidth
		m.search.Width = inputWidth
		return m, nil

	case prefsChangedMsg:
		if m.pref.Reload() {
			m.setStatus(false, "theme changed to "+m.pref.Mode().String())
		}
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.focus {
		case focusEntry:
			return m.updateEntry(msg)
		case focusSearch:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := len(m.widget.Visible())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < visible-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(visible-1, 0)

	case key.Matches(msg, m.keys.Add):
		return m, m.startEntry()

	case key.Matches(msg, m.keys.Toggle):
		m.widget.ToggleVisible(m.cursor)
		m.clampCursor()

	case key.Matches(msg, m.keys.Edit):
		if m.widget.EditVisible(m.cursor) {
			m.entry.SetValue(m.widget.Draft())
			m.entry.CursorEnd()
			m.syncPlaceholder()
			return m, m.startEntry()
		}

	case key.Matches(msg, m.keys.Delete):
		if m.widget.DeleteVisible(m.cursor) {
			m.syncPlaceholder()
		}
		m.clampCursor()

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(tasks.FilterAll)

	case key.Matches(msg, m.keys.FilterCompleted):
		m.setFilter(tasks.FilterCompleted)

	case key.Matches(msg, m.keys.FilterIncomplete):
		m.setFilter(tasks.FilterIncomplete)

	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.widget.Filter().Next())

	case key.Matches(msg, m.keys.Theme):
		mode, err := m.widget.ToggleTheme()
		if err != nil {
			m.setStatus(true, "could not save theme: "+err.Error())
		} else {
			m.setStatus(false, "theme: "+mode.String())
		}
	}

	return m, nil
}

func (m *Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		wasEditing := m.widget.Entry().Mode == tasks.Editing
		if !m.widget.Submit(m.entry.Value()) {
			return m, nil
		}
		m.entry.Reset()
		m.syncPlaceholder()
		if wasEditing {
			m.blurInputs()
			return m, nil
		}
		m.cursor = max(len(m.widget.Visible())-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.widget.Entry().Mode == tasks.Editing {
			m.widget.CancelEdit()
			m.entry.Reset()
			m.syncPlaceholder()
		}
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	m.widget.SetDraft(m.entry.Value())
	return m, cmd
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) || key.Matches(msg, m.keys.Cancel) {
		m.blurInputs()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.widget.SetSearch(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m *Model) startEntry() tea.Cmd {
	m.focus = focusEntry
	m.search.Blur()
	return m.entry.Focus()
}

func (m *Model) blurInputs() {
	m.focus = focusList
	m.entry.Blur()
	m.search.Blur()
}

func (m *Model) setFilter(f tasks.FilterMode) {
	m.widget.SetFilter(f)
	m.clampCursor()
}

func (m *Model) syncPlaceholder() {
	if m.widget.Entry().Mode == tasks.Editing {
		m.entry.Placeholder = placeholderEdit
	} else {
		m.entry.Placeholder = placeholderAdd
	}
}

func (m *Model) clampCursor() {
	n := len(m.widget.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(isErr bool, s string) {
	m.status = s
	m.statusErr = isErr
}
