package tasks

import (
	"log/slog"

	"github.com/basecamp/tasklist/internal/theme"
)

// EntryMode is what submitting the shared text input does.
type EntryMode int

const (
	// Adding appends the draft as a new task.
	Adding EntryMode = iota
	// Editing replaces the text of Entry.TaskID.
	Editing
)

// Entry is the tagged state of the shared input: Adding, or Editing a task.
type Entry struct {
	Mode   EntryMode
	TaskID int
}

// Counts summarizes the full list, ignoring filter and search.
type Counts struct {
	Total     int
	Completed int
	Remaining int
}

// Widget owns every piece of task-list state and all transitions on it.
// The visible list is never stored; Visible derives it on each call.
//
// Index-based methods (ToggleVisible, DeleteVisible, EditVisible) take a
// position in the current visible list and resolve it to a task ID before
// mutating, so a filtered or searched view never mutates the wrong task.
type Widget struct {
	list   List
	draft  string
	filter FilterMode
	search string
	entry  Entry

	theme  *theme.Preference
	logger *slog.Logger
}

// NewWidget creates an empty widget using pref for the theme.
func NewWidget(pref *theme.Preference, logger *slog.Logger) *Widget {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Widget{theme: pref, logger: logger}
}

// Theme returns the active theme mode.
func (w *Widget) Theme() theme.Mode {
	return w.theme.Mode()
}

// ToggleTheme flips the theme and persists it. The mode flips even if
// persisting fails; that error is returned for display.
func (w *Widget) ToggleTheme() (theme.Mode, error) {
	return w.theme.Toggle()
}

// Draft returns the current input text.
func (w *Widget) Draft() string {
	return w.draft
}

// SetDraft replaces the input text.
func (w *Widget) SetDraft(s string) {
	w.draft = s
}

// Entry returns the input state.
func (w *Widget) Entry() Entry {
	return w.entry
}

// Submit applies draft: it replaces the edited task's text when editing,
// otherwise appends a new task. A draft that is blank after trimming does
// nothing and reports false. The draft is cleared on success.
func (w *Widget) Submit(draft string) bool {
	if w.entry.Mode == Editing {
		if !w.list.SetText(w.entry.TaskID, draft) {
			w.logger.Debug("tasks: ignored blank edit", "id", w.entry.TaskID)
			return false
		}
		w.logger.Debug("tasks: edited", "id", w.entry.TaskID)
		w.entry = Entry{Mode: Adding}
		w.draft = ""
		return true
	}

	t, ok := w.list.Add(draft)
	if !ok {
		w.logger.Debug("tasks: ignored blank submission")
		return false
	}
	w.logger.Debug("tasks: added", "id", t.ID)
	w.draft = ""
	return true
}

// Toggle flips completion on the task with id.
func (w *Widget) Toggle(id int) bool {
	return w.list.Toggle(id)
}

// Delete removes the task with id. Deleting the task being edited returns
// the input to Adding and keeps the draft.
func (w *Widget) Delete(id int) bool {
	if !w.list.Remove(id) {
		return false
	}
	if w.entry.Mode == Editing && w.entry.TaskID == id {
		w.entry = Entry{Mode: Adding}
	}
	w.logger.Debug("tasks: deleted", "id", id)
	return true
}

// StartEdit loads the task's text into the draft and targets it for the next
// Submit. It replaces any edit already in progress.
func (w *Widget) StartEdit(id int) bool {
	t, ok := w.list.Get(id)
	if !ok {
		return false
	}
	w.draft = t.Text
	w.entry = Entry{Mode: Editing, TaskID: id}
	return true
}

// CancelEdit abandons an edit and clears the draft.
func (w *Widget) CancelEdit() {
	if w.entry.Mode != Editing {
		return
	}
	w.entry = Entry{Mode: Adding}
	w.draft = ""
}

// ToggleVisible toggles the task at position i of Visible.
func (w *Widget) ToggleVisible(i int) bool {
	id, ok := w.visibleID(i)
	return ok && w.Toggle(id)
}

// DeleteVisible deletes the task at position i of Visible.
func (w *Widget) DeleteVisible(i int) bool {
	id, ok := w.visibleID(i)
	return ok && w.Delete(id)
}

// EditVisible starts editing the task at position i of Visible.
func (w *Widget) EditVisible(i int) bool {
	id, ok := w.visibleID(i)
	return ok && w.StartEdit(id)
}

func (w *Widget) visibleID(i int) (int, bool) {
	visible := w.Visible()
	if i < 0 || i >= len(visible) {
		return 0, false
	}
	return visible[i].ID, true
}

// Filter returns the active filter.
func (w *Widget) Filter() FilterMode {
	return w.filter
}

// SetFilter selects the visible subset.
func (w *Widget) SetFilter(f FilterMode) {
	w.filter = f
}

// Search returns the active search query.
func (w *Widget) Search() string {
	return w.search
}

// SetSearch sets the search query.
func (w *Widget) SetSearch(q string) {
	w.search = q
}

// Tasks returns every task in list order.
func (w *Widget) Tasks() []Task {
	return w.list.All()
}

// Visible returns the tasks passing the current filter and search.
func (w *Widget) Visible() []Task {
	return Visible(w.list.tasks, w.filter, w.search)
}

// Counts summarizes the whole list.
func (w *Widget) Counts() Counts {
	c := Counts{Total: w.list.Len()}
	for _, t := range w.list.tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Remaining = c.Total - c.Completed
	return c
}
