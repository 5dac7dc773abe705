// Package tasks implements the in-memory task list and the widget state
// that drives it.
package tasks

import (
	"slices"
	"strings"
)

// Task is a single user-entered item.
type Task struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// List is an ordered task list. IDs are assigned on Add, start at 1, and are
// never reused, so callers can hold an ID across filtering and deletes.
type List struct {
	tasks  []Task
	nextID int
}

// Add appends a new incomplete task with trimmed text and returns it.
// Blank text adds nothing and returns false.
func (l *List) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	l.nextID++
	t := Task{ID: l.nextID, Text: text}
	l.tasks = append(l.tasks, t)
	return t, true
}

// Get returns the task with id.
func (l *List) Get(id int) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i], true
}

// SetText replaces a task's text in place. Blank text is ignored.
func (l *List) SetText(id int, text string) bool {
	text = strings.TrimSpace(text)
	i := l.index(id)
	if i < 0 || text == "" {
		return false
	}
	l.tasks[i].Text = text
	return true
}

// Toggle flips a task's completion flag.
func (l *List) Toggle(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return true
}

// Remove deletes a task, preserving the order of the rest.
func (l *List) Remove(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return true
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// All returns a copy of the tasks in list order.
func (l *List) All() []Task {
	return slices.Clone(l.tasks)
}

func (l *List) index(id int) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
}
