package tasks

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// FilterMode selects which subset of tasks is visible.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterCompleted
	FilterIncomplete
)

// FilterModes lists the modes in display order.
func FilterModes() []FilterMode {
	return []FilterMode{FilterAll, FilterCompleted, FilterIncomplete}
}

func (f FilterMode) String() string {
	switch f {
	case FilterCompleted:
		return "completed"
	case FilterIncomplete:
		return "incomplete"
	default:
		return "all"
	}
}

// Label is the button caption.
func (f FilterMode) Label() string {
	switch f {
	case FilterCompleted:
		return "Completed"
	case FilterIncomplete:
		return "Incomplete"
	default:
		return "All"
	}
}

// Next cycles all -> completed -> incomplete -> all.
func (f FilterMode) Next() FilterMode {
	return (f + 1) % FilterMode(len(FilterModes()))
}

// ParseFilterMode parses a filter name.
func ParseFilterMode(s string) (FilterMode, error) {
	for _, f := range FilterModes() {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, completed, or incomplete)", s)
}

// Matches reports whether t belongs in this subset.
func (f FilterMode) Matches(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterIncomplete:
		return !t.Completed
	default:
		return true
	}
}

// MatchesSearch reports whether query occurs in the task text, ignoring
// case. An empty query matches everything.
func MatchesSearch(t Task, query string) bool {
	if query == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(t.Text), fold.String(query))
}

// Visible returns the tasks matching both filter and query, in list order.
func Visible(all []Task, filter FilterMode, query string) []Task {
	out := make([]Task, 0, len(all))
	for _, t := range all {
		if filter.Matches(t) && MatchesSearch(t, query) {
			out = append(out, t)
		}
	}
	return out
}
