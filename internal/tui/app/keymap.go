package app

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"

	"github.com/basecamp/tasklist/internal/config"
)

// KeyMap defines the keybindings of the task list.
type KeyMap struct {
	// List navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Task actions
	Add    key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Delete key.Binding

	// View controls
	Search           key.Binding
	FilterAll        key.Binding
	FilterCompleted  key.Binding
	FilterIncomplete key.Binding
	CycleFilter      key.Binding
	Theme            key.Binding

	Help key.Binding
	Quit key.Binding

	// Text fields
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space/x", "toggle done"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "show all"),
		),
		FilterCompleted: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "show completed"),
		),
		FilterIncomplete: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "show incomplete"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next filter"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns the bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Search, k.Theme, k.Help, k.Quit}
}

// FullHelp returns all list bindings for the expanded help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Toggle, k.Edit, k.Delete},
		{k.Search, k.FilterAll, k.FilterCompleted, k.FilterIncomplete, k.CycleFilter},
		{k.Theme, k.Help, k.Quit},
	}
}

// inputKeyMap is shown while a text field has focus.
type inputKeyMap struct {
	submit key.Binding
	cancel key.Binding
}

func (k inputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}

func (k inputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// bindings maps action names (from keybindings.json) to bindings.
// Submit and Cancel drive the text fields and are not remappable.
func (k *KeyMap) bindings() map[string]*key.Binding {
	return map[string]*key.Binding{
		"up":                &k.Up,
		"down":              &k.Down,
		"top":               &k.Top,
		"bottom":            &k.Bottom,
		"add":               &k.Add,
		"toggle":            &k.Toggle,
		"edit":              &k.Edit,
		"delete":            &k.Delete,
		"search":            &k.Search,
		"filter_all":        &k.FilterAll,
		"filter_completed":  &k.FilterCompleted,
		"filter_incomplete": &k.FilterIncomplete,
		"cycle_filter":      &k.CycleFilter,
		"theme":             &k.Theme,
		"help":              &k.Help,
		"quit":              &k.Quit,
	}
}

// KeyOverridesPath is where LoadKeyOverrides looks by default.
func KeyOverridesPath() string {
	return filepath.Join(config.GlobalConfigDir(), "keybindings.json")
}

// LoadKeyOverrides reads keybinding overrides from a JSON file.
// Returns nil (not an error) if the file doesn't exist.
func LoadKeyOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Path from trusted config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

// ApplyOverrides remaps keybindings according to overrides. Keys are action
// names (e.g. "theme"), values are key strings (e.g. "ctrl+t"). Unknown
// actions and empty keys are ignored.
func ApplyOverrides(km *KeyMap, overrides map[string]string) {
	bindings := km.bindings()
	for action, keyStr := range overrides {
		b, ok := bindings[action]
		if !ok || keyStr == "" {
			continue
		}
		*b = key.NewBinding(
			key.WithKeys(keyStr),
			key.WithHelp(keyStr, b.Help().Desc),
		)
	}
}

// Reference lists every binding as (keys, action) rows, in help order.
func (k KeyMap) Reference() [][2]string {
	var rows [][2]string
	for _, group := range k.FullHelp() {
		for _, b := range group {
			rows = append(rows, [2]string{b.Help().Key, b.Help().Desc})
		}
	}
	rows = append(rows,
		[2]string{k.Submit.Help().Key, "save the task being added or edited"},
		[2]string{k.Cancel.Help().Key, "cancel an edit or leave a text field"},
	)
	return rows
}
