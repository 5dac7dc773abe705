package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/basecamp/tasklist/internal/theme"
)

// Theme defines the color palette for the TUI. Each color carries a light
// and a dark variant; the active mode picks one.
type Theme struct {
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
}

// DefaultTheme returns the default palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:    lipgloss.AdaptiveColor{Light: "#1a73e8", Dark: "#8ab4f8"},
		Secondary:  lipgloss.AdaptiveColor{Light: "#5f6368", Dark: "#9aa0a6"},
		Success:    lipgloss.AdaptiveColor{Light: "#1e8e3e", Dark: "#81c995"},
		Warning:    lipgloss.AdaptiveColor{Light: "#f9ab00", Dark: "#fdd663"},
		Error:      lipgloss.AdaptiveColor{Light: "#d93025", Dark: "#f28b82"},
		Muted:      lipgloss.AdaptiveColor{Light: "#80868b", Dark: "#6e7681"},
		Background: lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1f1f1f"},
		Foreground: lipgloss.AdaptiveColor{Light: "#202124", Dark: "#e8eaed"},
		Border:     lipgloss.AdaptiveColor{Light: "#dadce0", Dark: "#3c4043"},
	}
}

// Pick resolves an adaptive color for an explicit mode instead of the
// terminal's detected background.
func Pick(c lipgloss.AdaptiveColor, mode theme.Mode) lipgloss.TerminalColor {
	v := c.Dark
	if mode == theme.Light {
		v = c.Light
	}
	if v == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(v)
}

// Styles holds the styled components for one theme mode.
type Styles struct {
	theme Theme
	mode  theme.Mode

	// Root is applied to the whole screen.
	Root lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Container styles
	Panel lipgloss.Style

	// Interactive styles
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Cursor         lipgloss.Style
	Done           lipgloss.Style
	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style
	ThemeToggle    lipgloss.Style

	// Status styles
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates Styles from the default palette in dark mode.
func NewStyles() *Styles {
	return NewStylesFor(DefaultTheme(), theme.Default)
}

// NewStylesFor creates Styles for a palette and mode.
func NewStylesFor(th Theme, mode theme.Mode) *Styles {
	s := &Styles{theme: th, mode: mode}
	c := func(ac lipgloss.AdaptiveColor) lipgloss.TerminalColor { return Pick(ac, mode) }

	s.Root = lipgloss.NewStyle().
		Background(c(th.Background)).
		Foreground(c(th.Foreground))

	// Text styles
	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(th.Primary))

	s.Body = lipgloss.NewStyle().
		Foreground(c(th.Foreground))

	s.Muted = lipgloss.NewStyle().
		Foreground(c(th.Muted))

	s.Bold = lipgloss.NewStyle().
		Bold(true).
		Foreground(c(th.Foreground))

	s.Success = lipgloss.NewStyle().
		Foreground(c(th.Success))

	s.Warning = lipgloss.NewStyle().
		Foreground(c(th.Warning))

	s.Error = lipgloss.NewStyle().
		Foreground(c(th.Error))

	// Container styles
	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(th.Border)).
		Padding(0, 1)

	// Interactive styles
	s.Input = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c(th.Border)).
		Padding(0, 1)

	s.InputFocused = s.Input.
		BorderForeground(c(th.Primary))

	s.Cursor = lipgloss.NewStyle().
		Foreground(c(th.Primary)).
		Bold(true)

	s.Done = lipgloss.NewStyle().
		Foreground(c(th.Muted)).
		Strikethrough(true)

	s.FilterActive = lipgloss.NewStyle().
		Background(c(th.Primary)).
		Foreground(c(th.Background)).
		Bold(true).
		Padding(0, 1)

	s.FilterInactive = lipgloss.NewStyle().
		Foreground(c(th.Secondary)).
		Padding(0, 1)

	s.ThemeToggle = lipgloss.NewStyle().
		Foreground(c(th.Warning)).
		Bold(true)

	// Status styles
	s.StatusOK = lipgloss.NewStyle().
		Foreground(c(th.Success)).
		Bold(true)

	s.StatusError = lipgloss.NewStyle().
		Foreground(c(th.Error)).
		Bold(true)

	return s
}

// Theme returns the palette.
func (s *Styles) Theme() Theme {
	return s.theme
}

// Mode returns the mode the styles were built for.
func (s *Styles) Mode() theme.Mode {
	return s.mode
}

// RenderKeyValue renders a key-value pair.
func (s *Styles) RenderKeyValue(key, value string) string {
	return s.Muted.Render(key+": ") + s.Body.Render(value)
}

// RenderStatus renders a status message with appropriate styling.
func (s *Styles) RenderStatus(ok bool, message string) string {
	if ok {
		return s.StatusOK.Render("✓ " + message)
	}
	return s.StatusError.Render("✗ " + message)
}

// RenderCheckbox renders a checkbox item.
func (s *Styles) RenderCheckbox(checked bool, label string) string {
	if checked {
		return s.Done.Render("[✓] " + label)
	}
	return s.Body.Render("[ ] " + label)
}
