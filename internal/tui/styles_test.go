package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/basecamp/tasklist/internal/theme"
)

func TestPick(t *testing.T) {
	c := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}

	assert.Equal(t, lipgloss.Color("#000000"), Pick(c, theme.Dark))
	assert.Equal(t, lipgloss.Color("#ffffff"), Pick(c, theme.Light))
	assert.Equal(t, lipgloss.NoColor{}, Pick(lipgloss.AdaptiveColor{}, theme.Light))
}

func TestNewStylesForMode(t *testing.T) {
	th := DefaultTheme()

	dark := NewStylesFor(th, theme.Dark)
	light := NewStylesFor(th, theme.Light)

	assert.Equal(t, theme.Dark, dark.Mode())
	assert.Equal(t, theme.Light, light.Mode())
	assert.Equal(t, lipgloss.Color(th.Background.Dark), dark.Root.GetBackground())
	assert.Equal(t, lipgloss.Color(th.Background.Light), light.Root.GetBackground())
	assert.True(t, dark.Done.GetStrikethrough())
}

func TestNewStylesDefaultsToDark(t *testing.T) {
	s := NewStyles()
	assert.Equal(t, theme.Default, s.Mode())
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestRenderHelpers(t *testing.T) {
	s := NewStylesFor(NoColorTheme(), theme.Dark)

	assert.Contains(t, s.RenderStatus(true, "saved"), "✓ saved")
	assert.Contains(t, s.RenderStatus(false, "failed"), "✗ failed")
	assert.Contains(t, s.RenderCheckbox(true, "done"), "[✓] done")
	assert.Contains(t, s.RenderCheckbox(false, "open"), "[ ] open")
	assert.Contains(t, s.RenderKeyValue("mode", "dark"), "dark")
}
