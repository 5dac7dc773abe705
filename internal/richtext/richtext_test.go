package richtext

import (
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basecamp/tasklist/internal/theme"
)

func TestStyleFor(t *testing.T) {
	assert.Equal(t, styles.DarkStyle, StyleFor(theme.Dark))
	assert.Equal(t, styles.LightStyle, StyleFor(theme.Light))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	out, err := RenderMarkdown("", theme.Dark)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	for _, mode := range theme.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			out, err := RenderMarkdownWithWidth("# Keys\n\nPress **t** to toggle.", mode, 60)
			require.NoError(t, err)
			assert.Contains(t, out, "Keys")
			assert.Contains(t, out, "toggle")
		})
	}
}

func TestTable(t *testing.T) {
	got := Table([2]string{"Key", "Action"}, [][2]string{
		{"t", "toggle theme"},
		{"a|n", "add task"},
	})

	want := "| Key | Action |\n" +
		"| --- | --- |\n" +
		"| t | toggle theme |\n" +
		"| a\\|n | add task |\n"
	assert.Equal(t, want, got)
}
