// Package richtext renders Markdown for terminal display.
// It uses glamour for terminal-friendly Markdown rendering.
package richtext

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/basecamp/tasklist/internal/theme"
)

// DefaultWidth is the word-wrap width used when the terminal width is unknown.
const DefaultWidth = 80

// StyleFor returns the glamour standard style matching a theme mode.
func StyleFor(mode theme.Mode) string {
	if mode == theme.Light {
		return styles.LightStyle
	}
	return styles.DarkStyle
}

// RenderMarkdown renders Markdown for terminal display in the given mode.
func RenderMarkdown(md string, mode theme.Mode) (string, error) {
	return RenderMarkdownWithWidth(md, mode, DefaultWidth)
}

// RenderMarkdownWithWidth renders Markdown for terminal display with a custom width.
func RenderMarkdownWithWidth(md string, mode theme.Mode, width int) (string, error) {
	if md == "" {
		return "", nil
	}
	if width <= 0 {
		width = DefaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(StyleFor(mode)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	out, err := r.Render(md)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// Table builds a two-column Markdown table.
func Table(headers [2]string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString("| " + headers[0] + " | " + headers[1] + " |\n")
	b.WriteString("| --- | --- |\n")
	for _, r := range rows {
		b.WriteString("| " + escapeCell(r[0]) + " | " + escapeCell(r[1]) + " |\n")
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
