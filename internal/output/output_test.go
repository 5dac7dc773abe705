package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basecamp/tasklist/internal/theme"
	"github.com/basecamp/tasklist/internal/tui"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{CodeUsage, ExitUsage},
		{CodeConfig, ExitConfig},
		{CodeStorage, ExitStorage},
		{CodeInternal, ExitInternal},
		{"unknown_code", ExitInternal},
		{"", ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCodeFor(tt.code))
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	assert.Equal(t, "bad flag", ErrUsage("bad flag").Error())
	assert.Equal(t, "bad flag: try --help", ErrUsageHint("bad flag", "try --help").Error())

	cause := errors.New("permission denied")
	e := ErrStorage("save", cause)
	assert.Equal(t, CodeStorage, e.Code)
	assert.Equal(t, "Could not save preferences: permission denied", e.Error())
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, ExitStorage, e.ExitCode())

	c := ErrConfig(cause)
	assert.Equal(t, ExitConfig, c.ExitCode())
	assert.ErrorIs(t, c, cause)
}

func TestAsError(t *testing.T) {
	orig := ErrUsage("nope")
	wrapped := fmt.Errorf("running: %w", orig)
	assert.Same(t, orig, AsError(wrapped))

	plain := errors.New("boom")
	e := AsError(plain)
	assert.Equal(t, CodeInternal, e.Code)
	assert.Equal(t, "boom", e.Message)
	assert.ErrorIs(t, e, plain)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatStyled, ParseFormat("styled"))
	assert.Equal(t, FormatQuiet, ParseFormat("quiet"))
	assert.Equal(t, FormatAuto, ParseFormat("auto"))
	assert.Equal(t, FormatAuto, ParseFormat("whatever"))
}

func TestWriterOKJSON(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatJSON, Writer: &buf})

	err := w.OK(map[string]any{"theme": "dark"},
		WithSummary("Theme is dark"),
		WithBreadcrumbs(Breadcrumb{Action: "toggle", Cmd: "tasklist theme toggle"}),
	)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Theme is dark", resp.Summary)
	assert.Equal(t, map[string]any{"theme": "dark"}, resp.Data)
	require.Len(t, resp.Breadcrumbs, 1)
	assert.Equal(t, "tasklist theme toggle", resp.Breadcrumbs[0].Cmd)
}

func TestWriterAutoIsJSONWhenPiped(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Writer: &buf})

	require.NoError(t, w.OK("hello"))
	assert.JSONEq(t, `{"ok": true, "data": "hello"}`, buf.String())
}

func TestWriterQuiet(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatQuiet, Writer: &buf})

	require.NoError(t, w.OK(map[string]any{"theme": "light"}, WithSummary("ignored")))
	assert.JSONEq(t, `{"theme": "light"}`, buf.String())
}

func TestWriterErrJSON(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatJSON, Writer: &buf})

	require.NoError(t, w.Err(ErrUsageHint("unknown theme", "use dark or light")))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, CodeUsage, resp.Code)
	assert.Equal(t, "unknown theme", resp.Error)
	assert.Equal(t, "use dark or light", resp.Hint)
}

func TestWriterStyled(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatStyled, Writer: &buf, Palette: tui.NoColorTheme(), Mode: theme.Light})

	err := w.OK(map[string]any{"theme": "light", "state_dir": "/tmp/x", "persisted": true},
		WithSummary("Theme is light"),
		WithBreadcrumbs(Breadcrumb{Cmd: "tasklist theme toggle", Description: "Switch to dark"}),
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Theme is light")
	assert.Contains(t, out, "Theme")
	assert.Contains(t, out, "State Dir")
	assert.Contains(t, out, "/tmp/x")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "tasklist theme toggle")
	assert.Contains(t, out, "# Switch to dark")
}

func TestWriterStyledErr(t *testing.T) {
	var buf bytes.Buffer
	w := New(Options{Format: FormatStyled, Writer: &buf, Palette: tui.NoColorTheme()})

	require.NoError(t, w.Err(ErrUsageHint("bad", "do better")))
	assert.Contains(t, buf.String(), "Error: bad")
	assert.Contains(t, buf.String(), "Hint: do better")
}

func TestNormalizeData(t *testing.T) {
	type item struct {
		Key    string `json:"key"`
		Action string `json:"action"`
	}

	got := NormalizeData([]item{{Key: "t", Action: "toggle theme"}})
	assert.Equal(t, []any{map[string]any{"key": "t", "action": "toggle theme"}}, got)

	assert.Equal(t, "plain", NormalizeData("plain"))
	assert.Nil(t, NormalizeData(nil))
	assert.Equal(t, map[string]any{"a": float64(1)}, NormalizeData(json.RawMessage(`{"a":1}`)))
}

func TestFormatHeader(t *testing.T) {
	assert.Equal(t, "State Dir", formatHeader("state_dir"))
	assert.Equal(t, "Theme", formatHeader("theme"))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "3", formatCell(float64(3)))
	assert.Equal(t, "1.5", formatCell(1.5))
	assert.Equal(t, "no", formatCell(false))
	assert.Equal(t, "a, b", formatCell([]any{"a", "b"}))
	assert.Equal(t, "source=env value=/tmp", formatCell(map[string]any{"value": "/tmp", "source": "env"}))
}
