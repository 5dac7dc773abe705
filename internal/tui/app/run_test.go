package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basecamp/tasklist/internal/prefs"
	"github.com/basecamp/tasklist/internal/theme"
	"github.com/basecamp/tasklist/internal/tui"
)

func TestRunQuitsOnInput(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "state")
	store := prefs.NewFileStore(stateDir)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, theme.Load(store, nil), RunOptions{
		Palette:   tui.NoColorTheme(),
		PrefsPath: store.Path(),
		Program: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("t\x03")),
			tea.WithOutput(io.Discard),
		},
	})
	require.NoError(t, err)

	info, err := os.Stat(stateDir)
	require.NoError(t, err, "state dir is created for the watcher")
	assert.True(t, info.IsDir())

	stored, ok, err := store.Get(theme.StoreKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", stored, "t toggled and persisted the theme before ctrl+c quit")
}
