package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/basecamp/tasklist/internal/prefs"
	"github.com/basecamp/tasklist/internal/theme"
	"github.com/basecamp/tasklist/internal/tui"
)

// RunOptions configures Run.
type RunOptions struct {
	Palette   tui.Theme
	KeyMap    KeyMap
	Logger    *slog.Logger
	PrefsPath string // watched for external theme changes; empty disables
	Program   []tea.ProgramOption
}

// Run starts the full-screen program and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, pref *theme.Preference, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if len(opts.KeyMap.Quit.Keys()) == 0 {
		opts.KeyMap = DefaultKeyMap()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes chan struct{}
	if opts.PrefsPath != "" {
		// The state dir may not exist before the first write; it must for the watch.
		if err := os.MkdirAll(filepath.Dir(opts.PrefsPath), 0700); err != nil {
			logger.Warn("tui: cannot create state dir", "error", err)
		}
		changes = make(chan struct{}, 1)
		go func() {
			defer close(changes)
			err := prefs.Watch(ctx, opts.PrefsPath, func() {
				select {
				case changes <- struct{}{}:
				default:
				}
			})
			if err != nil {
				logger.Warn("tui: prefs watcher stopped", "path", opts.PrefsPath, "error", err)
			}
		}()
	}

	m := New(pref, opts.Palette,
		WithKeyMap(opts.KeyMap),
		WithLogger(logger),
		WithChanges(changes),
	)

	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts.Program...)
	p := tea.NewProgram(m, programOpts...)

	logger.Info("tui: started", "theme", pref.Mode())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	logger.Info("tui: stopped", "tasks", m.widget.Counts().Total)
	return err
}
