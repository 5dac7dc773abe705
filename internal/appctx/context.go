// Package appctx provides application context helpers.
package appctx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"

	"github.com/basecamp/tasklist/internal/config"
	"github.com/basecamp/tasklist/internal/output"
	"github.com/basecamp/tasklist/internal/prefs"
	"github.com/basecamp/tasklist/internal/theme"
	"github.com/basecamp/tasklist/internal/tui"
)

// contextKey is a private type for context keys.
type contextKey string

const appKey contextKey = "app"

// App holds the shared application context for all commands.
type App struct {
	Config  *config.Config
	Prefs   *prefs.FileStore
	Theme   *theme.Preference
	Palette tui.Theme
	Logger  *slog.Logger
	Output  *output.Writer

	// Flags holds the global flag values
	Flags GlobalFlags

	logFile io.Closer
}

// GlobalFlags holds values for global CLI flags.
type GlobalFlags struct {
	// Output format flags
	JSON   bool
	Styled bool // Force ANSI styled output (even when piped)

	// Location flags
	StateDir  string
	ThemeFile string
	LogFile   string

	// Behavior flags
	Verbose int // 0=off, 1=info, 2=debug (stacks with -v -v or -vv)
}

// LogTarget selects where the debug log goes.
type LogTarget int

const (
	// LogToStderr is for commands that print and exit.
	LogToStderr LogTarget = iota
	// LogToFile is for the TUI, which owns the terminal.
	LogToFile
)

// NewApp creates a new App with the given configuration. The theme
// preference is loaded from <state_dir>/prefs.json; an unreadable store
// falls back to the default mode and never fails.
func NewApp(cfg *config.Config, flags GlobalFlags, target LogTarget) *App {
	app := &App{
		Config:  cfg,
		Flags:   flags,
		Prefs:   prefs.NewFileStore(cfg.StateDir),
		Palette: tui.ResolveTheme(cfg.ThemeFile),
	}

	level := max(flags.Verbose, cfg.VerboseLevel())
	app.Logger = app.openLogger(level, target)

	app.Theme = theme.Load(app.Prefs, app.Logger)

	format := output.ParseFormat(cfg.Format)
	if flags.JSON {
		format = output.FormatJSON
	} else if flags.Styled {
		format = output.FormatStyled
	}
	app.Output = output.New(output.Options{
		Format:  format,
		Writer:  os.Stdout,
		Palette: app.Palette,
		Mode:    app.Theme.Mode(),
	})
	app.Theme.OnChange(func(m theme.Mode) { app.Output.SetMode(m) })

	app.Logger.Debug("app: ready",
		"state_dir", cfg.StateDir,
		"state_dir_source", cfg.Sources["state_dir"],
		"theme", app.Theme.Mode(),
	)
	return app
}

func (a *App) openLogger(level int, target LogTarget) *slog.Logger {
	if level <= 0 {
		return slog.New(slog.DiscardHandler)
	}
	if target == LogToStderr {
		return NewLogger(os.Stderr, level)
	}

	path := a.Config.ResolvedLogFile()
	f, err := openLogFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v\n", path, err)
		return slog.New(slog.DiscardHandler)
	}
	a.logFile = f
	return NewLogger(f, level)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // G304: Path from trusted config
}

// NewLogger returns a text logger for a verbosity level: 1 logs info and
// above, 2 and higher logs debug. Level 0 discards everything.
func NewLogger(w io.Writer, level int) *slog.Logger {
	if level <= 0 {
		return slog.New(slog.DiscardHandler)
	}
	lvl := slog.LevelInfo
	if level >= 2 {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// OK outputs a success response.
func (a *App) OK(data any, opts ...output.ResponseOption) error {
	return a.Output.OK(data, opts...)
}

// Err outputs an error response.
func (a *App) Err(err error) error {
	return a.Output.Err(err)
}

// IsInteractive returns true if the terminal supports interactive TUI.
func (a *App) IsInteractive() bool {
	if a.Flags.JSON {
		return false
	}
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(f.Fd())
}

// WithApp stores the app in the context.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// FromContext retrieves the app from the context.
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(appKey).(*App)
	return app
}
