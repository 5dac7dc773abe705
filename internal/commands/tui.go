package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basecamp/tasklist/internal/appctx"
	"github.com/basecamp/tasklist/internal/output"
	tuiapp "github.com/basecamp/tasklist/internal/tui/app"
)

// AnnotationTUI marks commands that take over the terminal. Their log goes
// to the log file instead of stderr.
const AnnotationTUI = "tasklist/tui"

// NewTUICmd creates the tui command.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Launch the task list",
		Long:        "Launch the full-screen task list. Tasks live in memory and are gone when you quit; only the theme is saved.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{AnnotationTUI: "true"},
		RunE:        RunTUI,
	}
}

// RunTUI launches the full-screen task list.
func RunTUI(cmd *cobra.Command, args []string) error {
	app := appctx.FromContext(cmd.Context())
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !app.IsInteractive() {
		return output.ErrUsageHint("tasklist requires an interactive terminal",
			"Use `tasklist theme` to read or change the theme from scripts")
	}

	return tuiapp.Run(cmd.Context(), app.Theme, tuiapp.RunOptions{
		Palette:   app.Palette,
		KeyMap:    loadKeyMap(app),
		Logger:    app.Logger,
		PrefsPath: app.Prefs.Path(),
	})
}

// loadKeyMap returns the default keybindings with the user's overrides
// applied. A broken overrides file is logged and ignored.
func loadKeyMap(app *appctx.App) tuiapp.KeyMap {
	km := tuiapp.DefaultKeyMap()
	path := tuiapp.KeyOverridesPath()
	overrides, err := tuiapp.LoadKeyOverrides(path)
	if err != nil {
		app.Logger.Warn("keys: ignoring overrides", "path", path, "error", err)
		return km
	}
	tuiapp.ApplyOverrides(&km, overrides)
	return km
}
