package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basecamp/tasklist/internal/appctx"
	"github.com/basecamp/tasklist/internal/output"
	"github.com/basecamp/tasklist/internal/theme"
	"github.com/basecamp/tasklist/internal/tui"
)

// NewThemeCmd creates the theme command for reading and changing the
// persisted light/dark preference.
func NewThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark theme",
		Long: `Show or change the light/dark theme.

The theme is saved to prefs.json in the state directory and is picked up
by a running task list immediately.`,
		Args: cobra.NoArgs,
		RunE: runThemeShow,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current theme",
			Args:  cobra.NoArgs,
			RunE:  runThemeShow,
		},
		&cobra.Command{
			Use:       "set [dark|light]",
			Short:     "Set the theme",
			Long:      "Set the theme. Without an argument, prompts for one in an interactive terminal.",
			Args:      cobra.MaximumNArgs(1),
			ValidArgs: []string{string(theme.Dark), string(theme.Light)},
			RunE:      runThemeSet,
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between dark and light",
			Args:  cobra.NoArgs,
			RunE:  runThemeToggle,
		},
	)

	return cmd
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	app := appctx.FromContext(cmd.Context())
	mode := app.Theme.Mode()
	return app.OK(themeData(app),
		output.WithSummary(fmt.Sprintf("Theme is %s", mode)),
		output.WithBreadcrumbs(
			output.Breadcrumb{
				Action:      "toggle",
				Cmd:         "tasklist theme toggle",
				Description: fmt.Sprintf("Switch to %s", mode.Opposite()),
			},
		),
	)
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	app := appctx.FromContext(cmd.Context())

	var raw string
	if len(args) == 1 {
		raw = args[0]
	} else {
		if !app.IsInteractive() {
			return output.ErrUsageHint("Theme required", "Use: tasklist theme set dark|light")
		}
		selected, err := promptTheme(app.Theme.Mode())
		if err != nil {
			return err
		}
		raw = selected
	}

	mode, err := theme.ParseMode(raw)
	if err != nil {
		return output.ErrUsageHint(err.Error(), "Use: tasklist theme set dark|light")
	}

	if err := app.Theme.Set(mode); err != nil {
		return output.ErrStorage("save", err)
	}

	return app.OK(themeData(app), output.WithSummary(fmt.Sprintf("Theme set to %s", mode)))
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	app := appctx.FromContext(cmd.Context())

	mode, err := app.Theme.Toggle()
	if err != nil {
		return output.ErrStorage("save", err)
	}

	return app.OK(themeData(app), output.WithSummary(fmt.Sprintf("Theme switched to %s", mode)))
}

func promptTheme(current theme.Mode) (string, error) {
	options := make([]tui.SelectOption, 0, len(theme.Modes()))
	for _, m := range theme.Modes() {
		options = append(options, tui.SelectOption{
			Value: string(m),
			Label: fmt.Sprintf("%s %s", m.Icon(), m),
		})
	}
	return tui.Select("Choose a theme", string(current), options)
}

func themeData(app *appctx.App) map[string]any {
	mode := app.Theme.Mode()
	return map[string]any{
		"theme":      string(mode),
		"icon":       mode.Icon(),
		"prefs_file": app.Prefs.Path(),
		"state_dir":  app.Config.StateDir,
	}
}
