package cli

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/basecamp/tasklist/internal/appctx"
	"github.com/basecamp/tasklist/internal/commands"
	"github.com/basecamp/tasklist/internal/config"
	"github.com/basecamp/tasklist/internal/output"
	"github.com/basecamp/tasklist/internal/tui"
	"github.com/basecamp/tasklist/internal/version"
)

// NewRootCmd creates the root cobra command. Running it without a
// subcommand launches the task list.
func NewRootCmd() *cobra.Command {
	var flags appctx.GlobalFlags

	cmd := &cobra.Command{
		Use:           "tasklist",
		Short:         "A terminal task list with a saved light/dark theme",
		Long:          "tasklist is a full-screen terminal task list. Add, edit, complete, filter, and search tasks; the light/dark theme is remembered between runs.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Annotations:   map[string]string{commands.AnnotationTUI: "true"},
		RunE:          commands.RunTUI,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip setup for help and version commands
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(config.FlagOverrides{
				StateDir:  flags.StateDir,
				ThemeFile: flags.ThemeFile,
				LogFile:   flags.LogFile,
			})
			if err != nil {
				return output.ErrConfig(err)
			}

			target := appctx.LogToStderr
			if cmd.Annotations[commands.AnnotationTUI] == "true" {
				target = appctx.LogToFile
			}

			app := appctx.NewApp(cfg, flags, target)
			cmd.SetContext(appctx.WithApp(cmd.Context(), app))
			return nil
		},
	}

	// Allow flags anywhere in the command line
	cmd.Flags().SetInterspersed(true)
	cmd.PersistentFlags().SetInterspersed(true)

	// Output format flags
	cmd.PersistentFlags().BoolVarP(&flags.JSON, "json", "j", false, "Output as JSON")
	cmd.PersistentFlags().BoolVar(&flags.Styled, "styled", false, "Force styled output (ANSI colors)")

	// Location flags
	cmd.PersistentFlags().StringVar(&flags.StateDir, "state-dir", "", "Directory holding prefs.json")
	cmd.PersistentFlags().StringVar(&flags.ThemeFile, "theme-file", "", "colors.toml palette file")
	cmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "Debug log file for the task list")

	// Behavior flags
	cmd.PersistentFlags().CountVarP(&flags.Verbose, "verbose", "v", "Verbose logging (-v for info, -vv for debug)")

	cmd.AddCommand(
		commands.NewTUICmd(),
		commands.NewThemeCmd(),
		commands.NewKeysCmd(),
		commands.NewConfigCmd(),
		commands.NewCommandsCmd(),
		commands.NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command and exits with the error's exit code.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)

	// Use ExecuteC to get the executed command (for correct context access)
	executedCmd, err := cmd.ExecuteContextC(ctx)

	var app *appctx.App
	if executedCmd != nil {
		app = appctx.FromContext(executedCmd.Context())
	}
	if app != nil {
		defer func() { _ = app.Close() }()
	}

	if err == nil {
		return output.ExitOK
	}

	err = transformCobraError(err)
	e := output.AsError(err)

	if app != nil {
		app.Logger.Debug("command failed", "command", executedCmd.CommandPath(), "code", e.Code, "error", err)
		_ = app.Err(err)
		return e.ExitCode()
	}

	// Fallback: output error directly (app not available, e.g., during setup)
	pf := cmd.PersistentFlags()
	format := output.FormatAuto // Default to auto (TTY → styled, non-TTY → JSON)
	if styled, _ := pf.GetBool("styled"); styled {
		format = output.FormatStyled
	}
	if jsonFlag, _ := pf.GetBool("json"); jsonFlag {
		format = output.FormatJSON
	}

	writer := output.New(output.Options{
		Format:  format,
		Writer:  os.Stdout,
		Palette: tui.ResolveTheme(""),
	})
	_ = writer.Err(err)

	return e.ExitCode()
}

var shorthandFlagRe = regexp.MustCompile(`unknown shorthand flag: '.' in (-\w)`)

// transformCobraError turns Cobra's flag and argument errors into usage
// errors with consistent messages.
func transformCobraError(err error) error {
	msg := err.Error()

	// "flag needs an argument: --FLAG" → "--FLAG requires a value"
	if strings.HasPrefix(msg, "flag needs an argument: ") {
		flag := strings.TrimPrefix(msg, "flag needs an argument: ")
		return output.ErrUsage(flag + " requires a value")
	}

	// "unknown flag: --FLAG" → "Unknown option: --FLAG"
	if strings.HasPrefix(msg, "unknown flag: ") {
		flag := strings.TrimPrefix(msg, "unknown flag: ")
		return output.ErrUsage("Unknown option: " + flag)
	}

	// "unknown shorthand flag: 'X' in -X" → "Unknown option: -X"
	if strings.HasPrefix(msg, "unknown shorthand flag: ") {
		if matches := shorthandFlagRe.FindStringSubmatch(msg); len(matches) > 1 {
			return output.ErrUsage("Unknown option: " + matches[1])
		}
	}

	// "unknown command "x" for "tasklist"" → usage error with a hint
	if strings.HasPrefix(msg, "unknown command ") {
		return output.ErrUsageHint(msg, "Run tasklist commands to list commands")
	}

	if strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "accepts at most") ||
		strings.Contains(msg, "accepts 0 arg(s)") {
		return output.ErrUsage(msg)
	}

	return err
}
