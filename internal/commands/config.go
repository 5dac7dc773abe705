package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basecamp/tasklist/internal/appctx"
	"github.com/basecamp/tasklist/internal/config"
	"github.com/basecamp/tasklist/internal/output"
)

// NewConfigCmd creates the config command for inspecting configuration.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long: `Show the effective tasklist configuration.

Configuration is loaded from multiple sources with the following precedence:
  flags > env > local > global > defaults

Config locations:
  - Global: ~/.config/tasklist/config.yaml (or config.json)
  - Local:  .tasklist/config.yaml (or config.json)`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  "Display the current effective configuration with source information.",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	app := appctx.FromContext(cmd.Context())
	cfg := app.Config

	keys := []struct {
		key     string
		value   string
		include bool
	}{
		{"state_dir", cfg.StateDir, true},
		{"theme_file", cfg.ThemeFile, cfg.ThemeFile != ""},
		{"log_file", cfg.ResolvedLogFile(), true},
		{"format", cfg.Format, cfg.Format != ""},
		{"verbose", fmt.Sprintf("%d", cfg.VerboseLevel()), cfg.Verbose != nil},
	}

	configData := make(map[string]any)
	for _, k := range keys {
		if !k.include {
			continue
		}
		source := cfg.Sources[k.key]
		if source == "" {
			source = string(config.SourceDefault)
		}
		configData[k.key] = map[string]any{
			"value":  k.value,
			"source": source,
		}
	}

	return app.OK(configData,
		output.WithSummary("Effective configuration"),
		output.WithBreadcrumbs(
			output.Breadcrumb{
				Action:      "global",
				Cmd:         "$EDITOR " + config.GlobalConfigDir() + "/config.yaml",
				Description: "Edit global config",
			},
		),
	)
}
