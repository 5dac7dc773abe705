package commands

import (
	"github.com/spf13/cobra"

	"github.com/basecamp/tasklist/internal/appctx"
	"github.com/basecamp/tasklist/internal/output"
)

// CommandInfo describes a CLI command.
type CommandInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Actions     []string `json:"actions,omitempty"`
}

// commandCatalog returns every command for the catalog.
func commandCatalog() []CommandInfo {
	return []CommandInfo{
		{Name: "tui", Description: "Launch the task list (default)"},
		{Name: "theme", Description: "Show or change the light/dark theme", Actions: []string{"show", "set", "toggle"}},
		{Name: "keys", Description: "Show the task list keybindings"},
		{Name: "config", Description: "Show configuration", Actions: []string{"show"}},
		{Name: "commands", Description: "List all commands"},
		{Name: "version", Description: "Show version"},
	}
}

// NewCommandsCmd creates the commands listing command.
func NewCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List all commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appctx.FromContext(cmd.Context())
			return app.OK(commandCatalog(), output.WithSummary("tasklist commands"))
		},
	}
}
