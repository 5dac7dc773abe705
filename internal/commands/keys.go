package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/basecamp/tasklist/internal/appctx"
	"github.com/basecamp/tasklist/internal/output"
	"github.com/basecamp/tasklist/internal/richtext"
)

// KeyInfo describes one keybinding.
type KeyInfo struct {
	Keys   string `json:"keys"`
	Action string `json:"action"`
}

// NewKeysCmd creates the keys command, which prints the keybinding reference.
func NewKeysCmd() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the task list keybindings",
		Long:  "Show the task list keybindings, including overrides from keybindings.json.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appctx.FromContext(cmd.Context())
			rows := loadKeyMap(app).Reference()
			md := keysMarkdown(rows)

			if markdown {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			if !app.Flags.JSON && (app.Flags.Styled || appctx.IsTerminal(os.Stdout)) {
				width := richtext.DefaultWidth
				if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
					width = w
				}
				out, err := richtext.RenderMarkdownWithWidth(md, app.Theme.Mode(), width)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}

			infos := make([]KeyInfo, len(rows))
			for i, r := range rows {
				infos[i] = KeyInfo{Keys: r[0], Action: r[1]}
			}
			return app.OK(infos, output.WithSummary("Task list keybindings"))
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print the reference as Markdown source")

	return cmd
}

func keysMarkdown(rows [][2]string) string {
	return "# Task list keys\n\n" + richtext.Table([2]string{"Keys", "Action"}, rows)
}
