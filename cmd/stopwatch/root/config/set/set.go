package set

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/wandb/stopwatch/internal/tui"
)

func NewSetCmd(load func() *tui.ConfigManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a preference",
		Long:  `Set a preference that will be persisted in the preferences file.`,
		Example: heredoc.Doc(`
			# Redraw every 20 milliseconds
			$ stopwatch config set refresh-interval-ms 20

			# List the most recent lap first
			$ stopwatch config set lap-order newest_first

			# Stay in the main terminal buffer
			$ stopwatch config set alt-screen false
		`),
		Args:      cobra.ExactArgs(2),
		ValidArgs: tui.ConfigKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			cfg := load()
			if err := cfg.Set(key, value); err != nil {
				return fmt.Errorf("failed to set %s: %w", key, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}
