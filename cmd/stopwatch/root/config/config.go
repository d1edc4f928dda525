package config

import (
	"github.com/spf13/cobra"

	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root/config/path"
	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root/config/set"
	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root/config/show"
	"github.com/wandb/wandb/stopwatch/internal/tui"
)

func NewConfigCmd(load func() *tui.ConfigManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Preferences commands",
		Long:  `Commands for viewing and changing the stopwatch preferences.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		set.NewSetCmd(load),
		show.NewShowCmd(load),
		path.NewPathCmd(load),
	)

	return cmd
}
