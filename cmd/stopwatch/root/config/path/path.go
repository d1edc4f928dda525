package path

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wandb/wandb/stopwatch/internal/tui"
)

func NewPathCmd(load func() *tui.ConfigManager) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the preferences file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), load().Path())
			return nil
		},
	}
}
