package show

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/wandb/stopwatch/internal/cliutil"
	"github.com/wandb/wandb/stopwatch/internal/tui"
)

func NewShowCmd(load func() *tui.ConfigManager) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the stored preferences",
		Example: heredoc.Doc(`
			$ stopwatch config show
			$ stopwatch config show --format yaml
			$ stopwatch config show --template '{{.LapOrder}}'
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.HandleOutput(cmd, load().Snapshot())
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
