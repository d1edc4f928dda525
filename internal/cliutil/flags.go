package cliutil

import (
	"github.com/spf13/cobra"
)

// AddOutputFlags registers the --format and --template flags read by
// HandleOutput.
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{.version}}')")
	cmd.Flags().String("format", "json", "Output format. Accepts 'json' or 'yaml'")
}
