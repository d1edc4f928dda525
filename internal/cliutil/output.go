package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// HandleOutput writes result to the command's output according to the
// --template or --format flag.
func HandleOutput(cmd *cobra.Command, result any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte
	var err error

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case "json", "":
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (valid formats: json, yaml)", formatFlag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
