package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models <provider>",
		Short: "Show the raw model data for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newCatalogClient()

			data, err := client.GetProviderModels(cmd.Context(), args[0])
			if err != nil {
				reportError(cmd, err)
				return nil
			}

			return printJSON(cmd, data)
		},
	}
}

// printJSON re-serializes v with two-space indentation.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		reportError(cmd, err)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
