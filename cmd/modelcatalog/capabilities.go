package main

import (
	"github.com/spf13/cobra"
)

func newCapabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities <provider> <model>",
		Short: "Show capabilities and metadata for a specific model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newCatalogClient()

			caps, err := client.GetModelCapabilities(cmd.Context(), args[0], args[1])
			if err != nil {
				reportError(cmd, err)
				return nil
			}

			return printJSON(cmd, caps)
		},
	}
}
