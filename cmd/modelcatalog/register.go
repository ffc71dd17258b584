package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var metadataJSON string

	cmd := &cobra.Command{
		Use:   "register <provider> <model>",
		Short: "Register a new model with the service",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var metadata map[string]any
			if metadataJSON != "" {
				if err := json.Unmarshal([]byte(metadataJSON), &metadata); err != nil {
					return fmt.Errorf("invalid --metadata value: %w", err)
				}
			}

			client := newCatalogClient()

			ack, err := client.RegisterModel(cmd.Context(), args[0], args[1], metadata)
			if err != nil {
				reportError(cmd, err)
				return nil
			}

			return printJSON(cmd, ack)
		},
	}

	cmd.Flags().StringVar(&metadataJSON, "metadata", "", "Model metadata as a JSON object")

	return cmd
}
