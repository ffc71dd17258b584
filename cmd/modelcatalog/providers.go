package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List all providers known to the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newCatalogClient()

			providers, err := client.ListProviders(cmd.Context())
			if err != nil {
				reportError(cmd, err)
				return nil
			}

			for _, provider := range providers {
				fmt.Fprintln(cmd.OutOrStdout(), provider)
			}
			return nil
		},
	}
}
