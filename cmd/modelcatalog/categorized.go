package main

import (
	"github.com/spf13/cobra"

	"github.com/chat-api/modelcatalog/pkg/catalog"
)

func newCategorizedCmd() *cobra.Command {
	var experimental bool

	cmd := &cobra.Command{
		Use:   "categorized",
		Short: "Show all models categorized by provider, family, and type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := newCatalogClient()

			models, err := client.GetCategorizedModels(cmd.Context(), experimental)
			if err != nil {
				reportError(cmd, err)
				return nil
			}

			if activeCfg.Output.Format == "json" {
				return printJSON(cmd, models)
			}
			return catalog.FprintTree(cmd.OutOrStdout(), models, activeCfg.Output.Indent)
		},
	}

	cmd.Flags().BoolVar(&experimental, "experimental", false, "Include experimental models")

	return cmd
}
