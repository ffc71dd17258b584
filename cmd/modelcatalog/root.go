package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chat-api/modelcatalog/internal/config"
	"github.com/chat-api/modelcatalog/pkg/catalog"
	caterrors "github.com/chat-api/modelcatalog/pkg/errors"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "modelcatalog",
		Short: "Query the model categorizer service",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newProvidersCmd())
	cmd.AddCommand(newModelsCmd())
	cmd.AddCommand(newCategorizedCmd())
	cmd.AddCommand(newCapabilitiesCmd())
	cmd.AddCommand(newRegisterCmd())

	return cmd
}

// setupLogger configures the process-wide logrus logger.
func setupLogger(levelStr string) {
	lvl, err := logrus.ParseLevel(levelStr)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// newCatalogClient builds a client from the active configuration.
func newCatalogClient() *catalog.Client {
	return catalog.NewClient(
		catalog.WithBaseURL(activeCfg.Service.BaseURL),
		catalog.WithTimeout(time.Duration(activeCfg.Service.TimeoutSeconds)*time.Second),
		catalog.WithLogger(logrus.StandardLogger()),
	)
}

// reportError prints a diagnostic for a failed operation. The process still
// exits with status zero: failures reaching the service are operational
// conditions, not usage errors.
func reportError(cmd *cobra.Command, err error) {
	var se *caterrors.ServiceError
	if errors.As(err, &se) {
		fmt.Fprintf(cmd.OutOrStdout(), "Error connecting to the model categorizer service: %v\n", err)
		fmt.Fprintf(cmd.OutOrStdout(), "Make sure the service is running at %s.\n", activeCfg.Service.BaseURL)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Unexpected error: %v\n", err)
}
