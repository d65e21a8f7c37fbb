package main

import (
	"github.com/alpereneser/connectlist-sub003/internal/config"
	"github.com/alpereneser/connectlist-sub003/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root 'connectlist' command and its subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "connectlist",
		Short:         "ConnectList functions API",
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newEmailPreviewCmd(),
	)

	return rootCmd
}

// bootstrap loads the config and builds the application logger.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log, nil
}
