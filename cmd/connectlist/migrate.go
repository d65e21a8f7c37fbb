package main

import (
	"github.com/alpereneser/connectlist-sub003/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var target int32

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Long:  "Migrates the schema to --to. The default of -1 means the latest version, 0 rolls everything back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			return database.MigrateTo(cmd.Context(), &log, cfg, target)
		},
	}

	cmd.Flags().Int32Var(&target, "to", -1, "target schema version")

	return cmd
}
