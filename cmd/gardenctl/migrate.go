package main

import (
	"log/slog"
	"time"

	"garden/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, logger, closeDB, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			start := time.Now()
			changed, err := postgres.MigrateUp(db)
			if err != nil {
				return err
			}

			if !changed {
				logger.Info("Schema already up to date")

				return nil
			}
			logger.Info("Migrations applied", slog.Duration("took", time.Since(start)))

			return nil
		},
	})

	return migrateCmd
}
