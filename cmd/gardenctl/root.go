package main

import (
	"log/slog"

	"garden/config"
	logs "garden/internal/infra/log"
	"garden/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gardenctl",
		Short:         "Operator tooling for the garden service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newMigrateCmd(), newCatalogCmd())

	return rootCmd
}

// openDatabase loads the config and connects to PostgreSQL without fx.
// The caller closes the returned handle.
func openDatabase() (*gorm.DB, *slog.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return db, logger, closeDB, nil
}
