package main

import (
	"context"
	"log/slog"

	"garden/config"
	"garden/internal/domain/repository"
	"garden/internal/infra/catalog"
	"garden/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the seed catalog",
	}

	var file string
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Replace the seed catalog with the contents of a yaml file",
		Long: `Replace the seed catalog with the contents of a yaml file. Usage:

	gardenctl catalog load --file config/seeds.yaml

Accounts registered afterwards start with the new seeds. Existing accounts are not touched.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := catalogPath(file)
			if err != nil {
				return err
			}

			db, logger, closeDB, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			return loadCatalog(cmd.Context(), postgres.NewSeedCatalogWriter(db), path, logger)
		},
	}
	loadCmd.Flags().StringVarP(&file, "file", "f", "", "catalog yaml file (defaults to storage.catalogPath)")

	catalogCmd.AddCommand(loadCmd)

	return catalogCmd
}

// loadCatalog validates the file before anything is written, then swaps the catalog.
func loadCatalog(ctx context.Context, writer repository.SeedCatalogWriter, path string, logger *slog.Logger) error {
	seeds, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	checksum, err := catalog.Checksum(path)
	if err != nil {
		return err
	}

	if err := writer.ReplaceAll(ctx, seeds); err != nil {
		return errors.Wrap(err, "replace seed catalog")
	}

	logger.Info("Seed catalog loaded",
		slog.String("file", path),
		slog.String("sha256", checksum),
		slog.Int("seeds", len(seeds)),
	)

	return nil
}

func catalogPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.Storage.CatalogPath == "" {
		return "", errors.New("no --file given and storage.catalogPath is empty")
	}

	return cfg.Storage.CatalogPath, nil
}
