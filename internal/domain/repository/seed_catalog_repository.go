package repository

import (
	"context"

	"garden/internal/domain/entity"
)

// SeedCatalogRepository reads the shared, read-only default seed definitions.
type SeedCatalogRepository interface {
	// FindAll returns the whole catalog in its stored order.
	FindAll(ctx context.Context) ([]entity.Seed, error)
}

// SeedCatalogWriter replaces the catalog. Only operator tooling uses it; account flows never do.
type SeedCatalogWriter interface {
	ReplaceAll(ctx context.Context, seeds []entity.Seed) error
}
