package postgres

import (
	"context"

	"garden/internal/domain/entity"
	"garden/internal/domain/repository"
	"garden/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// seedCatalogRepository reads and replaces the shared 'seed_catalog' table.
type seedCatalogRepository struct {
	db *gorm.DB
}

// NewSeedCatalogRepository is the constructor for the catalog reader.
func NewSeedCatalogRepository(db *gorm.DB) repository.SeedCatalogRepository {
	return &seedCatalogRepository{db: db}
}

// NewSeedCatalogWriter is the constructor for the operator-side catalog writer.
func NewSeedCatalogWriter(db *gorm.DB) repository.SeedCatalogWriter {
	return &seedCatalogRepository{db: db}
}

// FindAll returns the whole catalog ordered by position. An empty table yields an empty list.
func (repo *seedCatalogRepository) FindAll(ctx context.Context) ([]entity.Seed, error) {
	var rows []model.SeedCatalogModel

	if err := repo.db.WithContext(ctx).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read seed catalog")
	}

	seeds := make([]entity.Seed, 0, len(rows))
	for _, row := range rows {
		seeds = append(seeds, entity.Seed{Name: row.Name, Count: row.Count, Unlocked: row.Unlocked})
	}

	return seeds, nil
}

// ReplaceAll swaps the catalog contents in one transaction.
func (repo *seedCatalogRepository) ReplaceAll(ctx context.Context, seeds []entity.Seed) error {
	if name, dup := entity.DuplicateSeedName(seeds); dup {
		return errors.Errorf("seed %q appears more than once", name)
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.SeedCatalogModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear seed catalog")
		}

		if len(seeds) == 0 {
			return nil
		}

		rows := make([]model.SeedCatalogModel, 0, len(seeds))
		for i, s := range seeds {
			rows = append(rows, model.SeedCatalogModel{Position: i + 1, Name: s.Name, Count: s.Count, Unlocked: s.Unlocked})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return errors.Wrap(err, "failed to insert seed catalog")
		}

		return nil
	})
}
