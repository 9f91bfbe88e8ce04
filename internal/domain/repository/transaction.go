package repository

import (
	"context"

	"garden/internal/domain/entity"
)

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within one atomic scope.
	// If fn returns an error the scope is rolled back and none of its writes become visible.
	// Otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to a single atomic scope.
// Repositories may be used from several goroutines inside that scope.
type RepositoryFactory interface {
	CredentialRepo() CredentialRepository
	SeedCatalogRepo() SeedCatalogRepository

	ProfileRepo() DocumentRepository[entity.Profile]
	ShopRepo() DocumentRepository[entity.Shop]
	PurchasesRepo() DocumentRepository[entity.Purchases]
	PlantsRepo() DocumentRepository[entity.Plants]
	InventoryRepo() DocumentRepository[entity.Inventory]
	GardenRepo() DocumentRepository[entity.Garden]
	UpgradesRepo() DocumentRepository[entity.Upgrades]
	SuppliesRepo() DocumentRepository[entity.Supplies]
	SeedsRepo() DocumentRepository[entity.Seeds]
}
