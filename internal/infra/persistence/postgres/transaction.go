package postgres

import (
	"context"
	"fmt"

	"garden/internal/domain/entity"
	"garden/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one GORM transaction.
// database/sql serializes statements on the transaction's connection, so the
// repositories may be called from several goroutines inside the scope.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

func (f *gormRepositoryFactory) SeedCatalogRepo() repository.SeedCatalogRepository {
	return NewSeedCatalogRepository(f.tx)
}

func (f *gormRepositoryFactory) ProfileRepo() repository.DocumentRepository[entity.Profile] {
	return newDocumentRepository(f.tx, entity.CategoryProfile, toProfileDomain, fromProfileDomain)
}

func (f *gormRepositoryFactory) ShopRepo() repository.DocumentRepository[entity.Shop] {
	return newDocumentRepository(f.tx, entity.CategoryShop, toShopDomain, fromShopDomain)
}

func (f *gormRepositoryFactory) PurchasesRepo() repository.DocumentRepository[entity.Purchases] {
	return newDocumentRepository(f.tx, entity.CategoryPurchases, toPurchasesDomain, fromPurchasesDomain)
}

func (f *gormRepositoryFactory) PlantsRepo() repository.DocumentRepository[entity.Plants] {
	return newDocumentRepository(f.tx, entity.CategoryPlants, toPlantsDomain, fromPlantsDomain)
}

func (f *gormRepositoryFactory) InventoryRepo() repository.DocumentRepository[entity.Inventory] {
	return newDocumentRepository(f.tx, entity.CategoryInventory, toInventoryDomain, fromInventoryDomain)
}

func (f *gormRepositoryFactory) GardenRepo() repository.DocumentRepository[entity.Garden] {
	return newDocumentRepository(f.tx, entity.CategoryGarden, toGardenDomain, fromGardenDomain)
}

func (f *gormRepositoryFactory) UpgradesRepo() repository.DocumentRepository[entity.Upgrades] {
	return newDocumentRepository(f.tx, entity.CategoryUpgrades, toUpgradesDomain, fromUpgradesDomain)
}

func (f *gormRepositoryFactory) SuppliesRepo() repository.DocumentRepository[entity.Supplies] {
	return newDocumentRepository(f.tx, entity.CategorySupplies, toSuppliesDomain, fromSuppliesDomain)
}

func (f *gormRepositoryFactory) SeedsRepo() repository.DocumentRepository[entity.Seeds] {
	return newDocumentRepository(f.tx, entity.CategorySeeds, toSeedsDomain, fromSeedsDomain)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
