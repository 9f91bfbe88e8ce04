package impl

import (
	"context"

	"garden/internal/domain/entity"
	"garden/internal/domain/repository"
	"garden/internal/errors"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// documentInitializer writes the profile and then the eight category documents of a new account.
type documentInitializer struct {
	fanOutLimit int
}

func newDocumentInitializer(fanOutLimit int) *documentInitializer {
	if fanOutLimit <= 0 {
		fanOutLimit = len(entity.InitializedCategories)
	}

	return &documentInitializer{fanOutLimit: fanOutLimit}
}

type documentInsert struct {
	category entity.Category
	insert   func(ctx context.Context) error
}

// Initialize inserts the profile, then issues the category inserts concurrently.
// Every insert runs to completion before the outcome is decided; all failures are reported together.
func (i *documentInitializer) Initialize(ctx context.Context, repoFactory repository.RepositoryFactory, docs *entity.AccountDocuments) error {
	id := docs.Profile.ID

	if err := repoFactory.ProfileRepo().Insert(ctx, id, docs.Profile); err != nil {
		return errors.Wrapf(err, "insert %s document", entity.CategoryProfile)
	}

	inserts := []documentInsert{
		{entity.CategoryShop, func(ctx context.Context) error { return repoFactory.ShopRepo().Insert(ctx, id, docs.Shop) }},
		{entity.CategoryPurchases, func(ctx context.Context) error { return repoFactory.PurchasesRepo().Insert(ctx, id, docs.Purchases) }},
		{entity.CategoryPlants, func(ctx context.Context) error { return repoFactory.PlantsRepo().Insert(ctx, id, docs.Plants) }},
		{entity.CategoryInventory, func(ctx context.Context) error { return repoFactory.InventoryRepo().Insert(ctx, id, docs.Inventory) }},
		{entity.CategoryGarden, func(ctx context.Context) error { return repoFactory.GardenRepo().Insert(ctx, id, docs.Garden) }},
		{entity.CategoryUpgrades, func(ctx context.Context) error { return repoFactory.UpgradesRepo().Insert(ctx, id, docs.Upgrades) }},
		{entity.CategorySupplies, func(ctx context.Context) error { return repoFactory.SuppliesRepo().Insert(ctx, id, docs.Supplies) }},
		{entity.CategorySeeds, func(ctx context.Context) error { return repoFactory.SeedsRepo().Insert(ctx, id, docs.Seeds) }},
	}

	// A plain Group, not WithContext: one failure must not cancel the siblings.
	failures := make([]error, len(inserts))
	var group errgroup.Group
	group.SetLimit(i.fanOutLimit)

	for idx, ins := range inserts {
		group.Go(func() error {
			if err := ins.insert(ctx); err != nil {
				failures[idx] = errors.Wrapf(err, "insert %s document", ins.category)
			}

			return nil
		})
	}
	_ = group.Wait()

	return multierr.Combine(failures...)
}
