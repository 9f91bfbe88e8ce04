package usecase

import (
	"context"
	"time"

	"garden/internal/domain/entity"
)

// UpdateProfileInput lists the profile fields a client may overwrite.
// Nil fields keep their stored value. Username, mode and createdAt never change.
type UpdateProfileInput struct {
	Theme              *string           `json:"theme,omitempty"`
	OnboardingComplete *bool             `json:"onboardingComplete,omitempty"`
	Balance            *int              `json:"balance,omitempty"`
	Game               *entity.GameState `json:"game,omitempty"`
	LastActive         *time.Time        `json:"lastActive,omitempty"`
	LastAtShop         *time.Time        `json:"lastAtShop,omitempty"`
}

// GameDataUsecase reads and updates the per-account category documents.
// Each call is one single-document operation on the caller's own account.
type GameDataUsecase interface {
	GetProfile(ctx context.Context, id entity.AccountID) (*entity.Profile, error)
	UpdateBalance(ctx context.Context, id entity.AccountID, balance int) (*entity.Profile, error)
	IncrementUsedPlantCapacity(ctx context.Context, id entity.AccountID) (*entity.Profile, error)
	UpdateOnboardingStatus(ctx context.Context, id entity.AccountID, complete bool) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, id entity.AccountID, input UpdateProfileInput) (*entity.Profile, error)

	GetSeeds(ctx context.Context, id entity.AccountID) (*entity.Seeds, error)
	DecrementSeed(ctx context.Context, id entity.AccountID, name string) (*entity.Seeds, error)
	ReplaceSeeds(ctx context.Context, id entity.AccountID, seeds []entity.Seed) (*entity.Seeds, error)

	GetInventory(ctx context.Context, id entity.AccountID) (*entity.Inventory, error)
	ReplaceInventory(ctx context.Context, id entity.AccountID, items map[string]entity.Record) (*entity.Inventory, error)

	GetShop(ctx context.Context, id entity.AccountID) (*entity.Shop, error)
	ReplaceShop(ctx context.Context, id entity.AccountID, shop map[string]any) (*entity.Shop, error)

	GetPurchases(ctx context.Context, id entity.AccountID) (*entity.Purchases, error)
	ReplacePurchases(ctx context.Context, id entity.AccountID, purchases []entity.Record) (*entity.Purchases, error)

	GetPlants(ctx context.Context, id entity.AccountID) (*entity.Plants, error)
	AddPlant(ctx context.Context, id entity.AccountID, plant entity.Record) (*entity.Plants, error)
	RemovePlant(ctx context.Context, id entity.AccountID, plantID string) (*entity.Plants, error)
	ReplacePlants(ctx context.Context, id entity.AccountID, plants []entity.Record) (*entity.Plants, error)

	GetUpgrades(ctx context.Context, id entity.AccountID) (*entity.Upgrades, error)
	AddUpgrade(ctx context.Context, id entity.AccountID, upgrade entity.Record) (*entity.Upgrades, error)

	GetSupplies(ctx context.Context, id entity.AccountID) (*entity.Supplies, error)
	AddSupply(ctx context.Context, id entity.AccountID, supply entity.Record) (*entity.Supplies, error)
	RemoveSupply(ctx context.Context, id entity.AccountID, supplyID string) (*entity.Supplies, error)

	GetGarden(ctx context.Context, id entity.AccountID) (*entity.Garden, error)
	ReplaceGarden(ctx context.Context, id entity.AccountID, garden map[string]any) (*entity.Garden, error)
}
