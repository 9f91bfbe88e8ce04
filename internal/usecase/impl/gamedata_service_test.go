package impl

import (
	"context"
	"testing"
	"time"

	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/infra/persistence/memory"
	"garden/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGameDataService(t *testing.T) (usecase.GameDataUsecase, entity.AccountID) {
	t.Helper()

	accounts, store := newAccountHarness(t, nil)
	output, err := accounts.Register(context.Background(), usecase.RegisterInput{Username: "gardener1", Password: "hunter22x"})
	require.NoError(t, err)

	return NewGameDataService(memory.NewTransactionManager(store), newDiscardLogger()), output.AccountID
}

func requireValidationError(t *testing.T, err error) *domainerrors.ValidationError {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	return validationErr
}

func TestGameDataService_UnknownAccount(t *testing.T) {
	srv, _ := createTestGameDataService(t)

	_, err := srv.GetProfile(context.Background(), entity.AccountID(uuid.New()))

	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestGameDataService_UpdateBalance(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	profile, err := srv.UpdateBalance(ctx, id, 125)
	require.NoError(t, err)
	assert.Equal(t, 125, profile.Balance)

	_, err = srv.UpdateBalance(ctx, id, -1)
	requireValidationError(t, err)

	profile, err = srv.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 125, profile.Balance)
}

func TestGameDataService_IncrementUsedPlantCapacity(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	for want := 1; want <= entity.DefaultPlantCapacity; want++ {
		profile, err := srv.IncrementUsedPlantCapacity(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, profile.Game.UsedPlantCapacity)
	}

	_, err := srv.IncrementUsedPlantCapacity(ctx, id)
	requireValidationError(t, err)
}

func TestGameDataService_UpdateProfile(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	theme := "dark"
	done := true
	lastActive := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	profile, err := srv.UpdateProfile(ctx, id, usecase.UpdateProfileInput{
		Theme:              &theme,
		OnboardingComplete: &done,
		LastActive:         &lastActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "dark", profile.Theme)
	assert.True(t, profile.OnboardingComplete)
	assert.True(t, lastActive.Equal(profile.LastActive))
	assert.Equal(t, entity.DefaultBalance, profile.Balance)
	assert.Equal(t, "gardener1", profile.Username)

	_, err = srv.UpdateProfile(ctx, id, usecase.UpdateProfileInput{
		Game: &entity.GameState{PlantCapacity: 2, CalculatedPlantCapacity: 2, UsedPlantCapacity: 3},
	})
	validationErr := requireValidationError(t, err)
	assert.Contains(t, validationErr.Items, "Used plant capacity cannot exceed plant capacity")
}

func TestGameDataService_UpdateOnboardingStatus(t *testing.T) {
	srv, id := createTestGameDataService(t)

	profile, err := srv.UpdateOnboardingStatus(context.Background(), id, true)

	require.NoError(t, err)
	assert.True(t, profile.OnboardingComplete)
}

func TestGameDataService_DecrementSeed(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	seeds, err := srv.DecrementSeed(ctx, id, "carrot")
	require.NoError(t, err)
	assert.Equal(t, 2, seeds.Seeds[seeds.Find("carrot")].Count)

	_, err = srv.DecrementSeed(ctx, id, "pumpkin")
	requireValidationError(t, err)

	_, err = srv.DecrementSeed(ctx, id, "orchid")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestGameDataService_ReplaceSeeds(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		seeds   []entity.Seed
		wantErr bool
	}{
		{name: "valid", seeds: []entity.Seed{{Name: "basil", Count: 2, Unlocked: true}}},
		{name: "empty", seeds: nil, wantErr: true},
		{name: "duplicate", seeds: []entity.Seed{{Name: "basil"}, {Name: "basil"}}, wantErr: true},
		{name: "negative", seeds: []entity.Seed{{Name: "basil", Count: -1}}, wantErr: true},
		{name: "unnamed", seeds: []entity.Seed{{Count: 1}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seeds, err := srv.ReplaceSeeds(ctx, id, tt.seeds)
			if tt.wantErr {
				requireValidationError(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.seeds, seeds.Seeds)
		})
	}
}

func TestGameDataService_ReplaceInventoryRecomputesCount(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	inv, err := srv.ReplaceInventory(ctx, id, map[string]entity.Record{
		"tomato": {"count": 4},
		"carrot": {"count": 2.0, "quality": "gold"},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, inv.InventoryCount)

	stored, err := srv.GetInventory(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.InventoryCount)
	assert.Len(t, stored.Inventory, 2)

	_, err = srv.ReplaceInventory(ctx, id, map[string]entity.Record{"tomato": {"count": -3}})
	requireValidationError(t, err)
}

func TestGameDataService_Plants(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	plants, err := srv.AddPlant(ctx, id, entity.Record{"id": "p1", "type": "tomato"})
	require.NoError(t, err)
	assert.Len(t, plants.Plants, 1)

	_, err = srv.AddPlant(ctx, id, entity.Record{"id": "p1"})
	requireValidationError(t, err)

	_, err = srv.AddPlant(ctx, id, entity.Record{"type": "carrot"})
	requireValidationError(t, err)

	plants, err = srv.RemovePlant(ctx, id, "p1")
	require.NoError(t, err)
	assert.Empty(t, plants.Plants)

	_, err = srv.RemovePlant(ctx, id, "p1")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	_, err = srv.ReplacePlants(ctx, id, []entity.Record{{"id": "a"}, {"id": "a"}})
	requireValidationError(t, err)
}

func TestGameDataService_Supplies(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	supplies, err := srv.AddSupply(ctx, id, entity.Record{"id": "fertilizer"})
	require.NoError(t, err)
	assert.Len(t, supplies.Supplies, 1)

	_, err = srv.AddSupply(ctx, id, entity.Record{"id": "fertilizer"})
	requireValidationError(t, err)

	supplies, err = srv.RemoveSupply(ctx, id, "fertilizer")
	require.NoError(t, err)
	assert.Empty(t, supplies.Supplies)
}

func TestGameDataService_ReplaceWholeDocuments(t *testing.T) {
	srv, id := createTestGameDataService(t)
	ctx := context.Background()

	shop, err := srv.ReplaceShop(ctx, id, map[string]any{"rotation": "spring"})
	require.NoError(t, err)
	assert.Equal(t, "spring", shop.Shop["rotation"])

	garden, err := srv.ReplaceGarden(ctx, id, nil)
	require.NoError(t, err)
	assert.NotNil(t, garden.Garden)

	purchases, err := srv.ReplacePurchases(ctx, id, []entity.Record{{"item": "hoe"}})
	require.NoError(t, err)
	assert.Len(t, purchases.Purchases, 1)

	upgrades, err := srv.AddUpgrade(ctx, id, entity.Record{"id": "greenhouse"})
	require.NoError(t, err)
	assert.Len(t, upgrades.Upgrades, 1)

	_, err = srv.AddUpgrade(ctx, id, entity.Record{})
	requireValidationError(t, err)
}
