package postgres

import (
	"testing"
	"time"

	"garden/internal/domain/entity"
	"garden/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProfileMapping(t *testing.T) {
	id := entity.AccountID(uuid.New())
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	profile := entity.NewProfile(id, "bob123", now)
	profile.Balance = 42
	profile.Game.UsedPlantCapacity = 2

	row := fromProfileDomain(id, profile)
	assert.Equal(t, uuid.UUID(id), row.AccountID)
	assert.Equal(t, 2, row.UsedPlantCapacity)

	assert.Equal(t, profile, toProfileDomain(row))
}

func TestSeedsMapping(t *testing.T) {
	id := entity.AccountID(uuid.New())
	seeds := &entity.Seeds{ID: id, Seeds: []entity.Seed{
		{Name: "tomato", Count: 5, Unlocked: true},
		{Name: "pumpkin", Count: 0, Unlocked: false},
	}}

	assert.Equal(t, seeds, toSeedsDomain(fromSeedsDomain(id, seeds)))

	empty := toSeedsDomain(fromSeedsDomain(id, &entity.Seeds{ID: id}))
	require.NotNil(t, empty.Seeds)
	assert.Empty(t, empty.Seeds)
}

func TestInventoryMapping(t *testing.T) {
	id := entity.AccountID(uuid.New())
	inventory := &entity.Inventory{
		ID:             id,
		Inventory:      map[string]entity.Record{"tomato": {"count": float64(3)}},
		InventoryCount: 3,
	}

	assert.Equal(t, inventory, toInventoryDomain(fromInventoryDomain(id, inventory)))
}

func TestRecordListsNeverPersistAsNull(t *testing.T) {
	id := entity.AccountID(uuid.New())

	plants := fromPlantsDomain(id, &entity.Plants{ID: id})
	require.NotNil(t, plants.Plants)
	assert.Empty(t, plants.Plants)

	purchases := toPurchasesDomain(&model.PurchasesModel{AccountID: uuid.UUID(id)})
	require.NotNil(t, purchases.Purchases)
	assert.Empty(t, purchases.Purchases)

	records := []entity.Record{{"id": "p1", "buff": "water"}}
	upgrades := toUpgradesDomain(fromUpgradesDomain(id, &entity.Upgrades{ID: id, Upgrades: records}))
	assert.Equal(t, records, upgrades.Upgrades)
}

func TestObjectDocumentsNeverPersistAsNull(t *testing.T) {
	id := entity.AccountID(uuid.New())

	shop := fromShopDomain(id, &entity.Shop{ID: id})
	assert.NotNil(t, shop.Shop.Data())

	garden := toGardenDomain(&model.GardenModel{AccountID: uuid.UUID(id), Garden: datatypes.NewJSONType[map[string]any](nil)})
	require.NotNil(t, garden.Garden)
	assert.Empty(t, garden.Garden)
}
