package postgres

import (
	"garden/internal/domain/entity"
	"garden/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		ID:                 entity.AccountID(data.AccountID),
		Username:           data.Username,
		Mode:               data.Mode,
		OnboardingComplete: data.OnboardingComplete,
		Theme:              data.Theme,
		Game: entity.GameState{
			PlantCapacity:           data.PlantCapacity,
			CalculatedPlantCapacity: data.CalculatedPlantCapacity,
			UsedPlantCapacity:       data.UsedPlantCapacity,
		},
		Balance:    data.Balance,
		CreatedAt:  data.CreatedAt,
		LastActive: data.LastActive,
		LastAtShop: data.LastAtShop,
	}
}

func fromProfileDomain(id entity.AccountID, data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		AccountID:               uuid.UUID(id),
		Username:                data.Username,
		Mode:                    data.Mode,
		OnboardingComplete:      data.OnboardingComplete,
		Theme:                   data.Theme,
		PlantCapacity:           data.Game.PlantCapacity,
		CalculatedPlantCapacity: data.Game.CalculatedPlantCapacity,
		UsedPlantCapacity:       data.Game.UsedPlantCapacity,
		Balance:                 data.Balance,
		CreatedAt:               data.CreatedAt,
		LastActive:              data.LastActive,
		LastAtShop:              data.LastAtShop,
	}
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	return &entity.Shop{ID: entity.AccountID(data.AccountID), Shop: nonNilObject(data.Shop.Data())}
}

func fromShopDomain(id entity.AccountID, data *entity.Shop) *model.ShopModel {
	return &model.ShopModel{AccountID: uuid.UUID(id), Shop: datatypes.NewJSONType(nonNilObject(data.Shop))}
}

func toPurchasesDomain(data *model.PurchasesModel) *entity.Purchases {
	return &entity.Purchases{ID: entity.AccountID(data.AccountID), Purchases: toRecords(data.Purchases)}
}

func fromPurchasesDomain(id entity.AccountID, data *entity.Purchases) *model.PurchasesModel {
	return &model.PurchasesModel{AccountID: uuid.UUID(id), Purchases: fromRecords(data.Purchases)}
}

func toPlantsDomain(data *model.PlantsModel) *entity.Plants {
	return &entity.Plants{ID: entity.AccountID(data.AccountID), Plants: toRecords(data.Plants)}
}

func fromPlantsDomain(id entity.AccountID, data *entity.Plants) *model.PlantsModel {
	return &model.PlantsModel{AccountID: uuid.UUID(id), Plants: fromRecords(data.Plants)}
}

func toInventoryDomain(data *model.InventoryModel) *entity.Inventory {
	raw := data.Inventory.Data()
	items := make(map[string]entity.Record, len(raw))
	for name, item := range raw {
		items[name] = entity.Record(item)
	}

	return &entity.Inventory{
		ID:             entity.AccountID(data.AccountID),
		Inventory:      items,
		InventoryCount: data.InventoryCount,
	}
}

func fromInventoryDomain(id entity.AccountID, data *entity.Inventory) *model.InventoryModel {
	items := make(map[string]map[string]any, len(data.Inventory))
	for name, item := range data.Inventory {
		items[name] = item
	}

	return &model.InventoryModel{
		AccountID:      uuid.UUID(id),
		Inventory:      datatypes.NewJSONType(items),
		InventoryCount: data.InventoryCount,
	}
}

func toGardenDomain(data *model.GardenModel) *entity.Garden {
	return &entity.Garden{ID: entity.AccountID(data.AccountID), Garden: nonNilObject(data.Garden.Data())}
}

func fromGardenDomain(id entity.AccountID, data *entity.Garden) *model.GardenModel {
	return &model.GardenModel{AccountID: uuid.UUID(id), Garden: datatypes.NewJSONType(nonNilObject(data.Garden))}
}

func toUpgradesDomain(data *model.UpgradesModel) *entity.Upgrades {
	return &entity.Upgrades{ID: entity.AccountID(data.AccountID), Upgrades: toRecords(data.Upgrades)}
}

func fromUpgradesDomain(id entity.AccountID, data *entity.Upgrades) *model.UpgradesModel {
	return &model.UpgradesModel{AccountID: uuid.UUID(id), Upgrades: fromRecords(data.Upgrades)}
}

func toSuppliesDomain(data *model.SuppliesModel) *entity.Supplies {
	return &entity.Supplies{ID: entity.AccountID(data.AccountID), Supplies: toRecords(data.Supplies)}
}

func fromSuppliesDomain(id entity.AccountID, data *entity.Supplies) *model.SuppliesModel {
	return &model.SuppliesModel{AccountID: uuid.UUID(id), Supplies: fromRecords(data.Supplies)}
}

func toSeedsDomain(data *model.SeedsModel) *entity.Seeds {
	seeds := make([]entity.Seed, 0, len(data.Seeds))
	for _, s := range data.Seeds {
		seeds = append(seeds, entity.Seed{Name: s.Name, Count: s.Count, Unlocked: s.Unlocked})
	}

	return &entity.Seeds{ID: entity.AccountID(data.AccountID), Seeds: seeds}
}

func fromSeedsDomain(id entity.AccountID, data *entity.Seeds) *model.SeedsModel {
	items := make(datatypes.JSONSlice[model.SeedItem], 0, len(data.Seeds))
	for _, s := range data.Seeds {
		items = append(items, model.SeedItem{Name: s.Name, Count: s.Count, Unlocked: s.Unlocked})
	}

	return &model.SeedsModel{AccountID: uuid.UUID(id), Seeds: items}
}

// toRecords and fromRecords never return nil so empty lists persist as [] rather than null.
func toRecords(items datatypes.JSONSlice[map[string]any]) []entity.Record {
	records := make([]entity.Record, 0, len(items))
	for _, item := range items {
		records = append(records, entity.Record(item))
	}

	return records
}

func fromRecords(records []entity.Record) datatypes.JSONSlice[map[string]any] {
	items := make(datatypes.JSONSlice[map[string]any], 0, len(records))
	for _, r := range records {
		items = append(items, r)
	}

	return items
}

func nonNilObject(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
