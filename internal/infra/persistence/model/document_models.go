package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// The category tables keep one row per account with the client-shaped payload in a jsonb column.

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	AccountID uuid.UUID                         `gorm:"type:uuid;primaryKey"`
	Shop      datatypes.JSONType[map[string]any] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// PurchasesModel mirrors the 'purchases' table.
type PurchasesModel struct {
	AccountID uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Purchases datatypes.JSONSlice[map[string]any] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchasesModel) TableName() string {
	return "purchases"
}

// PlantsModel mirrors the 'plants' table.
type PlantsModel struct {
	AccountID uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Plants    datatypes.JSONSlice[map[string]any] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlantsModel) TableName() string {
	return "plants"
}

// InventoryModel mirrors the 'inventories' table. InventoryCount caches the sum of item counts.
type InventoryModel struct {
	AccountID      uuid.UUID                                    `gorm:"type:uuid;primaryKey"`
	Inventory      datatypes.JSONType[map[string]map[string]any] `gorm:"type:jsonb;not null"`
	InventoryCount int                                          `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventories"
}

// GardenModel mirrors the 'gardens' table.
type GardenModel struct {
	AccountID uuid.UUID                         `gorm:"type:uuid;primaryKey"`
	Garden    datatypes.JSONType[map[string]any] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (GardenModel) TableName() string {
	return "gardens"
}

// UpgradesModel mirrors the 'upgrades' table.
type UpgradesModel struct {
	AccountID uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Upgrades  datatypes.JSONSlice[map[string]any] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UpgradesModel) TableName() string {
	return "upgrades"
}

// SuppliesModel mirrors the 'supplies' table.
type SuppliesModel struct {
	AccountID uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Supplies  datatypes.JSONSlice[map[string]any] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SuppliesModel) TableName() string {
	return "supplies"
}

// SeedItem is one element of the seeds jsonb array.
type SeedItem struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Unlocked bool   `json:"unlocked"`
}

// SeedsModel mirrors the 'seeds' table.
type SeedsModel struct {
	AccountID uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Seeds     datatypes.JSONSlice[SeedItem] `gorm:"type:jsonb;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SeedsModel) TableName() string {
	return "seeds"
}
