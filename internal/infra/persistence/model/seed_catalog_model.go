package model

// SeedCatalogModel mirrors the shared 'seed_catalog' table. Position keeps the catalog order.
type SeedCatalogModel struct {
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	Name     string `gorm:"type:varchar(64);not null;uniqueIndex:idx_seed_catalog_name"`
	Count    int    `gorm:"not null"`
	Unlocked bool   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SeedCatalogModel) TableName() string {
	return "seed_catalog"
}
