package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. AccountID equals credentials.id.
type ProfileModel struct {
	AccountID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username                string    `gorm:"type:varchar(64);not null"`
	Mode                    string    `gorm:"type:varchar(32);not null"`
	OnboardingComplete      bool      `gorm:"not null"`
	Theme                   string    `gorm:"type:varchar(32);not null"`
	PlantCapacity           int       `gorm:"not null"`
	CalculatedPlantCapacity int       `gorm:"not null"`
	UsedPlantCapacity       int       `gorm:"not null"`
	Balance                 int       `gorm:"not null"`
	CreatedAt               time.Time `gorm:"not null"`
	LastActive              time.Time `gorm:"not null"`
	LastAtShop              time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
