// Package model holds the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. PostgreSQL generates the id via gen_random_uuid(),
// and that id becomes the account identifier shared by every per-account document.
type CredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_credentials_username"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
