// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"garden/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no credential matches the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository stores one login identity per account.
type CredentialRepository interface {
	// FindByUsername looks a credential up by its normalized username.
	FindByUsername(ctx context.Context, normalizedUsername string) (*entity.Credential, error)

	// FindByID retrieves a credential by its account identifier.
	FindByID(ctx context.Context, id entity.AccountID) (*entity.Credential, error)

	// Create inserts the credential and assigns its generated account identifier.
	// A duplicate normalized username fails with domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, credential *entity.Credential) error
}
