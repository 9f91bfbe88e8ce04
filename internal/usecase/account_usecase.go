// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"garden/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the session token issued after registration or login.
type AuthOutput struct {
	Token     string
	AccountID entity.AccountID
	Username  string
}

// AccountUsecase defines account provisioning and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register validates the credentials, creates the credential, the profile and
	// the eight category documents in one atomic scope, then issues a token.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
