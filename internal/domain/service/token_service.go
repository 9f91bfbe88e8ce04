package service

import (
	"garden/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by a session token. Downstream endpoints trust
// AccountID and Username without another lookup.
type Claims struct {
	AccountID entity.AccountID `json:"userId"`
	Username  string           `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-boxed session tokens.
type TokenService interface {
	// GenerateToken signs a session token for the account.
	GenerateToken(id entity.AccountID, username string) (string, error)

	// ValidateToken parses the token and checks signature and expiry.
	ValidateToken(tokenString string) (*Claims, error)
}
