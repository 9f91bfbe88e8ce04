package auth

import (
	"strings"
	"testing"
	"time"

	"garden/config"
	"garden/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	id := entity.AccountID(uuid.New())
	token, err := tokenService.GenerateToken(id, "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.AccountID)
	assert.Equal(t, "Alice", claims.Username)
	assert.Equal(t, id.String(), claims.Subject)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, lifetime)
}

func TestJWTService_PayloadUsesUserIDKey(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	id := entity.AccountID(uuid.New())
	token, err := tokenService.GenerateToken(id, "bob123")
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, parsed)
	require.NoError(t, err)
	assert.Equal(t, id.String(), parsed["userId"])
	assert.Equal(t, "bob123", parsed["username"])
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = tokenService.ValidateToken("invalid.token.here")
	assert.Error(t, err)

	token, err := tokenService.GenerateToken(entity.AccountID(uuid.New()), "Alice")
	require.NoError(t, err)
	tampered := token[:strings.LastIndex(token, ".")] + ".invalidsignature"
	_, err = tokenService.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "another_secret_key_entirely_different"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(entity.AccountID(uuid.New()), "Alice")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	svc := tokenService.(*jwtService)
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(entity.AccountID(uuid.New()), "Alice")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour + time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
