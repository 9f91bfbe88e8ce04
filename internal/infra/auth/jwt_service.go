package auth

import (
	"time"

	"garden/config"
	"garden/internal/domain/entity"
	"garden/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Tokens are HS256 signed with secretKey.access and live for auth.tokenTTL.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken signs {userId, username} with an expiry of now + ttl.
func (s *jwtService) GenerateToken(id entity.AccountID, username string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		AccountID: id,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.AccountID.IsNil() {
		return nil, errors.New("token carries no account id")
	}

	return claims, nil
}
