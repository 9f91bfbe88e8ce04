package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "garden/internal/delivery/context"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the Bearer token and stores the caller on the request context.
// The request logger is extended with the account id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		authHeader := req.Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Debug("Rejected session token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		account := deliverycontext.Account{ID: claims.AccountID, Username: claims.Username}
		ctx = deliverycontext.WithAccount(ctx, account)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("account_id", account.ID.String())))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
