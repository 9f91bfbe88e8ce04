// Package context carries request-scoped values between the transports and the services.
package context

import (
	"context"
	"log/slog"

	"garden/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyAccount   ContextKey = "account"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Account identifies the caller of an authenticated request.
type Account struct {
	ID       entity.AccountID
	Username string
}

// GetRequestID returns the request ID stored on the echo context, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithAccount stores the authenticated caller.
func WithAccount(ctx context.Context, account Account) context.Context {
	return context.WithValue(ctx, KeyAccount, account)
}

// AccountFromContext returns the authenticated caller set by the auth middleware.
func AccountFromContext(ctx context.Context) (Account, bool) {
	account, ok := ctx.Value(KeyAccount).(Account)
	if !ok || account.ID.IsNil() {
		return Account{}, false
	}

	return account, true
}
