package middleware

import (
	"net/http"
	"slices"
	"strings"

	"garden/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// NewCORS allows the configured origins and any origin whose host ends in an allowed suffix.
// Credentials are allowed, so origins are echoed back rather than wildcarded.
func NewCORS(cfg config.CORSConfig) echo.MiddlewareFunc {
	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return OriginAllowed(cfg, origin), nil
		},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost,
			http.MethodPut, http.MethodPatch, http.MethodDelete,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			echo.HeaderAuthorization, "X-Request-Id",
		},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
	})
}

// OriginAllowed reports whether a browser origin may call the API.
func OriginAllowed(cfg config.CORSConfig, origin string) bool {
	if origin == "" {
		return true
	}
	if slices.Contains(cfg.AllowedOrigins, origin) {
		return true
	}
	for _, suffix := range cfg.AllowedSuffixes {
		if suffix != "" && strings.HasSuffix(origin, suffix) {
			return true
		}
	}

	return false
}
