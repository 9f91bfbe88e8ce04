// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers load balancer probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ping is the client's liveness check.
func Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}
