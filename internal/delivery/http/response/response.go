// Package response writes the JSON bodies the game client expects.
package response

import (
	"net/http"

	domainerrors "garden/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Token answers a successful register or login.
func Token(c echo.Context, message, token string) error {
	return c.JSON(http.StatusOK, domainerrors.MessageResponse{Message: message, Token: token})
}

// Message answers with a bare confirmation message.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.MessageResponse{Message: message})
}

// Document answers with a category document as-is.
func Document(c echo.Context, doc any) error {
	return c.JSON(http.StatusOK, doc)
}

// BindingError answers a body that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, domainerrors.ValidationErrorResponse{Errors: []string{message}})
}
