package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverycontext "garden/internal/delivery/context"
	"garden/internal/delivery/http/middleware"
	"garden/internal/delivery/http/validator"
	"garden/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the server's validator and error rendering.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// asAccount stands in for the auth middleware.
func asAccount(id entity.AccountID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := deliverycontext.WithAccount(c.Request().Context(), deliverycontext.Account{ID: id, Username: "bob123"})
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
