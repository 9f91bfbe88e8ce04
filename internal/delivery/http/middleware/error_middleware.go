package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "garden/internal/delivery/context"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders errors returned by handlers in the client's flat JSON shapes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
//
//   - ValidationError: 400 {errors: [...]}
//   - AppError below 500: {error: message}
//   - AppError 500 and up: {error: message, details: code}
//   - anything else: 500 {error: "Internal server error", details: INTERNAL_ERROR}
//
// Server-side failures are logged with the full chain; clients never see it.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		m.write(c, http.StatusBadRequest, domainerrors.ValidationErrorResponse{Errors: validationErr.Items})

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			m.write(c, appErr.HTTPCode(), domainerrors.ErrorResponse{Error: appErr.Message()})

			return
		}

		logger.Error("Request failed",
			slog.String("code", appErr.ErrorCode()),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
		m.write(c, appErr.HTTPCode(), domainerrors.FailureResponse{
			Error:   appErr.Message(),
			Details: failureDetails(appErr.ErrorCode(), requestID),
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if text, ok := httpErr.Message.(string); ok && text != "" {
			message = text
		}
		m.write(c, httpErr.Code, domainerrors.ErrorResponse{Error: message})

		return
	}

	logger.Error("Unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.Any("error", err),
	)
	m.write(c, http.StatusInternalServerError, domainerrors.FailureResponse{
		Error:   domainerrors.ErrInternalError.Message(),
		Details: failureDetails(domainerrors.ErrInternalError.ErrorCode(), requestID),
	})
}

func (m *ErrorMiddleware) write(c echo.Context, status int, body any) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func failureDetails(code, requestID string) string {
	if requestID == "" {
		return code
	}

	return fmt.Sprintf("%s (request %s)", code, requestID)
}
