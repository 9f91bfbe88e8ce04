package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garden/config"
	deliverycontext "garden/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing", incoming: "", keep: false},
		{name: "reused when well formed", incoming: "abc-123", keep: true},
		{name: "replaced when too long", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
		{name: "replaced when it has spaces", incoming: "a b", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, tt.keep, seen == tt.incoming)
		})
	}
}

func TestLoggerMiddleware_OnlyFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	ok := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	fail := mw.Handle(func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })

	require.NoError(t, ok(e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), httptest.NewRecorder())))
	assert.Empty(t, buf.String())

	rec := httptest.NewRecorder()
	require.NoError(t, fail(e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), "uri=/missing")
	assert.Contains(t, buf.String(), "status=404")
}
