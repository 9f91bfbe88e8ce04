package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"garden/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var testCORS = config.CORSConfig{
	AllowedOrigins:  []string{"http://localhost:5173"},
	AllowedSuffixes: []string{".vercel.app"},
}

func TestOriginAllowed(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{origin: "", want: true},
		{origin: "http://localhost:5173", want: true},
		{origin: "https://garden-preview.vercel.app", want: true},
		{origin: "https://evil.example.com", want: false},
		{origin: "http://localhost:3000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, OriginAllowed(testCORS, tt.origin))
		})
	}
}

func TestNewCORS_EchoesAllowedOriginWithCredentials(t *testing.T) {
	e := echo.New()
	e.Use(NewCORS(testCORS))
	e.GET("/api/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://garden-preview.vercel.app")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://garden-preview.vercel.app", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
