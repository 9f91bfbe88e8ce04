package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "garden/internal/delivery/context"
	"garden/internal/domain/entity"
	domainerrors "garden/internal/domain/errors"
	"garden/internal/domain/service"
	mockSvc "garden/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := entity.AccountID(uuid.New())

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockSvc.MockTokenService)
		wantCaller bool
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer  "},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))
			},
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID, Username: "bob123"}, nil)
			},
			wantCaller: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			mw := NewAuthMiddleware(tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := mw.Authenticate(func(c echo.Context) error {
				called = true
				account, ok := deliverycontext.AccountFromContext(c.Request().Context())
				require.True(t, ok)
				assert.Equal(t, accountID, account.ID)
				assert.Equal(t, "bob123", account.Username)

				return nil
			})(c)

			assert.Equal(t, tt.wantCaller, called)
			if tt.wantCaller {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}
