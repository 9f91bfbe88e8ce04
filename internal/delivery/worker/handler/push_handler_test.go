package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"garden/config"
	deliverycontext "garden/internal/delivery/context"
	"garden/internal/domain/constants"
	"garden/internal/domain/entity"
	"garden/internal/domain/service"
	"garden/internal/infra/pubsub"
	mockUsecase "garden/internal/mocks/usecase"
	"garden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockAuditUsecase) {
	t.Helper()

	auditUc := mockUsecase.NewMockAuditUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
		cfg.Env.Env = constants.EnvDevelop
	}

	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		AuditUc: auditUc,
	})

	return h, auditUc
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/p/subscriptions/audit"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event service.AccountProvisionedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush(t *testing.T) {
	accountID := entity.AccountID(uuid.New())
	event := service.AccountProvisionedEvent{
		RequestID:     "req-1",
		AccountID:     accountID.String(),
		Username:      "bob123",
		SeedCount:     3,
		ProvisionedAt: time.Now().UTC(),
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(m *mockUsecase.MockAuditUsecase)
		wantStatus int
	}{
		{
			name: "complete account is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), map[string]string{pubsub.AttrEventType: pubsub.EventTypeAccountProvisioned})
			},
			setup: func(m *mockUsecase.MockAuditUsecase) {
				m.EXPECT().AuditAccount(mock.Anything, accountID).
					Return(&usecase.AuditReport{AccountID: accountID, CredentialFound: true}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "incomplete account is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), nil)
			},
			setup: func(m *mockUsecase.MockAuditUsecase) {
				m.EXPECT().AuditAccount(mock.Anything, accountID).
					Return(&usecase.AuditReport{
						AccountID:       accountID,
						CredentialFound: true,
						Missing:         []entity.Category{entity.CategoryGarden},
					}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "storage failure requests redelivery",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), nil)
			},
			setup: func(m *mockUsecase.MockAuditUsecase) {
				m.EXPECT().AuditAccount(mock.Anything, accountID).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid envelope",
			body:       func(t *testing.T) string { return "{not json" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not base64",
			body: func(t *testing.T) string {
				return pushBody(t, "%%%", nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "account id is not a uuid",
			body: func(t *testing.T) string {
				bad := event
				bad.AccountID = "nope"

				return pushBody(t, encodeEvent(t, bad), nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "other event types are skipped",
			body: func(t *testing.T) string {
				return pushBody(t, encodeEvent(t, event), map[string]string{pubsub.AttrEventType: "account.deleted"})
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auditUc := newTestHandler(t, nil)
			if tt.setup != nil {
				tt.setup(auditUc)
			}

			rec := doPush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_PropagatesRequestID(t *testing.T) {
	accountID := entity.AccountID(uuid.New())
	event := service.AccountProvisionedEvent{RequestID: "from-event", AccountID: accountID.String()}
	h, auditUc := newTestHandler(t, nil)

	auditUc.EXPECT().AuditAccount(mock.Anything, accountID).
		RunAndReturn(func(ctx context.Context, id entity.AccountID) (*usecase.AuditReport, error) {
			assert.Equal(t, "from-attribute", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.AuditReport{AccountID: id, CredentialFound: true}, nil
		})

	rec := doPush(h, pushBody(t, encodeEvent(t, event), map[string]string{pubsub.AttrRequestID: "from-attribute"}), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandlePush_VerifiesTokenForGooglePubSub(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://audit.example.com/push",
	}}
	cfg.Env.Env = "production"

	accountID := entity.AccountID(uuid.New())
	body := pushBody(t, encodeEvent(t, service.AccountProvisionedEvent{AccountID: accountID.String()}), nil)

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)

		rec := doPush(h, body, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestHandler(t, cfg)
		h.verify = func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := doPush(h, body, http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, auditUc := newTestHandler(t, cfg)
		h.verify = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "https://audit.example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com"}, nil
		}
		auditUc.EXPECT().AuditAccount(mock.Anything, accountID).
			Return(&usecase.AuditReport{AccountID: accountID, CredentialFound: true}, nil)

		rec := doPush(h, body, http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
