package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"garden/config"
	deliverycontext "garden/internal/delivery/context"
	"garden/internal/domain/constants"
	"garden/internal/domain/entity"
	"garden/internal/domain/service"
	"garden/internal/infra/pubsub"
	"garden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler audits accounts announced by AccountProvisioned events.
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	verify         tokenVerifier
	logger         *slog.Logger
	auditUc        usecase.AuditUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	AuditUc usecase.AuditUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Pub/Sub deliveries carry a token; the local publisher does not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		verify:         idtoken.Validate,
		logger:         params.Logger,
		auditUc:        params.AuditUc,
	}
}

// HandlePush acknowledges a message with 2xx, or asks for redelivery with 5xx.
// Malformed messages are rejected with 400 since redelivery cannot fix them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.Message.Attributes[pubsub.AttrEventType]; eventType != "" && eventType != pubsub.EventTypeAccountProvisioned {
		logger.Info("[Worker] Ignoring event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusNoContent)
	}

	event, accountID, err := decodeAccountProvisioned(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Malformed AccountProvisioned event",
			slog.String("message_id", pushMsg.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("account_id", accountID.String()),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	report, err := h.auditUc.AuditAccount(ctx, accountID)
	if err != nil {
		reqLogger.Error("[Worker] Audit failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusInternalServerError)
	}

	if !report.Complete() {
		reqLogger.Error("[Worker] Provisioned account is incomplete",
			slog.String("username", event.Username),
			slog.Bool("credential_found", report.CredentialFound),
			slog.Any("missing", report.Missing),
		)

		return c.NoContent(http.StatusNoContent)
	}

	reqLogger.Info("[Worker] Provisioned account verified",
		slog.String("username", event.Username),
		slog.Int("seed_count", event.SeedCount),
	)

	return c.NoContent(http.StatusNoContent)
}

func decodeAccountProvisioned(data string) (*service.AccountProvisionedEvent, entity.AccountID, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, entity.AccountID{}, errors.Wrap(err, "decode message data")
	}

	var event service.AccountProvisionedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, entity.AccountID{}, errors.Wrap(err, "parse event")
	}

	accountID, err := entity.ParseAccountID(event.AccountID)
	if err != nil {
		return nil, entity.AccountID{}, errors.Wrap(err, "parse account id")
	}

	return &event, accountID, nil
}

// extractRequestID prefers the message attribute, then the event, then the push request itself.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.AccountProvisionedEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.verify(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
