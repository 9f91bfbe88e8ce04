package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garden/config"
	"garden/internal/domain/constants"
	"garden/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_SelectsProvider(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	p, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)

	p, err = newPublisher(ctx, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, p)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.AccountProvisionedEvent{
		RequestID:     "req-1",
		AccountID:     "8f7ad3a2-5c1e-4a55-9f0e-0d1b2c3d4e5f",
		Username:      "bob123",
		SeedCount:     4,
		ProvisionedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishAccountProvisioned(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, EventTypeAccountProvisioned, received.Message.Attributes[AttrEventType])
	assert.Equal(t, event.AccountID, received.Message.Attributes[AttrAccountID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AccountProvisionedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishAccountProvisioned(context.Background(), &service.AccountProvisionedEvent{AccountID: "x"})
	assert.ErrorContains(t, err, "500")
}
