package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"garden/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/account-audit-sub"
	localDeliveryLimit = 10 * time.Second
	// Enough of a failing worker response to show up in the error.
	localErrorBodyLimit = 512
)

// localHTTPPublisher stands in for a push subscription during development:
// each event is POSTed to the audit worker synchronously.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher returns a publisher that delivers straight to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localDeliveryLimit},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) PublishAccountProvisioned(ctx context.Context, event *service.AccountProvisionedEvent) error {
	data, attributes, err := encodeAccountProvisioned(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(newPushEnvelope(localSubscription, data, attributes, p.now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "deliver to %s", p.endpoint)
	}
	defer resp.Body.Close()

	// Push semantics: any 2xx is an ack.
	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, localErrorBodyLimit))

		return errors.Errorf("worker rejected event with status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	p.logger.Debug("[LocalPubSub] AccountProvisioned delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("account_id", event.AccountID),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
