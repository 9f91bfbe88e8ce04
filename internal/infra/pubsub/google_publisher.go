package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"garden/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// publishAckTimeout bounds the wait for the server to acknowledge one event.
const publishAckTimeout = 10 * time.Second

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicPath)
	}

	logger.Info("Google Pub/Sub publisher ready", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishAccountProvisioned(ctx context.Context, event *service.AccountProvisionedEvent) error {
	data, attributes, err := encodeAccountProvisioned(event)
	if err != nil {
		return err
	}

	ackCtx, cancel := context.WithTimeout(ctx, publishAckTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ackCtx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ackCtx)
	if err != nil {
		return errors.Wrapf(err, "publish to %s", p.topicPath)
	}

	p.logger.Debug("[GooglePubSub] AccountProvisioned published",
		slog.String("account_id", event.AccountID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes buffered messages before releasing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
