package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"garden/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Attribute keys carried next to every AccountProvisioned message.
const (
	AttrEventType = "event_type"
	AttrAccountID = "account_id"
	AttrRequestID = "request_id"

	EventTypeAccountProvisioned = "account.provisioned"
)

// PushMessage is the body Google Pub/Sub POSTs to push subscriptions.
// The local publisher produces the same shape so the worker sees one format.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func encodeAccountProvisioned(event *service.AccountProvisionedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventType: EventTypeAccountProvisioned,
		AttrAccountID: event.AccountID,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// newPushEnvelope wraps an encoded event the way a push subscription would deliver it.
func newPushEnvelope(subscription string, data []byte, attributes map[string]string, publishedAt time.Time) PushMessage {
	envelope := PushMessage{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339Nano)

	return envelope
}
