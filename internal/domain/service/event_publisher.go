package service

import (
	"context"
	"time"
)

// AccountProvisionedEvent announces that an account and all of its documents were committed.
type AccountProvisionedEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	AccountID     string    `json:"account_id"`
	Username      string    `json:"username"`
	SeedCount     int       `json:"seed_count"`
	ProvisionedAt time.Time `json:"provisioned_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountProvisioned publishes the event for asynchronous consumers such as the audit worker.
	PublishAccountProvisioned(ctx context.Context, event *AccountProvisionedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
