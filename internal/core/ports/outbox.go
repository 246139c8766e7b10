package ports

import (
	"context"
	"time"
)

// OutboxMessage is a domain event waiting to leave the service.
type OutboxMessage struct {
	ID          string
	AggregateID string
	EventName   string
	Payload     []byte
	OccurredAt  time.Time
	Attempts    int
}

// OutboxStore is the relay's view of the outbox table.
type OutboxStore interface {
	// Claim locks up to limit messages that are due for (re)publication and
	// returns them. Claimed messages are invisible to other relays until they are
	// marked or their claim goes stale.
	Claim(ctx context.Context, relayID string, limit int) ([]OutboxMessage, error)

	// MarkSent records a successful publication.
	MarkSent(ctx context.Context, id string, externalID string) error

	// MarkFailed schedules another attempt, or gives up after the store's
	// attempt limit.
	MarkFailed(ctx context.Context, id string, cause error) error
}

// NotificationPublisher delivers outbox messages to the notification channel.
// It returns the id assigned by the channel.
type NotificationPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) (string, error)
}
