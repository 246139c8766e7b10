// Package pubsub publishes outbox messages to a Google Cloud Pub/Sub topic.
package pubsub

import (
	"context"
	"errors"
	"fmt"

	"negotiation/internal/core/ports"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// Message attributes set on every publication.
const (
	AttrEventName   = "event_name"
	AttrAggregateID = "aggregate_id"
	AttrMessageID   = "outbox_id"
)

// NewClient opens a Pub/Sub client. Explicit credentials are used when
// credentialsJSON is set, Application Default Credentials otherwise.
func NewClient(ctx context.Context, projectID, credentialsJSON string, opts ...option.ClientOption) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("pubsub project id is required")
	}
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client for project %q: %w", projectID, err)
	}
	return client, nil
}

// Publisher implements ports.NotificationPublisher on a single topic.
type Publisher struct {
	topic *pubsub.Topic
}

func NewPublisher(client *pubsub.Client, topicName string) (*Publisher, error) {
	if client == nil {
		return nil, errors.New("pubsub client is nil")
	}
	if topicName == "" {
		return nil, errors.New("topic is required")
	}
	return &Publisher{topic: client.Topic(topicName)}, nil
}

// Publish sends the message payload and waits for the server-assigned id.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) (string, error) {
	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: msg.Payload,
		Attributes: map[string]string{
			AttrEventName:   msg.EventName,
			AttrAggregateID: msg.AggregateID,
			AttrMessageID:   msg.ID,
		},
	})

	id, err := result.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish %s %s: %w", msg.EventName, msg.ID, err)
	}
	return id, nil
}

// Stop flushes pending publications and releases the topic's goroutines.
func (p *Publisher) Stop() {
	p.topic.Stop()
}
