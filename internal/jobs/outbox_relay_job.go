package jobs

import (
	"context"
	"errors"
	"time"

	"negotiation/internal/core/ports"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	outboxRelayLockKey = "lock:jobs:outbox_relay"
	outboxRelayLockTTL = 30 * time.Second

	DefaultOutboxBatchSize = 50
)

var tracer = otel.Tracer("negotiation/jobs")

// OutboxRelayJob publishes stored status-change events. Messages are published
// at least once: a message whose MarkSent fails is claimed and sent again.
type OutboxRelayJob struct {
	store     ports.OutboxStore
	publisher ports.NotificationPublisher
	locker    Locker
	relayID   string
	batchSize int
	schedule  string
	cron      *cron.Cron
	logger    *logrus.Entry
}

func NewOutboxRelayJob(
	store ports.OutboxStore,
	publisher ports.NotificationPublisher,
	locker Locker,
	relayID string,
	schedule string,
	logger *logrus.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		store:     store,
		publisher: publisher,
		locker:    locker,
		relayID:   relayID,
		batchSize: DefaultOutboxBatchSize,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.WithFields(logrus.Fields{"component": "outbox_relay_job", "relay_id": relayID}),
	}
}

// Run claims one batch and publishes it. It returns the number of messages sent.
func (j *OutboxRelayJob) Run(ctx context.Context) int {
	release, err := j.locker.Obtain(ctx, outboxRelayLockKey, outboxRelayLockTTL)
	if errors.Is(err, ErrLockHeld) {
		return 0
	}
	if err != nil {
		j.logger.WithError(err).Error("Outbox relay could not obtain lock")
		return 0
	}
	defer func() {
		if releaseErr := release(context.Background()); releaseErr != nil {
			j.logger.WithError(releaseErr).Warn("Outbox relay lock release failed")
		}
	}()

	ctx, span := tracer.Start(ctx, "jobs.outbox_relay", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	messages, err := j.store.Claim(ctx, j.relayID, j.batchSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		j.logger.WithError(err).Error("Outbox claim failed")
		return 0
	}
	span.SetAttributes(attribute.Int("outbox.claimed", len(messages)))

	sent := 0
	for _, msg := range messages {
		log := j.logger.WithFields(logrus.Fields{
			"outbox_id":    msg.ID,
			"event_name":   msg.EventName,
			"aggregate_id": msg.AggregateID,
			"attempt":      msg.Attempts,
		})

		externalID, publishErr := j.publisher.Publish(ctx, msg)
		if publishErr != nil {
			log.WithError(publishErr).Warn("Outbox publish failed")
			if err = j.store.MarkFailed(ctx, msg.ID, publishErr); err != nil {
				log.WithError(err).Error("Outbox mark failed failed")
			}
			continue
		}

		if err = j.store.MarkSent(ctx, msg.ID, externalID); err != nil {
			log.WithError(err).Error("Outbox mark sent failed, message will be published again")
			continue
		}
		sent++
	}

	span.SetAttributes(attribute.Int("outbox.sent", sent))
	if len(messages) > 0 {
		j.logger.WithFields(logrus.Fields{
			"claimed": len(messages),
			"sent":    sent,
		}).Debug("Outbox batch relayed")
	}
	return sent
}

func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Outbox relay job started")
	return nil
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
