package jobs

import (
	"context"
	"errors"
	"time"

	"negotiation/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	orderTimeoutLockKey = "lock:jobs:order_timeout"
	orderTimeoutLockTTL = 50 * time.Second
)

type expiredOrdersCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelExpiredOrdersCommand) (commands.CancelExpiredOrdersResult, error)
}

// OrderTimeoutJob periodically cancels negotiating orders whose interaction
// deadline has passed. Only the replica holding the lock sweeps.
type OrderTimeoutJob struct {
	handler   expiredOrdersCanceller
	locker    Locker
	batchSize int
	schedule  string
	cron      *cron.Cron
	logger    *logrus.Entry
}

func NewOrderTimeoutJob(
	handler expiredOrdersCanceller,
	locker Locker,
	schedule string,
	batchSize int,
	logger *logrus.Logger,
) *OrderTimeoutJob {
	return &OrderTimeoutJob{
		handler:   handler,
		locker:    locker,
		batchSize: batchSize,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.WithField("component", "order_timeout_job"),
	}
}

// Run performs one sweep. It is safe to call concurrently from several
// replicas; all but the lock holder return immediately.
func (j *OrderTimeoutJob) Run(ctx context.Context) {
	release, err := j.locker.Obtain(ctx, orderTimeoutLockKey, orderTimeoutLockTTL)
	if errors.Is(err, ErrLockHeld) {
		j.logger.Debug("Order timeout sweep skipped, lock held elsewhere")
		return
	}
	if err != nil {
		j.logger.WithError(err).Error("Order timeout sweep could not obtain lock")
		return
	}
	defer func() {
		if releaseErr := release(context.Background()); releaseErr != nil {
			j.logger.WithError(releaseErr).Warn("Order timeout lock release failed")
		}
	}()

	ctx, span := tracer.Start(ctx, "jobs.order_timeout", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	cmd, err := commands.NewCancelExpiredOrdersCommand(j.batchSize)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		j.logger.WithError(err).Error("Order timeout sweep misconfigured")
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	span.SetAttributes(
		attribute.Int("orders.cancelled", len(result.Cancelled)),
		attribute.Int("orders.skipped", len(result.Skipped)),
		attribute.Int("orders.failed", len(result.Failed)),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		j.logger.WithError(err).Error("Order timeout sweep failed")
		return
	}

	for id, failure := range result.Failed {
		j.logger.WithFields(logrus.Fields{
			"order_id": id.Int64(),
		}).WithError(failure).Warn("Order timeout cancellation failed")
	}
	if len(result.Cancelled) > 0 || len(result.Failed) > 0 {
		j.logger.WithFields(logrus.Fields{
			"cancelled": len(result.Cancelled),
			"skipped":   len(result.Skipped),
			"failed":    len(result.Failed),
		}).Info("Order timeout sweep finished")
	}
}

// Start schedules Run on the configured cron expression (with seconds).
func (j *OrderTimeoutJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.schedule).Info("Order timeout job started")
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *OrderTimeoutJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order timeout job stopped")
}
