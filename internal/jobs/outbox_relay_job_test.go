package jobs_test

import (
	"errors"
	"testing"

	"negotiation/internal/core/ports"
	"negotiation/internal/jobs"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOutboxRelayJob_Run(t *testing.T) {
	first := ports.OutboxMessage{ID: "a", AggregateID: "1", EventName: "order.status_changed", Payload: []byte(`{}`)}
	second := ports.OutboxMessage{ID: "b", AggregateID: "2", EventName: "order.status_changed", Payload: []byte(`{}`)}
	third := ports.OutboxMessage{ID: "c", AggregateID: "3", EventName: "order.status_changed", Payload: []byte(`{}`)}

	t.Run("should mark published messages sent and failed ones failed", func(t *testing.T) {
		ctx := t.Context()
		logger, _ := logtest.NewNullLogger()
		released := 0
		publishErr := errors.New("unavailable")

		store := new(MockOutboxStore)
		store.On("Claim", mock.Anything, "relay-1", jobs.DefaultOutboxBatchSize).
			Return([]ports.OutboxMessage{first, second, third}, nil).Once()
		store.On("MarkSent", mock.Anything, "a", "srv-1").Return(nil).Once()
		store.On("MarkFailed", mock.Anything, "b", publishErr).Return(nil).Once()
		store.On("MarkSent", mock.Anything, "c", "srv-3").Return(errors.New("conn reset")).Once()

		publisher := new(MockPublisher)
		publisher.On("Publish", mock.Anything, first).Return("srv-1", nil).Once()
		publisher.On("Publish", mock.Anything, second).Return("", publishErr).Once()
		publisher.On("Publish", mock.Anything, third).Return("srv-3", nil).Once()

		job := jobs.NewOutboxRelayJob(store, publisher, grantingLocker(&released), "relay-1", "*/5 * * * * *", logger)
		sent := job.Run(ctx)

		assert.Equal(t, 1, sent)
		assert.Equal(t, 1, released)
		store.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should not publish when claim fails", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		released := 0
		store := new(MockOutboxStore)
		store.On("Claim", mock.Anything, "relay-1", jobs.DefaultOutboxBatchSize).
			Return(nil, errors.New("deadlock detected")).Once()
		publisher := new(MockPublisher)

		job := jobs.NewOutboxRelayJob(store, publisher, grantingLocker(&released), "relay-1", "* * * * * *", logger)

		assert.Zero(t, job.Run(t.Context()))
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		assert.Equal(t, "Outbox claim failed", hook.LastEntry().Message)
	})

	t.Run("should skip when another replica relays", func(t *testing.T) {
		logger, _ := logtest.NewNullLogger()
		locker := new(MockLocker)
		locker.On("Obtain", mock.Anything, mock.Anything, mock.Anything).Return(nil, jobs.ErrLockHeld).Once()
		store := new(MockOutboxStore)

		job := jobs.NewOutboxRelayJob(store, new(MockPublisher), locker, "relay-2", "* * * * * *", logger)

		assert.Zero(t, job.Run(t.Context()))
		store.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJobManager_StartAllStopsRelayWhenSweepFails(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	relay := jobs.NewOutboxRelayJob(new(MockOutboxStore), new(MockPublisher), new(MockLocker), "r", "0 0 0 1 1 *", logger)
	sweep := jobs.NewOrderTimeoutJob(new(MockCanceller), new(MockLocker), "bad", 0, logger)

	manager := jobs.NewJobManager(sweep, relay)

	err := manager.StartAll()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order timeout job")
}
