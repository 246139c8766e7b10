package jobs_test

import (
	"errors"
	"testing"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/jobs"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderTimeoutJob_Run(t *testing.T) {
	t.Run("should sweep and log the result", func(t *testing.T) {
		ctx := t.Context()
		logger, hook := logtest.NewNullLogger()
		released := 0
		locker := grantingLocker(&released)

		handler := new(MockCanceller)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelExpiredOrdersCommand) bool {
			return cmd.BatchSize() == 25
		})).Return(commands.CancelExpiredOrdersResult{
			Cancelled: []kernel.ID{1, 2},
			Skipped:   []kernel.ID{3},
			Failed:    map[kernel.ID]error{4: errors.New("version is invalid")},
		}, nil).Once()

		job := jobs.NewOrderTimeoutJob(handler, locker, "*/30 * * * * *", 25, logger)
		job.Run(ctx)

		handler.AssertExpectations(t)
		assert.Equal(t, 1, released)

		entries := hook.AllEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, logrus.WarnLevel, entries[0].Level)
		assert.Equal(t, int64(4), entries[0].Data["order_id"])
		assert.Equal(t, "Order timeout sweep finished", entries[1].Message)
		assert.Equal(t, 2, entries[1].Data["cancelled"])
		assert.Equal(t, "order_timeout_job", entries[1].Data["component"])
	})

	t.Run("should skip when another replica holds the lock", func(t *testing.T) {
		logger, _ := logtest.NewNullLogger()
		locker := new(MockLocker)
		locker.On("Obtain", mock.Anything, mock.Anything, mock.Anything).Return(nil, jobs.ErrLockHeld).Once()
		handler := new(MockCanceller)

		job := jobs.NewOrderTimeoutJob(handler, locker, "* * * * * *", 0, logger)
		job.Run(t.Context())

		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should log a failed sweep and release the lock", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		released := 0
		handler := new(MockCanceller)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.CancelExpiredOrdersResult{}, errors.New("connection refused")).Once()

		job := jobs.NewOrderTimeoutJob(handler, grantingLocker(&released), "* * * * * *", 0, logger)
		job.Run(t.Context())

		assert.Equal(t, 1, released)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "Order timeout sweep failed", hook.LastEntry().Message)
	})

	t.Run("should stay quiet when nothing expired", func(t *testing.T) {
		logger, hook := logtest.NewNullLogger()
		released := 0
		handler := new(MockCanceller)
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.CancelExpiredOrdersResult{Failed: map[kernel.ID]error{}}, nil).Once()

		job := jobs.NewOrderTimeoutJob(handler, grantingLocker(&released), "* * * * * *", 0, logger)
		job.Run(t.Context())

		assert.Empty(t, hook.AllEntries())
	})
}

func TestOrderTimeoutJob_StartRejectsBadSchedule(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	job := jobs.NewOrderTimeoutJob(new(MockCanceller), new(MockLocker), "not a schedule", 0, logger)

	assert.Error(t, job.Start())
}
