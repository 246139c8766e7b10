package jobs_test

import (
	"context"
	"time"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	args := m.Called(ctx, key, ttl)
	if release, ok := args.Get(0).(func(context.Context) error); ok {
		return release, args.Error(1)
	}
	return nil, args.Error(1)
}

// grantingLocker hands out the lock and counts releases.
func grantingLocker(released *int) *MockLocker {
	l := new(MockLocker)
	l.On("Obtain", mock.Anything, mock.Anything, mock.Anything).Return(func(context.Context) error {
		*released++
		return nil
	}, nil)
	return l
}

type MockCanceller struct{ mock.Mock }

func (m *MockCanceller) Handle(
	ctx context.Context,
	cmd commands.CancelExpiredOrdersCommand,
) (commands.CancelExpiredOrdersResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CancelExpiredOrdersResult), args.Error(1)
}

type MockOutboxStore struct{ mock.Mock }

func (m *MockOutboxStore) Claim(ctx context.Context, relayID string, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, relayID, limit)
	if msgs, ok := args.Get(0).([]ports.OutboxMessage); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOutboxStore) MarkSent(ctx context.Context, id string, externalID string) error {
	return m.Called(ctx, id, externalID).Error(0)
}

func (m *MockOutboxStore) MarkFailed(ctx context.Context, id string, cause error) error {
	return m.Called(ctx, id, cause).Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}
