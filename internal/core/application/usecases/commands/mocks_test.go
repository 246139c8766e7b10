package commands_test

import (
	"context"
	"testing"
	"time"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
	"negotiation/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

const testOrderID kernel.ID = 100

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListExpiredNegotiating(ctx context.Context, now time.Time, limit int) ([]kernel.ID, error) {
	args := m.Called(ctx, now, limit)
	if ids, ok := args.Get(0).([]kernel.ID); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockIDGenerator struct{ mock.Mock }

func (m *MockIDGenerator) NextOrderID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockIDGenerator) NextItemID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockIDGenerator) NextShipmentID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockIDGenerator) NextProposalID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetMeasures(ctx context.Context, productID kernel.ID) (services.ProductMeasures, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(services.ProductMeasures), args.Error(1)
}

// updateMocks wires a factory that hands out one unit of work whose repository
// returns o from Get.
type updateMocks struct {
	factory *MockOrderUoWFactory
	uow     *MockOrderUoW
	repo    *MockOrderRepository
}

// expectSavedUpdate sets up the full load, update and commit sequence.
func expectSavedUpdate(ctx context.Context, o *order.Order) updateMocks {
	m := updateMocks{
		factory: new(MockOrderUoWFactory),
		uow:     new(MockOrderUoW),
		repo:    new(MockOrderRepository),
	}
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.repo).Once(),
		m.repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.repo.On("Update", ctx, o).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return m
}

// expectRejectedUpdate sets up a load whose mutation fails, so the transaction
// is rolled back without an Update.
func expectRejectedUpdate(ctx context.Context, o *order.Order) updateMocks {
	m := updateMocks{
		factory: new(MockOrderUoWFactory),
		uow:     new(MockOrderUoW),
		repo:    new(MockOrderRepository),
	}
	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderRepository").Return(m.repo).Once(),
		m.repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	return m
}

func (m updateMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.repo.AssertExpectations(t)
	m.repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func newNegotiatingOrder(t *testing.T, clock kernel.Clock) *order.Order {
	t.Helper()
	o, err := order.NewOrder(testOrderID, 1, 2, true, true, order.DefaultDeadlineDays, order.WithClock(clock))
	require.NoError(t, err)
	return o
}

func newOrderWithItem(t *testing.T, clock kernel.Clock, itemID kernel.ID) *order.Order {
	t.Helper()
	o := newNegotiatingOrder(t, clock)
	item, err := order.NewItem(itemID, testOrderID, 500, dec("4"), dec("25.00"), decimal.Zero, "")
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return o
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decodeTotals(t *testing.T, o *order.Order) services.Totals {
	t.Helper()
	totals, err := services.DecodeTotals(o.Totals())
	require.NoError(t, err)
	return totals
}
