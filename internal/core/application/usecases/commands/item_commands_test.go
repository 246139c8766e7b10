package commands_test

import (
	"errors"
	"testing"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemCommand(t *testing.T) {
	t.Run("should reject non-positive ids", func(t *testing.T) {
		_, err := commands.NewAddItemCommand(0, 0, dec("1"), dec("1"), decimal.Zero, "", kernel.Blob{})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "orderID")
		assert.Contains(t, err.Error(), "productID")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.AddItemCommand{}.Validate(), commands.ErrAddItemCommandIsNotConstructed)
	})
}

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	clock := kernel.NewFixedClock(start)
	o := newNegotiatingOrder(t, clock)
	extra, err := kernel.NewBlob([]byte(`{"color":"red"}`))
	require.NoError(t, err)
	cmd, err := commands.NewAddItemCommand(testOrderID, 500, dec("3"), dec("10.00"), dec("10"), "urgent", extra)
	require.NoError(t, err)

	ids := new(MockIDGenerator)
	ids.On("NextItemID", ctx).Return(kernel.ID(11), nil).Once()
	m := expectSavedUpdate(ctx, o)

	h := commands.NewAddItemCommandHandler(m.factory, ids)
	itemID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(11), itemID)
	assert.Equal(t, 1, o.ItemCount())
	item, ok := o.Item(11)
	require.True(t, ok)
	assert.Equal(t, "urgent", item.Note())
	assert.JSONEq(t, `{"color":"red"}`, string(item.ExtraData().Bytes()))

	totals := decodeTotals(t, o)
	assert.True(t, dec("30").Equal(totals.ItemsTotal))
	assert.True(t, dec("3").Equal(totals.DiscountTotal))
	assert.True(t, dec("27").Equal(totals.GrandTotal))
	m.assertExpectations(t)
	ids.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_InvalidAmounts(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddItemCommand(testOrderID, 500, dec("0"), dec("10"), dec("120"), "", kernel.Blob{})
	require.NoError(t, err)

	ids := new(MockIDGenerator)
	ids.On("NextItemID", ctx).Return(kernel.ID(11), nil).Once()
	factory := new(MockOrderUoWFactory)

	h := commands.NewAddItemCommandHandler(factory, ids)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemCommandHandler_Handle_ClosedOrder(t *testing.T) {
	ctx := t.Context()
	clock := kernel.NewFixedClock(start)
	o := newOrderWithItem(t, clock, 10)
	require.NoError(t, o.Close())
	cmd, _ := commands.NewAddItemCommand(testOrderID, 500, dec("1"), dec("1"), decimal.Zero, "", kernel.Blob{})

	ids := new(MockIDGenerator)
	ids.On("NextItemID", ctx).Return(kernel.ID(11), nil).Once()
	m := expectRejectedUpdate(ctx, o)

	h := commands.NewAddItemCommandHandler(m.factory, ids)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrStateIsInvalid))
	assert.Equal(t, 1, o.ItemCount())
	m.assertExpectations(t)
	m.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddItemCommand(404, 500, dec("1"), dec("1"), decimal.Zero, "", kernel.Blob{})

	ids := new(MockIDGenerator)
	ids.On("NextItemID", ctx).Return(kernel.ID(11), nil).Once()
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.ID(404)).Return(nil, errs.NewObjectNotFoundError("order", 404)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAddItemCommandHandler(factory, ids)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestNewUpdateItemCommand(t *testing.T) {
	t.Run("should require at least one change", func(t *testing.T) {
		_, err := commands.NewUpdateItemCommand(testOrderID, 10, commands.ItemChanges{})

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should accept a single change", func(t *testing.T) {
		note := "x"
		cmd, err := commands.NewUpdateItemCommand(testOrderID, 10, commands.ItemChanges{Note: &note})

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(10), cmd.ItemID())
		assert.Equal(t, &note, cmd.Changes().Note)
	})
}

func TestUpdateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
	qty, discount, note := dec("2"), dec("50"), "half price"
	cmd, err := commands.NewUpdateItemCommand(testOrderID, 10, commands.ItemChanges{
		Quantity:        &qty,
		DiscountPercent: &discount,
		Note:            &note,
	})
	require.NoError(t, err)

	m := expectSavedUpdate(ctx, o)
	h := commands.NewUpdateItemCommandHandler(m.factory)

	require.NoError(t, h.Handle(ctx, cmd))

	item, _ := o.Item(10)
	assert.True(t, dec("2").Equal(item.Quantity()))
	assert.True(t, dec("50").Equal(item.Total()))
	assert.True(t, dec("25").Equal(item.Final()))
	assert.Equal(t, "half price", item.Note())
	assert.True(t, dec("25").Equal(decodeTotals(t, o).GrandTotal))
	m.assertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_InvalidChangeLeavesItem(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
	qty, price := dec("9"), dec("-1")
	cmd, _ := commands.NewUpdateItemCommand(testOrderID, 10, commands.ItemChanges{Quantity: &qty, UnitPrice: &price})

	m := expectRejectedUpdate(ctx, o)
	h := commands.NewUpdateItemCommandHandler(m.factory)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	item, _ := o.Item(10)
	assert.True(t, dec("4").Equal(item.Quantity()))
	m.assertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	o := newNegotiatingOrder(t, kernel.NewFixedClock(start))
	note := "x"
	cmd, _ := commands.NewUpdateItemCommand(testOrderID, 99, commands.ItemChanges{Note: &note})

	m := expectRejectedUpdate(ctx, o)
	h := commands.NewUpdateItemCommandHandler(m.factory)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	m.assertExpectations(t)
}

func TestUpdateItemCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
	require.NoError(t, o.CancelByBuyer())
	price := dec("1")
	cmd, _ := commands.NewUpdateItemCommand(testOrderID, 10, commands.ItemChanges{UnitPrice: &price})

	m := expectRejectedUpdate(ctx, o)
	h := commands.NewUpdateItemCommandHandler(m.factory)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrStateIsInvalid))
	m.assertExpectations(t)
}

func TestRemoveItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove and recompute totals", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
		cmd, err := commands.NewRemoveItemCommand(testOrderID, 10)
		require.NoError(t, err)

		m := expectSavedUpdate(ctx, o)
		h := commands.NewRemoveItemCommandHandler(m.factory)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, 0, o.ItemCount())
		assert.True(t, decodeTotals(t, o).GrandTotal.IsZero())
		m.assertExpectations(t)
	})

	t.Run("unknown item is a no-op", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
		cmd, _ := commands.NewRemoveItemCommand(testOrderID, 99)

		m := expectSavedUpdate(ctx, o)
		h := commands.NewRemoveItemCommandHandler(m.factory)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, 1, o.ItemCount())
		m.assertExpectations(t)
	})

	t.Run("should fail on a closed order", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
		require.NoError(t, o.Close())
		cmd, _ := commands.NewRemoveItemCommand(testOrderID, 10)

		m := expectRejectedUpdate(ctx, o)
		h := commands.NewRemoveItemCommandHandler(m.factory)

		err := h.Handle(ctx, cmd)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrStateIsInvalid))
		assert.Equal(t, order.Closed, o.Status())
		m.assertExpectations(t)
	})
}
