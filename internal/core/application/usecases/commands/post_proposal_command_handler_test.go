package commands_test

import (
	"errors"
	"testing"
	"time"

	"negotiation/internal/core/application/usecases/commands"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostProposalCommand(t *testing.T) {
	t.Run("buyer action must be known", func(t *testing.T) {
		_, err := commands.NewPostBuyerActionCommand(testOrderID, order.BuyerActionUnknown, 5, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	})

	t.Run("supplier note must not be blank", func(t *testing.T) {
		_, err := commands.NewPostSupplierNoteCommand(testOrderID, "  \t", 5)

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("author is carried as given", func(t *testing.T) {
		cmd, err := commands.NewPostBuyerActionCommand(testOrderID, order.Counter, 5, "lower please")

		require.NoError(t, err)
		assert.Equal(t, order.BuyerAction{Action: order.Counter, BuyerUserID: 5, Note: "lower please"}, cmd.Author())
	})
}

func TestPostProposalCommandHandler_Handle_Buyer(t *testing.T) {
	ctx := t.Context()
	clock := kernel.NewFixedClock(start)
	o := newNegotiatingOrder(t, clock)
	clock.Advance(time.Hour)
	cmd, _ := commands.NewPostBuyerActionCommand(testOrderID, order.Accept, 5, "")

	ids := new(MockIDGenerator)
	ids.On("NextProposalID", ctx).Return(kernel.ID(31), nil).Once()
	m := expectSavedUpdate(ctx, o)

	h := commands.NewPostProposalCommandHandler(m.factory, ids)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(31), id)
	require.Len(t, o.Proposals(), 1)
	p := o.Proposals()[0]
	assert.True(t, p.IsBuyerAuthored())
	assert.False(t, p.IsSupplierAuthored())
	assert.Equal(t, start.Add(time.Hour), p.CreatedAt())
	m.assertExpectations(t)
}

func TestPostProposalCommandHandler_Handle_SupplierOnClosedOrder(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithItem(t, kernel.NewFixedClock(start), 10)
	require.NoError(t, o.Close())
	cmd, _ := commands.NewPostSupplierNoteCommand(testOrderID, "thanks for the order", 7)

	ids := new(MockIDGenerator)
	ids.On("NextProposalID", ctx).Return(kernel.ID(32), nil).Once()
	m := expectSavedUpdate(ctx, o)

	h := commands.NewPostProposalCommandHandler(m.factory, ids)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, o.Proposals(), 1)
	assert.True(t, o.Proposals()[0].IsSupplierAuthored())
	assert.Equal(t, "thanks for the order", o.Proposals()[0].Note())
	m.assertExpectations(t)
}

func TestPostProposalCommandHandler_Handle_NotConstructed(t *testing.T) {
	ids := new(MockIDGenerator)
	h := commands.NewPostProposalCommandHandler(new(MockOrderUoWFactory), ids)

	_, err := h.Handle(t.Context(), commands.PostProposalCommand{})

	require.ErrorIs(t, err, commands.ErrPostProposalCommandIsNotConstructed)
}
