package commands

import (
	"context"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
	"negotiation/internal/core/ports"
)

// CreateOrderCommandHandler opens a new order in Negotiating status with an
// open cart, no items and zero totals.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        ports.IDGenerator
	clock      kernel.Clock
	totals     services.TotalsCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	ids ports.IDGenerator,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		clock:      clock,
		totals:     services.NewTotalsCalculator(),
	}
}

// Handle creates the order and returns its id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orderID, err := h.ids.NextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		orderID,
		cmd.SupplierID(),
		cmd.BuyerID(),
		cmd.AllowDirectContact(),
		cmd.Negotiable(),
		cmd.DeadlineDays(),
		order.WithClock(h.clock),
	)
	if err != nil {
		return 0, err
	}

	if err = h.totals.Recalculate(o); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
