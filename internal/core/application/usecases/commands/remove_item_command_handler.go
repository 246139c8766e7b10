package commands

import (
	"context"

	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
)

// RemoveItemCommandHandler detaches an item and recomputes totals. Removing an
// item that is not on the order succeeds without changes, but still requires the
// order to be negotiating.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
	totals     services.TotalsCalculator
}

func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		totals:     services.NewTotalsCalculator(),
	}
}

func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		_, attached := o.Item(cmd.ItemID())
		if err := o.RemoveItem(cmd.ItemID()); err != nil {
			return err
		}
		if !attached {
			return nil
		}
		return h.totals.Recalculate(o)
	})
}
