package commands

import (
	"context"

	"negotiation/internal/core/domain/model/order"
)

// ChangeCartStatusCommandHandler moves the cart to the requested status.
// Reopening requires a negotiating order; finalizing does not.
type ChangeCartStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeCartStatusCommandHandler(uowFactory OrderUoWFactory) ChangeCartStatusCommandHandler {
	return ChangeCartStatusCommandHandler{uowFactory: uowFactory}
}

func (h *ChangeCartStatusCommandHandler) Handle(ctx context.Context, cmd ChangeCartStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if cmd.Target() == order.CartFinalized {
			return o.FinalizeCart()
		}
		return o.ReopenCart()
	})
}
