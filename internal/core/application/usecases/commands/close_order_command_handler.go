package commands

import (
	"context"

	"negotiation/internal/core/domain/model/order"
)

// CloseOrderCommandHandler closes a negotiating order that has at least one item.
// The status change reaches the notification channel through the outbox.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{uowFactory: uowFactory}
}

func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Close()
	})
}
