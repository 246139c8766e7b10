package commands

import (
	"context"

	"negotiation/internal/core/domain/model/order"
)

// ExtendDeadlineCommandHandler snoozes the timeout of an order. The new deadline
// is counted from now, not from the previous deadline.
type ExtendDeadlineCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewExtendDeadlineCommandHandler(uowFactory OrderUoWFactory) ExtendDeadlineCommandHandler {
	return ExtendDeadlineCommandHandler{uowFactory: uowFactory}
}

func (h *ExtendDeadlineCommandHandler) Handle(ctx context.Context, cmd ExtendDeadlineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ExtendDeadline(cmd.Days())
	})
}
