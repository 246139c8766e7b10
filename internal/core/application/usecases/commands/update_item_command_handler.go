package commands

import (
	"context"
	"errors"

	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
)

// UpdateItemCommandHandler edits an attached item. The edit is applied as a
// whole or not at all, and only while the order is negotiating.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
	totals     services.TotalsCalculator
}

func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
		totals:     services.NewTotalsCalculator(),
	}
}

func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	changes := cmd.Changes()
	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		err := o.EditItem(cmd.ItemID(), func(item *order.Item) error {
			var errQty, errPrice, errDiscount error
			if changes.Quantity != nil {
				errQty = item.UpdateQuantity(*changes.Quantity)
			}
			if changes.UnitPrice != nil {
				errPrice = item.UpdatePrice(*changes.UnitPrice)
			}
			if changes.DiscountPercent != nil {
				errDiscount = item.UpdateDiscount(*changes.DiscountPercent)
			}
			if changes.Note != nil {
				item.UpdateNote(*changes.Note)
			}
			if changes.ExtraData != nil {
				item.UpdateExtraData(*changes.ExtraData)
			}
			return errors.Join(errQty, errPrice, errDiscount)
		})
		if err != nil {
			return err
		}
		return h.totals.Recalculate(o)
	})
}
