package commands

import (
	"context"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
	"negotiation/internal/core/ports"
)

// AddItemCommandHandler adds an item to a negotiating order and recomputes the
// order totals.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        ports.IDGenerator
	totals     services.TotalsCalculator
}

func NewAddItemCommandHandler(uowFactory OrderUoWFactory, ids ports.IDGenerator) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		totals:     services.NewTotalsCalculator(),
	}
}

// Handle returns the id of the new item.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	itemID, err := h.ids.NextItemID(ctx)
	if err != nil {
		return 0, err
	}

	item, err := order.NewItem(
		itemID,
		cmd.OrderID(),
		cmd.ProductID(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.DiscountPercent(),
		cmd.Note(),
	)
	if err != nil {
		return 0, err
	}
	item.UpdateExtraData(cmd.ExtraData())

	err = updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if err := o.AddItem(item); err != nil {
			return err
		}
		return h.totals.Recalculate(o)
	})
	if err != nil {
		return 0, err
	}

	return itemID, nil
}
