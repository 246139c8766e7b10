package commands

import (
	"context"

	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
)

// RemoveShipmentCommandHandler detaches a shipment record while the order is
// negotiating. An unknown shipment id is a no-op; an unknown item is not found.
type RemoveShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
	totals     services.TotalsCalculator
}

func NewRemoveShipmentCommandHandler(uowFactory OrderUoWFactory) RemoveShipmentCommandHandler {
	return RemoveShipmentCommandHandler{
		uowFactory: uowFactory,
		totals:     services.NewTotalsCalculator(),
	}
}

func (h *RemoveShipmentCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if err := o.RemoveShipment(cmd.ItemID(), cmd.ShipmentID()); err != nil {
			return err
		}
		return h.totals.Recalculate(o)
	})
}
