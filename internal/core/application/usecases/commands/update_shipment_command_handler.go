package commands

import (
	"context"
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
)

// UpdateShipmentCommandHandler edits one shipment record. Like item edits it is
// applied as a whole or not at all, and only while the order is negotiating.
// Order totals are recomputed to pick up a changed freight value.
type UpdateShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	totals     services.TotalsCalculator
}

func NewUpdateShipmentCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		totals:     services.NewTotalsCalculator(),
	}
}

func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	changes := cmd.Changes()
	return updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		err := o.EditShipment(cmd.ItemID(), cmd.ShipmentID(), func(s *order.Shipment) error {
			var errFreight, errDate error
			if changes.FreightValue != nil {
				errFreight = s.UpdateFreightValue(*changes.FreightValue)
			}
			if changes.ScheduledDate != nil {
				errDate = s.Schedule(*changes.ScheduledDate, h.clock.Now())
			}
			if changes.OriginAddress != nil || changes.DestinationAddress != nil {
				origin, destination := s.OriginAddress(), s.DestinationAddress()
				if changes.OriginAddress != nil {
					origin = *changes.OriginAddress
				}
				if changes.DestinationAddress != nil {
					destination = *changes.DestinationAddress
				}
				s.UpdateAddresses(origin, destination)
			}
			if changes.Note != nil {
				s.UpdateNote(*changes.Note)
			}
			return errors.Join(errFreight, errDate)
		})
		if err != nil {
			return err
		}
		return h.totals.Recalculate(o)
	})
}
