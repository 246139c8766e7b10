package commands

import (
	"context"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/core/domain/services"
	"negotiation/internal/core/ports"
	"negotiation/internal/pkg/errs"
)

// AddShipmentCommandHandler attaches a shipment record to an item.
//
// The record's weight and volume come from the product catalog: the chargeable
// weight per unit is the larger of nominal and volumetric weight, multiplied by
// the shipped quantity. Order totals are recomputed to include the freight.
type AddShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
	ids        ports.IDGenerator
	catalog    ports.ProductCatalog
	clock      kernel.Clock
	weigher    services.ShipmentWeigher
	totals     services.TotalsCalculator
}

func NewAddShipmentCommandHandler(
	uowFactory OrderUoWFactory,
	ids ports.IDGenerator,
	catalog ports.ProductCatalog,
	clock kernel.Clock,
) AddShipmentCommandHandler {
	return AddShipmentCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		catalog:    catalog,
		clock:      clock,
		weigher:    services.NewShipmentWeigher(),
		totals:     services.NewTotalsCalculator(),
	}
}

// Handle returns the id of the new shipment record.
func (h *AddShipmentCommandHandler) Handle(ctx context.Context, cmd AddShipmentCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	shipmentID, err := h.ids.NextShipmentID(ctx)
	if err != nil {
		return 0, err
	}

	shipment, err := order.NewShipment(
		shipmentID,
		cmd.ItemID(),
		cmd.Quantity(),
		cmd.FreightValue(),
		cmd.OriginAddress(),
		cmd.DestinationAddress(),
	)
	if err != nil {
		return 0, err
	}
	shipment.UpdateNote(cmd.Note())

	if date := cmd.ScheduledDate(); date != nil {
		if err = shipment.Schedule(*date, h.clock.Now()); err != nil {
			return 0, err
		}
	}

	err = updateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if err := o.Status().ValidateItemMutation("add shipments to"); err != nil {
			return err
		}

		item, ok := o.Item(cmd.ItemID())
		if !ok {
			return errs.NewObjectNotFoundError("itemID", cmd.ItemID().Int64())
		}

		measures, lookupErr := h.catalog.GetMeasures(ctx, item.ProductID())
		if lookupErr != nil {
			return lookupErr
		}
		weight, volume, weighErr := h.weigher.Weigh(measures, shipment.Quantity())
		if weighErr != nil {
			return weighErr
		}
		if err := shipment.UpdateWeightVolume(weight, volume); err != nil {
			return err
		}

		if err := o.AddShipment(item.ID(), shipment); err != nil {
			return err
		}
		return h.totals.Recalculate(o)
	})
	if err != nil {
		return 0, err
	}

	return shipmentID, nil
}
