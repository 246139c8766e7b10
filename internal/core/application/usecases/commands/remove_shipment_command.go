package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"
)

var ErrRemoveShipmentCommandIsNotConstructed = errors.New(
	"RemoveShipmentCommand must be created via NewRemoveShipmentCommand constructor",
)

// RemoveShipmentCommand represents a request to detach a shipment record from an item.
type RemoveShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	itemID     kernel.ID
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveShipmentCommand(orderID, itemID, shipmentID kernel.ID) (RemoveShipmentCommand, error) {
	if err := errors.Join(
		orderID.Validate("orderID"),
		itemID.Validate("itemID"),
		shipmentID.Validate("shipmentID"),
	); err != nil {
		return RemoveShipmentCommand{}, err
	}

	return RemoveShipmentCommand{
		orderID:    orderID,
		itemID:     itemID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentCommandIsNotConstructed)
}

func (c RemoveShipmentCommand) OrderID() kernel.ID    { return c.orderID }
func (c RemoveShipmentCommand) ItemID() kernel.ID     { return c.itemID }
func (c RemoveShipmentCommand) ShipmentID() kernel.ID { return c.shipmentID }
