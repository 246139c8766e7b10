package commands

import (
	"errors"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// ShipmentChanges lists the shipment fields to change. Nil fields are left as they are.
type ShipmentChanges struct {
	FreightValue       *decimal.Decimal
	OriginAddress      *string
	DestinationAddress *string
	ScheduledDate      *time.Time
	Note               *string
}

func (c ShipmentChanges) isEmpty() bool {
	return c.FreightValue == nil && c.OriginAddress == nil && c.DestinationAddress == nil &&
		c.ScheduledDate == nil && c.Note == nil
}

// UpdateShipmentCommand represents an edit of a shipment record already attached to an item.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.ID
	itemID     kernel.ID
	shipmentID kernel.ID
	changes    ShipmentChanges

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a shipment edit. At least one change is required.
func NewUpdateShipmentCommand(
	orderID, itemID, shipmentID kernel.ID,
	changes ShipmentChanges,
) (UpdateShipmentCommand, error) {
	var errChanges error
	if changes.isEmpty() {
		errChanges = errs.NewValueIsRequiredError("changes")
	}

	if err := errors.Join(
		orderID.Validate("orderID"),
		itemID.Validate("itemID"),
		shipmentID.Validate("shipmentID"),
		errChanges,
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return UpdateShipmentCommand{
		orderID:    orderID,
		itemID:     itemID,
		shipmentID: shipmentID,
		changes:    changes,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) OrderID() kernel.ID       { return c.orderID }
func (c UpdateShipmentCommand) ItemID() kernel.ID        { return c.itemID }
func (c UpdateShipmentCommand) ShipmentID() kernel.ID    { return c.shipmentID }
func (c UpdateShipmentCommand) Changes() ShipmentChanges { return c.changes }
