package commands

import (
	"errors"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddShipmentCommandIsNotConstructed = errors.New(
	"AddShipmentCommand must be created via NewAddShipmentCommand constructor",
)

// AddShipmentCommand represents a shipment plan for part of an item's quantity.
//
// Example:
//
//	date := time.Now().AddDate(0, 0, 3)
//	cmd, err := NewAddShipmentCommand(orderID, itemID, decimal.NewFromInt(10),
//	    decimal.RequireFromString("120.00"), "Warehouse 4", "Farm road 12", &date, "")
type AddShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.ID
	itemID             kernel.ID
	quantity           decimal.Decimal
	freightValue       decimal.Decimal
	originAddress      string
	destinationAddress string
	scheduledDate      *time.Time
	note               string

	guard guard.ConstructorGuard
}

func NewAddShipmentCommand(
	orderID, itemID kernel.ID,
	quantity, freightValue decimal.Decimal,
	originAddress, destinationAddress string,
	scheduledDate *time.Time,
	note string,
) (AddShipmentCommand, error) {
	if err := errors.Join(orderID.Validate("orderID"), itemID.Validate("itemID")); err != nil {
		return AddShipmentCommand{}, err
	}

	var scheduled *time.Time
	if scheduledDate != nil {
		date := *scheduledDate
		scheduled = &date
	}

	return AddShipmentCommand{
		orderID:            orderID,
		itemID:             itemID,
		quantity:           quantity,
		freightValue:       freightValue,
		originAddress:      originAddress,
		destinationAddress: destinationAddress,
		scheduledDate:      scheduled,
		note:               note,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

func (c AddShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentCommandIsNotConstructed)
}

func (c AddShipmentCommand) OrderID() kernel.ID            { return c.orderID }
func (c AddShipmentCommand) ItemID() kernel.ID             { return c.itemID }
func (c AddShipmentCommand) Quantity() decimal.Decimal     { return c.quantity }
func (c AddShipmentCommand) FreightValue() decimal.Decimal { return c.freightValue }
func (c AddShipmentCommand) OriginAddress() string         { return c.originAddress }
func (c AddShipmentCommand) DestinationAddress() string    { return c.destinationAddress }
func (c AddShipmentCommand) ScheduledDate() *time.Time     { return c.scheduledDate }
func (c AddShipmentCommand) Note() string                  { return c.note }
