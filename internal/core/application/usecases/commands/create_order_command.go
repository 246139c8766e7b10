package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a negotiation between a
// supplier and a buyer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(supplierID, buyerID, true, true, 0)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, ids, clock)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	supplierID         kernel.ID
	buyerID            kernel.ID
	allowDirectContact bool
	negotiable         bool
	deadlineDays       int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// A deadlineDays of zero selects order.DefaultDeadlineDays; negative values are rejected.
func NewCreateOrderCommand(
	supplierID, buyerID kernel.ID,
	allowDirectContact, negotiable bool,
	deadlineDays int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		allowDirectContact: allowDirectContact,
		negotiable:         negotiable,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParties(supplierID, buyerID),
		cmd.setDeadlineDays(deadlineDays),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) SupplierID() kernel.ID    { return c.supplierID }
func (c CreateOrderCommand) BuyerID() kernel.ID       { return c.buyerID }
func (c CreateOrderCommand) AllowDirectContact() bool { return c.allowDirectContact }
func (c CreateOrderCommand) Negotiable() bool         { return c.negotiable }
func (c CreateOrderCommand) DeadlineDays() int        { return c.deadlineDays }

func (c *CreateOrderCommand) setParties(supplierID, buyerID kernel.ID) error {
	if err := errors.Join(supplierID.Validate("supplierID"), buyerID.Validate("buyerID")); err != nil {
		return err
	}

	c.supplierID = supplierID
	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setDeadlineDays(days int) error {
	if days < 0 {
		return errs.NewValueIsOutOfRangeError("deadlineDays", days, 1, nil)
	}
	if days == 0 {
		days = order.DefaultDeadlineDays
	}

	c.deadlineDays = days
	return nil
}
