package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"
)

var ErrCloseOrderCommandIsNotConstructed = errors.New(
	"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
)

// CloseOrderCommand represents the successful end of a negotiation.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewCloseOrderCommand(orderID kernel.ID) (CloseOrderCommand, error) {
	if err := orderID.Validate("orderID"); err != nil {
		return CloseOrderCommand{}, err
	}

	return CloseOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

func (c CloseOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
