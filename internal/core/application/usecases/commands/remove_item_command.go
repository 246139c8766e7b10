package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to detach an item from an order.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	itemID  kernel.ID

	guard guard.ConstructorGuard
}

func NewRemoveItemCommand(orderID, itemID kernel.ID) (RemoveItemCommand, error) {
	if err := errors.Join(orderID.Validate("orderID"), itemID.Validate("itemID")); err != nil {
		return RemoveItemCommand{}, err
	}

	return RemoveItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) OrderID() kernel.ID { return c.orderID }
func (c RemoveItemCommand) ItemID() kernel.ID  { return c.itemID }
