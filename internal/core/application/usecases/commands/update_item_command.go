package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// ItemChanges lists the item fields to change. Nil fields are left as they are.
type ItemChanges struct {
	Quantity        *decimal.Decimal
	UnitPrice       *decimal.Decimal
	DiscountPercent *decimal.Decimal
	Note            *string
	ExtraData       *kernel.Blob
}

func (c ItemChanges) isEmpty() bool {
	return c.Quantity == nil && c.UnitPrice == nil && c.DiscountPercent == nil &&
		c.Note == nil && c.ExtraData == nil
}

// UpdateItemCommand represents an edit of an item already attached to an order.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	itemID  kernel.ID
	changes ItemChanges

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates an item edit. At least one change is required.
func NewUpdateItemCommand(orderID, itemID kernel.ID, changes ItemChanges) (UpdateItemCommand, error) {
	var errChanges error
	if changes.isEmpty() {
		errChanges = errs.NewValueIsRequiredError("changes")
	}

	if err := errors.Join(
		orderID.Validate("orderID"),
		itemID.Validate("itemID"),
		errChanges,
	); err != nil {
		return UpdateItemCommand{}, err
	}

	return UpdateItemCommand{
		orderID: orderID,
		itemID:  itemID,
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

func (c UpdateItemCommand) OrderID() kernel.ID   { return c.orderID }
func (c UpdateItemCommand) ItemID() kernel.ID    { return c.itemID }
func (c UpdateItemCommand) Changes() ItemChanges { return c.changes }
