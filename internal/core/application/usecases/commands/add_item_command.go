package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a product line to an order.
// Amount bounds are enforced by the order item itself.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.ID
	productID       kernel.ID
	quantity        decimal.Decimal
	unitPrice       decimal.Decimal
	discountPercent decimal.Decimal
	note            string
	extraData       kernel.Blob

	guard guard.ConstructorGuard
}

func NewAddItemCommand(
	orderID, productID kernel.ID,
	quantity, unitPrice, discountPercent decimal.Decimal,
	note string,
	extraData kernel.Blob,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		quantity:        quantity,
		unitPrice:       unitPrice,
		discountPercent: discountPercent,
		note:            note,
		extraData:       extraData,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) OrderID() kernel.ID               { return c.orderID }
func (c AddItemCommand) ProductID() kernel.ID             { return c.productID }
func (c AddItemCommand) Quantity() decimal.Decimal        { return c.quantity }
func (c AddItemCommand) UnitPrice() decimal.Decimal       { return c.unitPrice }
func (c AddItemCommand) DiscountPercent() decimal.Decimal { return c.discountPercent }
func (c AddItemCommand) Note() string                     { return c.note }
func (c AddItemCommand) ExtraData() kernel.Blob           { return c.extraData }

func (c *AddItemCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate("orderID"); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setProductID(productID kernel.ID) error {
	if err := productID.Validate("productID"); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
