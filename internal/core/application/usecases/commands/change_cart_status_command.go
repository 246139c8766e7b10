package commands

import (
	"errors"
	"fmt"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

var ErrChangeCartStatusCommandIsNotConstructed = errors.New(
	"ChangeCartStatusCommand must be created via NewChangeCartStatusCommand constructor",
)

// ChangeCartStatusCommand finalizes or reopens the buyer's cart.
type ChangeCartStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	target  order.CartStatus

	guard guard.ConstructorGuard
}

func NewChangeCartStatusCommand(orderID kernel.ID, target order.CartStatus) (ChangeCartStatusCommand, error) {
	var errTarget error
	if target != order.CartOpen && target != order.CartFinalized {
		errTarget = errs.NewValueIsInvalidErrorWithCause("cartStatus", fmt.Errorf("%s is not a cart status", target))
	}

	if err := errors.Join(orderID.Validate("orderID"), errTarget); err != nil {
		return ChangeCartStatusCommand{}, err
	}

	return ChangeCartStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCartStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartStatusCommandIsNotConstructed)
}

func (c ChangeCartStatusCommand) OrderID() kernel.ID       { return c.orderID }
func (c ChangeCartStatusCommand) Target() order.CartStatus { return c.target }
