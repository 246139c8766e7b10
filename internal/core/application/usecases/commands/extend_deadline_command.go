package commands

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

var ErrExtendDeadlineCommandIsNotConstructed = errors.New(
	"ExtendDeadlineCommand must be created via NewExtendDeadlineCommand constructor",
)

// ExtendDeadlineCommand resets an order's interaction deadline to now + days.
type ExtendDeadlineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	days    int

	guard guard.ConstructorGuard
}

func NewExtendDeadlineCommand(orderID kernel.ID, days int) (ExtendDeadlineCommand, error) {
	var errDays error
	if days <= 0 {
		errDays = errs.NewValueIsOutOfRangeError("days", days, 1, nil)
	}

	if err := errors.Join(orderID.Validate("orderID"), errDays); err != nil {
		return ExtendDeadlineCommand{}, err
	}

	return ExtendDeadlineCommand{
		orderID: orderID,
		days:    days,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ExtendDeadlineCommand) Validate() error {
	return c.guard.Validate(ErrExtendDeadlineCommandIsNotConstructed)
}

func (c ExtendDeadlineCommand) OrderID() kernel.ID { return c.orderID }
func (c ExtendDeadlineCommand) Days() int          { return c.days }
