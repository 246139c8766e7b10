package commands

import (
	"errors"

	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

// DefaultExpiredBatchSize bounds how many orders one sweep cancels.
const DefaultExpiredBatchSize = 100

var ErrCancelExpiredOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredOrdersCommand must be created via NewCancelExpiredOrdersCommand constructor",
)

// CancelExpiredOrdersCommand asks for one pass of the timeout sweep.
type CancelExpiredOrdersCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewCancelExpiredOrdersCommand creates a sweep over at most batchSize orders.
// Zero selects DefaultExpiredBatchSize.
func NewCancelExpiredOrdersCommand(batchSize int) (CancelExpiredOrdersCommand, error) {
	if batchSize < 0 {
		return CancelExpiredOrdersCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 0, nil)
	}
	if batchSize == 0 {
		batchSize = DefaultExpiredBatchSize
	}

	return CancelExpiredOrdersCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredOrdersCommandIsNotConstructed)
}

func (c CancelExpiredOrdersCommand) BatchSize() int {
	return c.batchSize
}
