package commands

import (
	"context"
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
)

// errOrderNotExpired aborts the transaction of an order that was extended or
// ended between listing and loading.
var errOrderNotExpired = errors.New("order is no longer expired")

// CancelExpiredOrdersResult reports one sweep.
type CancelExpiredOrdersResult struct {
	Cancelled []kernel.ID
	// Skipped orders changed after they were listed and are no longer expired.
	Skipped []kernel.ID
	Failed  map[kernel.ID]error
}

// CancelExpiredOrdersCommandHandler cancels by timeout every negotiating order
// whose interaction deadline has passed.
//
// Each order is cancelled in its own transaction so that a conflict on one order
// does not hold back the others. The deadline and status are checked again on
// the freshly loaded aggregate.
type CancelExpiredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewCancelExpiredOrdersCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CancelExpiredOrdersCommandHandler {
	return CancelExpiredOrdersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle runs one sweep. It returns an error only when the expired orders cannot
// be listed or ctx is done; per-order failures are reported in the result.
func (h *CancelExpiredOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelExpiredOrdersCommand,
) (CancelExpiredOrdersResult, error) {
	result := CancelExpiredOrdersResult{Failed: make(map[kernel.ID]error)}
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	now := h.clock.Now()
	ids, err := h.uowFactory.Create().OrderRepository().ListExpiredNegotiating(ctx, now, cmd.BatchSize())
	if err != nil {
		return result, err
	}

	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		err = updateOrder(ctx, h.uowFactory, id, func(o *order.Order) error {
			if o.Status() != order.Negotiating || !now.After(o.InteractionDeadline()) {
				return errOrderNotExpired
			}
			return o.CancelByTimeout()
		})

		switch {
		case err == nil:
			result.Cancelled = append(result.Cancelled, id)
		case errors.Is(err, errOrderNotExpired):
			result.Skipped = append(result.Skipped, id)
		default:
			result.Failed[id] = err
		}
	}

	return result, nil
}
