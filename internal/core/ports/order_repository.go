// Package ports defines the contracts between the negotiation core and its
// infrastructure: persistence, id allocation, the product catalog and the
// notification channel.
package ports

import (
	"context"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always loaded and saved whole: items, shipment records and proposals.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The save succeeds only if the
	// stored lastModified still equals aggregate.Version(); otherwise it returns
	// errs.VersionIsInvalidError and nothing is written.
	//
	// Status-change events raised by the aggregate are written to the outbox in
	// the same transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// ListExpiredNegotiating returns the ids of up to limit orders that are still
	// Negotiating and whose interaction deadline is before now, oldest deadline first.
	ListExpiredNegotiating(ctx context.Context, now time.Time, limit int) ([]kernel.ID, error)
}
