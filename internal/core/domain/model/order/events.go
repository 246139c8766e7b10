package order

import (
	"time"

	"negotiation/internal/core/domain/model/kernel"
)

// StatusChanged is raised whenever an order leaves Negotiating. The persistence
// layer stores it in the outbox within the same transaction as the order.
type StatusChanged struct {
	EventID    kernel.UUID
	OrderID    kernel.ID
	SupplierID kernel.ID
	BuyerID    kernel.ID
	From       Status
	To         Status
	OccurredAt time.Time
}

// EventName is the routing name used when the event is published.
func (StatusChanged) EventName() string {
	return "order.status_changed"
}
