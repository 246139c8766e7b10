package ports

import (
	"context"

	"negotiation/internal/core/domain/model/kernel"
)

// IDGenerator allocates surrogate ids. Allocated ids are never reused, even when
// the transaction that requested them rolls back.
type IDGenerator interface {
	NextOrderID(ctx context.Context) (kernel.ID, error)
	NextItemID(ctx context.Context) (kernel.ID, error)
	NextShipmentID(ctx context.Context) (kernel.ID, error)
	NextProposalID(ctx context.Context) (kernel.ID, error)
}
