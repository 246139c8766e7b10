package postgres

import (
	"context"
	"fmt"

	"negotiation/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// SequenceIDGenerator allocates ids from PostgreSQL sequences created by Migrate.
type SequenceIDGenerator struct {
	db *gorm.DB
}

func NewSequenceIDGenerator(db *gorm.DB) *SequenceIDGenerator {
	return &SequenceIDGenerator{db: db}
}

func (g *SequenceIDGenerator) NextOrderID(ctx context.Context) (kernel.ID, error) {
	return g.next(ctx, orderIDSequence)
}

func (g *SequenceIDGenerator) NextItemID(ctx context.Context) (kernel.ID, error) {
	return g.next(ctx, itemIDSequence)
}

func (g *SequenceIDGenerator) NextShipmentID(ctx context.Context) (kernel.ID, error) {
	return g.next(ctx, shipmentIDSequence)
}

func (g *SequenceIDGenerator) NextProposalID(ctx context.Context) (kernel.ID, error) {
	return g.next(ctx, proposalIDSequence)
}

// next runs outside any unit of work, so a rolled back command burns its id.
func (g *SequenceIDGenerator) next(ctx context.Context, sequence string) (kernel.ID, error) {
	var id int64
	if err := g.db.WithContext(ctx).Raw(fmt.Sprintf("SELECT nextval('%s')", sequence)).Scan(&id).Error; err != nil {
		return 0, fmt.Errorf("allocate id from %s: %w", sequence, err)
	}
	return kernel.ID(id), nil
}
