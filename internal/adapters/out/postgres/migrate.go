package postgres

import (
	"fmt"

	"negotiation/internal/adapters/out/postgres/orderrepo"
	"negotiation/internal/adapters/out/postgres/outboxrepo"
	"negotiation/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Sequences backing SequenceIDGenerator.
const (
	orderIDSequence    = "order_id_seq"
	itemIDSequence     = "order_item_id_seq"
	shipmentIDSequence = "order_item_shipment_id_seq"
	proposalIDSequence = "order_proposal_id_seq"
)

var sequences = []string{orderIDSequence, itemIDSequence, shipmentIDSequence, proposalIDSequence}

// Migrate creates or updates the tables and sequences used by the service.
// The products table belongs to the catalog module and is only created here so
// a fresh database is usable.
func Migrate(db *gorm.DB) error {
	for _, seq := range sequences {
		if err := db.Exec(fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", seq)).Error; err != nil {
			return fmt.Errorf("create sequence %s: %w", seq, err)
		}
	}

	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.ShipmentDTO{},
		&orderrepo.ProposalDTO{},
		&outboxrepo.MessageDTO{},
		&productrepo.ProductDTO{},
	)
}
