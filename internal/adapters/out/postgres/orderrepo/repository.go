package orderrepo

import (
	"context"
	"errors"
	"time"

	"negotiation/internal/adapters/out/postgres/outboxrepo"
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The aggregate is written whole: the order row, its items with their shipment
// records, the proposal log and the pending status-change events, all in one
// transaction (a savepoint when the repository is bound to a unit of work).
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	opts    []order.Option
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository. opts are applied
// to every order it restores.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, opts ...order.Option) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		opts:    opts,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
			return err
		}
		if err := saveChildren(tx, dto); err != nil {
			return err
		}
		return appendEvents(tx, aggregate.Events())
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The order row is only written
// while its last_modified still equals the version the aggregate was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND last_modified = ?", dto.ID, aggregate.Version()).
			Updates(map[string]any{
				"status":               dto.Status,
				"cart_status":          dto.CartStatus,
				"allow_direct_contact": dto.AllowDirectContact,
				"negotiable":           dto.Negotiable,
				"interaction_deadline": dto.InteractionDeadline,
				"item_count":           dto.ItemCount,
				"totals":               dto.Totals,
				"last_modified":        dto.LastModified,
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return errs.NewObjectNotFoundError("order", dto.ID)
			}
			return errs.NewVersionIsInvalidError("order")
		}

		if err := saveChildren(tx, dto); err != nil {
			return err
		}
		return appendEvents(tx, aggregate.Events())
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with all its children.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate("id"); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Items.Shipments", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Proposals", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto, r.opts...)
}

// ListExpiredNegotiating returns the ids of orders whose interaction window has passed.
func (r *GormOrderRepository) ListExpiredNegotiating(ctx context.Context, now time.Time, limit int) ([]kernel.ID, error) {
	var raw []int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND interaction_deadline < ?", order.Negotiating.String(), now).
		Order("interaction_deadline ASC, id ASC").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, kernel.ID(id))
	}
	return ids, nil
}

// saveChildren makes the stored items, shipments and proposals match dto.
// Proposals are append-only, so existing rows are never touched.
func saveChildren(tx *gorm.DB, dto OrderDTO) error {
	itemIDs := make([]int64, 0, len(dto.Items))
	shipmentIDs := make([]int64, 0)
	shipments := make([]ShipmentDTO, 0)
	for _, item := range dto.Items {
		itemIDs = append(itemIDs, item.ID)
		for _, s := range item.Shipments {
			shipmentIDs = append(shipmentIDs, s.ID)
			shipments = append(shipments, s)
		}
	}

	ownedItems := tx.Model(&ItemDTO{}).Select("id").Where("order_id = ?", dto.ID)
	dropShipments := tx.Where("item_id IN (?)", ownedItems)
	if len(shipmentIDs) > 0 {
		dropShipments = dropShipments.Where("id NOT IN ?", shipmentIDs)
	}
	if err := dropShipments.Delete(&ShipmentDTO{}).Error; err != nil {
		return err
	}

	dropItems := tx.Where("order_id = ?", dto.ID)
	if len(itemIDs) > 0 {
		dropItems = dropItems.Where("id NOT IN ?", itemIDs)
	}
	if err := dropItems.Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		items := make([]ItemDTO, len(dto.Items))
		copy(items, dto.Items)
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&items).Error; err != nil {
			return err
		}
	}

	if len(shipments) > 0 {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&shipments).Error; err != nil {
			return err
		}
	}

	if len(dto.Proposals) > 0 {
		proposals := make([]ProposalDTO, len(dto.Proposals))
		copy(proposals, dto.Proposals)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&proposals).Error; err != nil {
			return err
		}
	}

	return nil
}

func appendEvents(tx *gorm.DB, events []order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]outboxrepo.MessageDTO, 0, len(events))
	for _, event := range events {
		msg, err := outboxrepo.FromStatusChanged(event)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}
	return tx.Create(&messages).Error
}
