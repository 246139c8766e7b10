package queries

import (
	"context"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads order detail straight from the tables, without
// restoring the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
// Items keep their insertion order; shipments and proposals are sorted by id
// and creation time.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	resp, found, err := h.header(db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !found {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	if resp.Items, err = h.items(db, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Proposals, err = h.proposals(db, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) header(db *gorm.DB, orderID kernel.ID) (GetOrderQueryResponse, bool, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			supplier_id,
			buyer_id,
			status,
			cart_status,
			allow_direct_contact,
			negotiable,
			interaction_deadline,
			created_at,
			last_modified,
			item_count,
			totals
		FROM orders
		WHERE id = ?
	`, orderID.Int64()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return GetOrderQueryResponse{}, false, rows.Err()
	}

	var resp GetOrderQueryResponse
	var id, supplierID, buyerID int64
	var totals []byte
	err = rows.Scan(
		&id,
		&supplierID,
		&buyerID,
		&resp.Status,
		&resp.CartStatus,
		&resp.AllowDirectContact,
		&resp.Negotiable,
		&resp.InteractionDeadline,
		&resp.CreatedAt,
		&resp.LastModified,
		&resp.ItemCount,
		&totals,
	)
	if err != nil {
		return GetOrderQueryResponse{}, false, err
	}

	resp.ID = kernel.ID(id)
	resp.SupplierID = kernel.ID(supplierID)
	resp.BuyerID = kernel.ID(buyerID)
	if resp.Totals, err = kernel.NewBlob(totals); err != nil {
		return GetOrderQueryResponse{}, false, err
	}

	return resp, true, rows.Err()
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID kernel.ID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT
			i.id,
			i.product_id,
			i.quantity,
			i.unit_price,
			i.discount_percent,
			i.total,
			i.discount_amount,
			i.final_value,
			i.note,
			i.extra_data
		FROM order_items i
		WHERE i.order_id = ?
		ORDER BY i.position, i.id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	index := make(map[kernel.ID]int)
	for rows.Next() {
		var item OrderItemView
		var id, productID int64
		var extraData []byte

		err = rows.Scan(
			&id,
			&productID,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountPercent,
			&item.Total,
			&item.DiscountAmount,
			&item.Final,
			&item.Note,
			&extraData,
		)
		if err != nil {
			return nil, err
		}

		item.ID = kernel.ID(id)
		item.ProductID = kernel.ID(productID)
		if item.ExtraData, err = kernel.NewBlob(extraData); err != nil {
			return nil, err
		}
		item.Shipments = make([]ShipmentView, 0)

		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return items, nil
	}

	shipments, err := db.Raw(`
		SELECT
			s.id,
			s.item_id,
			s.quantity,
			s.freight_value,
			s.scheduled_date,
			s.total_weight,
			s.total_volume,
			s.origin_address,
			s.destination_address,
			s.note
		FROM order_item_shipments s
		JOIN order_items i ON i.id = s.item_id
		WHERE i.order_id = ?
		ORDER BY s.id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer shipments.Close()

	for shipments.Next() {
		var s ShipmentView
		var id, itemID int64
		var weight, volume decimal.NullDecimal

		err = shipments.Scan(
			&id,
			&itemID,
			&s.Quantity,
			&s.FreightValue,
			&s.ScheduledDate,
			&weight,
			&volume,
			&s.OriginAddress,
			&s.DestinationAddress,
			&s.Note,
		)
		if err != nil {
			return nil, err
		}
		s.ID = kernel.ID(id)
		s.TotalWeight = weight
		s.TotalVolume = volume

		if pos, ok := index[kernel.ID(itemID)]; ok {
			items[pos].Shipments = append(items[pos].Shipments, s)
		}
	}

	return items, shipments.Err()
}

func (h GetOrderQueryHandler) proposals(db *gorm.DB, orderID kernel.ID) ([]ProposalView, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			author,
			buyer_action,
			buyer_user_id,
			supplier_user_id,
			note,
			created_at
		FROM order_proposals
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := make([]ProposalView, 0)
	for rows.Next() {
		var p ProposalView
		var id int64
		var buyerUserID, supplierUserID *int64

		err = rows.Scan(
			&id,
			&p.Author,
			&p.BuyerAction,
			&buyerUserID,
			&supplierUserID,
			&p.Note,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		p.ID = kernel.ID(id)
		p.BuyerUserID = optionalID(buyerUserID)
		p.SupplierUserID = optionalID(supplierUserID)
		proposals = append(proposals, p)
	}

	return proposals, rows.Err()
}

func optionalID(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	id := kernel.ID(*v)
	return &id
}
