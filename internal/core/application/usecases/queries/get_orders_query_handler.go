package queries

import (
	"context"
	"strings"

	"negotiation/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders matching the query filters, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if names := query.StatusNames(); len(names) > 0 {
		conditions = append(conditions, "status = ANY(?::text[])")
		args = append(args, pq.Array(names))
	}
	if id := query.SupplierID(); id != nil {
		conditions = append(conditions, "supplier_id = ?")
		args = append(args, id.Int64())
	}
	if id := query.BuyerID(); id != nil {
		conditions = append(conditions, "buyer_id = ?")
		args = append(args, id.Int64())
	}

	sql := `
		SELECT
			id,
			supplier_id,
			buyer_id,
			status,
			cart_status,
			interaction_deadline,
			item_count,
			last_modified
		FROM orders`
	if len(conditions) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	sql += "\n\t\tORDER BY created_at DESC, id DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, supplierID, buyerID int64

		err = rows.Scan(
			&id,
			&supplierID,
			&buyerID,
			&resp.Status,
			&resp.CartStatus,
			&resp.InteractionDeadline,
			&resp.ItemCount,
			&resp.LastModified,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = kernel.ID(id)
		resp.SupplierID = kernel.ID(supplierID)
		resp.BuyerID = kernel.ID(buyerID)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
