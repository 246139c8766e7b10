package queries

import (
	"context"
	"fmt"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const itemsSheet = "Items"

var itemsHeader = []any{
	"Item", "Product", "Product name", "Quantity", "Unit price",
	"Discount %", "Total", "Discount", "Final", "Freight", "Note",
}

type exportRow struct {
	itemID          int64
	productID       int64
	productName     *string
	quantity        decimal.Decimal
	unitPrice       decimal.Decimal
	discountPercent decimal.Decimal
	total           decimal.Decimal
	discountAmount  decimal.Decimal
	final           decimal.Decimal
	freight         decimal.Decimal
	note            string
}

// ExportOrderItemsQueryHandler builds a one-sheet workbook with a row per item
// and a closing sum row.
type ExportOrderItemsQueryHandler struct {
	db *gorm.DB
}

func NewExportOrderItemsQueryHandler(db *gorm.DB) ExportOrderItemsQueryHandler {
	return ExportOrderItemsQueryHandler{db: db}
}

func (h ExportOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query ExportOrderItemsQuery,
) (ExportOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrderItemsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE id = ?)`, query.OrderID().Int64()).
		Scan(&exists).Error; err != nil {
		return ExportOrderItemsQueryResponse{}, err
	}
	if !exists {
		return ExportOrderItemsQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	rows, err := h.load(db, query.OrderID())
	if err != nil {
		return ExportOrderItemsQueryResponse{}, err
	}

	content, err := renderItems(rows)
	if err != nil {
		return ExportOrderItemsQueryResponse{}, err
	}

	return ExportOrderItemsQueryResponse{
		FileName: fmt.Sprintf("order-%d-items.xlsx", query.OrderID().Int64()),
		Content:  content,
	}, nil
}

func (h ExportOrderItemsQueryHandler) load(db *gorm.DB, orderID kernel.ID) ([]exportRow, error) {
	rows, err := db.Raw(`
		SELECT
			i.id,
			i.product_id,
			p.name,
			i.quantity,
			i.unit_price,
			i.discount_percent,
			i.total,
			i.discount_amount,
			i.final_value,
			COALESCE((
				SELECT SUM(s.freight_value)
				FROM order_item_shipments s
				WHERE s.item_id = i.id
			), 0),
			i.note
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.position, i.id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]exportRow, 0)
	for rows.Next() {
		var r exportRow
		err = rows.Scan(
			&r.itemID,
			&r.productID,
			&r.productName,
			&r.quantity,
			&r.unitPrice,
			&r.discountPercent,
			&r.total,
			&r.discountAmount,
			&r.final,
			&r.freight,
			&r.note,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

func renderItems(rows []exportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", itemsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(itemsSheet, "A1", &itemsHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err = f.SetRowStyle(itemsSheet, 1, 1, bold); err != nil {
		return nil, err
	}

	var total, discount, final, freight decimal.Decimal
	for i, r := range rows {
		name := ""
		if r.productName != nil {
			name = *r.productName
		}
		values := []any{
			r.itemID, r.productID, name,
			r.quantity.InexactFloat64(),
			r.unitPrice.InexactFloat64(),
			r.discountPercent.InexactFloat64(),
			r.total.InexactFloat64(),
			r.discountAmount.InexactFloat64(),
			r.final.InexactFloat64(),
			r.freight.InexactFloat64(),
			r.note,
		}
		if err = setRow(f, i+2, values); err != nil {
			return nil, err
		}

		total = total.Add(r.total)
		discount = discount.Add(r.discountAmount)
		final = final.Add(r.final)
		freight = freight.Add(r.freight)
	}

	sumRow := len(rows) + 2
	sums := []any{
		"Total", nil, nil, nil, nil, nil,
		total.InexactFloat64(),
		discount.InexactFloat64(),
		final.InexactFloat64(),
		freight.InexactFloat64(),
	}
	if err = setRow(f, sumRow, sums); err != nil {
		return nil, err
	}
	if err = f.SetRowStyle(itemsSheet, sumRow, sumRow, bold); err != nil {
		return nil, err
	}
	if err = f.SetColWidth(itemsSheet, "C", "C", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(itemsSheet, cell, &values)
}
