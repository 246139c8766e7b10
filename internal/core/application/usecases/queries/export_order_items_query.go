package queries

import (
	"errors"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"
)

var (
	ErrExportOrderItemsQueryIsNotConstructed = errors.New(
		"ExportOrderItemsQuery must be created via NewExportOrderItemsQuery constructor",
	)
)

// ExportOrderItemsQuery renders the items of an order as an xlsx workbook.
type ExportOrderItemsQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewExportOrderItemsQuery(orderID kernel.ID) (ExportOrderItemsQuery, error) {
	if err := orderID.Validate("orderID"); err != nil {
		return ExportOrderItemsQuery{}, err
	}
	return ExportOrderItemsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrExportOrderItemsQueryIsNotConstructed)
}

func (q ExportOrderItemsQuery) OrderID() kernel.ID { return q.orderID }

// ExportOrderItemsQueryResponse carries the workbook bytes and a suggested file name.
type ExportOrderItemsQueryResponse struct {
	FileName string
	Content  []byte
}

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
