package queries

import (
	"errors"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full detail of one order: header, items with their
// shipments, and the negotiation log.
//
// Example:
//
//	query, err := NewGetOrderQuery(100)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order. The id must be positive.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate("orderID"); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID { return q.orderID }

// GetOrderQueryResponse is the read model of an order. Amounts are the values
// stored by the last save, so they match the totals document.
type GetOrderQueryResponse struct {
	ID                  kernel.ID
	SupplierID          kernel.ID
	BuyerID             kernel.ID
	Status              string
	CartStatus          string
	AllowDirectContact  bool
	Negotiable          bool
	InteractionDeadline time.Time
	CreatedAt           time.Time
	LastModified        time.Time
	ItemCount           int
	Totals              kernel.Blob
	Items               []OrderItemView
	Proposals           []ProposalView
}

type OrderItemView struct {
	ID              kernel.ID
	ProductID       kernel.ID
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal
	DiscountAmount  decimal.Decimal
	Final           decimal.Decimal
	Note            string
	ExtraData       kernel.Blob
	Shipments       []ShipmentView
}

type ShipmentView struct {
	ID                 kernel.ID
	Quantity           decimal.Decimal
	FreightValue       decimal.Decimal
	ScheduledDate      *time.Time
	TotalWeight        decimal.NullDecimal
	TotalVolume        decimal.NullDecimal
	OriginAddress      string
	DestinationAddress string
	Note               string
}

// ProposalView is one negotiation log entry. BuyerAction and BuyerUserID are set
// for buyer entries, SupplierUserID for supplier notes.
type ProposalView struct {
	ID             kernel.ID
	Author         string
	BuyerAction    *string
	BuyerUserID    *kernel.ID
	SupplierUserID *kernel.ID
	Note           string
	CreatedAt      time.Time
}
