package queries

import (
	"errors"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"
	"negotiation/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists order headers. Every filter is optional: an empty status
// list matches every status and a nil party id matches every party.
//
// Example:
//
//	supplier := kernel.ID(7)
//	query, err := NewGetOrdersQuery([]order.Status{order.Negotiating}, &supplier, nil)
type GetOrdersQuery struct {
	statuses   []order.Status
	supplierID *kernel.ID
	buyerID    *kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(statuses []order.Status, supplierID, buyerID *kernel.ID) (GetOrdersQuery, error) {
	errList := make([]error, 0, len(statuses)+2)
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if supplierID != nil {
		errList = append(errList, supplierID.Validate("supplierID"))
	}
	if buyerID != nil {
		errList = append(errList, buyerID.Validate("buyerID"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		statuses:   append([]order.Status(nil), statuses...),
		supplierID: supplierID,
		buyerID:    buyerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusNames returns the persisted names of the status filter.
func (q GetOrdersQuery) StatusNames() []string {
	names := make([]string, 0, len(q.statuses))
	for _, s := range q.statuses {
		names = append(names, s.String())
	}
	return names
}

func (q GetOrdersQuery) SupplierID() *kernel.ID { return q.supplierID }
func (q GetOrdersQuery) BuyerID() *kernel.ID    { return q.buyerID }

// GetOrdersQueryResponse is one row of the order list.
type GetOrdersQueryResponse struct {
	ID                  kernel.ID
	SupplierID          kernel.ID
	BuyerID             kernel.ID
	Status              string
	CartStatus          string
	InteractionDeadline time.Time
	ItemCount           int
	LastModified        time.Time
}
