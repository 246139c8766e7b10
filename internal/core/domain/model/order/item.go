package order

import (
	"errors"
	"fmt"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when using an Item that was not created via NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	hundred = decimal.NewFromInt(100)
)

// Item is one product line of an order. It holds a plain reference to its order
// and owns zero or more shipment records.
//
// The monetary fields are derived and recomputed on every change of quantity,
// unit price or discount:
//
//	total          = quantity * unitPrice
//	discountAmount = total * discountPercent / 100
//	final          = total - discountAmount
//
// Item setters validate their own input only. Whether an attached item may be
// edited is decided by the owning Order (see Order.EditItem).
type Item struct {
	id        kernel.ID
	orderID   kernel.ID
	productID kernel.ID

	quantity        decimal.Decimal
	unitPrice       decimal.Decimal
	discountPercent decimal.Decimal

	total          decimal.Decimal
	discountAmount decimal.Decimal
	final          decimal.Decimal

	note      string
	extraData kernel.Blob
	shipments []*Shipment

	guard guard.ConstructorGuard
}

// NewItem creates an order line and computes its derived amounts.
//
// Validation:
//   - id, orderID and productID must be positive
//   - quantity must be greater than 0
//   - unitPrice must not be negative
//   - discountPercent must be within [0, 100]
//
// All violations are reported together, each naming the offending field.
func NewItem(
	id, orderID, productID kernel.ID,
	quantity, unitPrice, discountPercent decimal.Decimal,
	note string,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
		note:  note,
	}

	if err := errors.Join(
		item.setIDs(id, orderID, productID),
		validateQuantity(quantity),
		validateNonNegative("unitPrice", unitPrice),
		validateDiscount(discountPercent),
	); err != nil {
		return nil, err
	}

	item.quantity = quantity
	item.unitPrice = unitPrice
	item.discountPercent = discountPercent
	item.recalculate()

	return item, nil
}

// RestoreItem rebuilds an item loaded from persistence. Derived amounts are
// recomputed rather than trusted.
func RestoreItem(
	id, orderID, productID kernel.ID,
	quantity, unitPrice, discountPercent decimal.Decimal,
	note string,
	extraData kernel.Blob,
	shipments []*Shipment,
) (*Item, error) {
	item, err := NewItem(id, orderID, productID, quantity, unitPrice, discountPercent, note)
	if err != nil {
		return nil, err
	}
	item.extraData = extraData

	for _, s := range shipments {
		if err := item.AddShipment(s); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.ID                    { return i.id }
func (i *Item) OrderID() kernel.ID               { return i.orderID }
func (i *Item) ProductID() kernel.ID             { return i.productID }
func (i *Item) Quantity() decimal.Decimal        { return i.quantity }
func (i *Item) UnitPrice() decimal.Decimal       { return i.unitPrice }
func (i *Item) DiscountPercent() decimal.Decimal { return i.discountPercent }
func (i *Item) Total() decimal.Decimal           { return i.total }
func (i *Item) DiscountAmount() decimal.Decimal  { return i.discountAmount }
func (i *Item) Final() decimal.Decimal           { return i.final }
func (i *Item) Note() string                     { return i.note }
func (i *Item) ExtraData() kernel.Blob           { return i.extraData }

// Shipments returns copies of the item's shipment records in insertion order.
func (i *Item) Shipments() []*Shipment {
	out := make([]*Shipment, 0, len(i.shipments))
	for _, s := range i.shipments {
		out = append(out, s.clone())
	}
	return out
}

// FreightTotal sums the freight value of all shipment records.
func (i *Item) FreightTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range i.shipments {
		sum = sum.Add(s.freightValue)
	}
	return sum
}

// UpdateQuantity sets a new quantity and recomputes the derived amounts.
func (i *Item) UpdateQuantity(quantity decimal.Decimal) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	i.quantity = quantity
	i.recalculate()
	return nil
}

// UpdatePrice sets a new unit price and recomputes the derived amounts.
func (i *Item) UpdatePrice(unitPrice decimal.Decimal) error {
	if err := validateNonNegative("unitPrice", unitPrice); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	i.recalculate()
	return nil
}

// UpdateDiscount sets a new discount percentage and recomputes the derived amounts.
func (i *Item) UpdateDiscount(discountPercent decimal.Decimal) error {
	if err := validateDiscount(discountPercent); err != nil {
		return err
	}
	i.discountPercent = discountPercent
	i.recalculate()
	return nil
}

func (i *Item) UpdateNote(note string) {
	i.note = note
}

func (i *Item) UpdateExtraData(extraData kernel.Blob) {
	i.extraData = extraData
}

// AddShipment attaches a copy of the shipment record. The record must reference
// this item and its id must not already be attached.
func (i *Item) AddShipment(shipment *Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}
	if shipment.itemID != i.id {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			fmt.Errorf("shipment belongs to item %s, not %s", shipment.itemID, i.id),
		)
	}
	if i.findShipment(shipment.id) != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			fmt.Errorf("shipment %s is already attached", shipment.id),
		)
	}
	i.shipments = append(i.shipments, shipment.clone())
	return nil
}

// RemoveShipment detaches a shipment record. Unknown ids are ignored.
func (i *Item) RemoveShipment(shipmentID kernel.ID) {
	for idx, s := range i.shipments {
		if s.id == shipmentID {
			i.shipments = append(i.shipments[:idx], i.shipments[idx+1:]...)
			return
		}
	}
}

// EditShipment applies fn to a working copy of the shipment with the given id
// and keeps the copy only when fn succeeds.
func (i *Item) EditShipment(shipmentID kernel.ID, fn func(*Shipment) error) error {
	for idx, s := range i.shipments {
		if s.id != shipmentID {
			continue
		}
		working := s.clone()
		if err := fn(working); err != nil {
			return err
		}
		i.shipments[idx] = working
		return nil
	}
	return errs.NewObjectNotFoundError("shipmentID", shipmentID)
}

func (i *Item) findShipment(id kernel.ID) *Shipment {
	for _, s := range i.shipments {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (i *Item) recalculate() {
	i.total = i.quantity.Mul(i.unitPrice)
	i.discountAmount = i.total.Mul(i.discountPercent).Div(hundred)
	i.final = i.total.Sub(i.discountAmount)
}

func (i *Item) clone() *Item {
	c := *i
	c.shipments = i.Shipments()
	return &c
}

func (i *Item) setIDs(id, orderID, productID kernel.ID) error {
	if err := errors.Join(
		id.Validate("id"),
		orderID.Validate("orderID"),
		productID.Validate("productID"),
	); err != nil {
		return err
	}
	i.id = id
	i.orderID = orderID
	i.productID = productID
	return nil
}

func validateQuantity(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	return nil
}

func validateNonNegative(paramName string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", value))
	}
	return nil
}

func validateDiscount(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return errs.NewValueIsOutOfRangeError("discountPercent", percent, 0, 100)
	}
	return nil
}
