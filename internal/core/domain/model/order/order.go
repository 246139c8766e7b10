package order

import (
	"errors"
	"fmt"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"
)

// DefaultDeadlineDays is the interaction window granted to a new order.
const DefaultDeadlineDays = 7

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a negotiation between one supplier and one buyer.
// It owns the order items (with their shipment records) and the proposal log.
//
// Order follows these invariants:
//   - itemCount always equals the number of attached items
//   - items are added, removed or edited only while the status is Negotiating
//   - the order cannot be closed without items
//   - Closed, CancelledByBuyer and CancelledByTimeout are terminal
//   - proposals are append-only and accepted in every status
//
// Every mutating operation validates first and changes nothing on failure, then
// stamps lastModified. An Order is not safe for concurrent use; the persistence
// layer guarantees a single writer per order through the Version token.
type Order struct {
	id         kernel.ID
	supplierID kernel.ID
	buyerID    kernel.ID

	status     Status
	cartStatus CartStatus

	allowDirectContact bool
	negotiable         bool

	interactionDeadline time.Time
	createdAt           time.Time
	lastModified        time.Time
	version             time.Time

	totals    kernel.Blob
	itemCount int
	items     []*Item
	proposals []*Proposal

	events []StatusChanged
	clock  kernel.Clock
	guard  guard.ConstructorGuard
}

// Option configures an Order at construction or restoration.
type Option func(*Order)

// WithClock overrides the system clock, mostly in tests and in the timeout sweep.
func WithClock(clock kernel.Clock) Option {
	return func(o *Order) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewOrder creates an order in Negotiating status with an open cart and no items.
//
// Parameters:
//   - id: surrogate id allocated by the caller (must be positive)
//   - supplierID, buyerID: the two parties (must be positive, immutable afterwards)
//   - allowDirectContact, negotiable: buyer-visible policy flags
//   - deadlineDays: length of the interaction window in days (must be positive)
//
// The interaction deadline is set to now + deadlineDays. Violations are reported
// together as errs.ErrInvalidArgument errors.
//
// Example:
//
//	o, err := order.NewOrder(100, 1, 2, true, true, order.DefaultDeadlineDays)
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id, supplierID, buyerID kernel.ID,
	allowDirectContact, negotiable bool,
	deadlineDays int,
	opts ...Option,
) (*Order, error) {
	o := &Order{
		status:             Negotiating,
		cartStatus:         CartOpen,
		allowDirectContact: allowDirectContact,
		negotiable:         negotiable,
		clock:              kernel.SystemClock{},
		guard:              guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(supplierID, buyerID),
		validateDays("deadlineDays", deadlineDays),
	); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	o.createdAt = now
	o.lastModified = now
	o.interactionDeadline = now.AddDate(0, 0, deadlineDays)

	return o, nil
}

// Snapshot is the persisted state of an order, used by RestoreOrder.
type Snapshot struct {
	ID                  kernel.ID
	SupplierID          kernel.ID
	BuyerID             kernel.ID
	Status              Status
	CartStatus          CartStatus
	AllowDirectContact  bool
	Negotiable          bool
	InteractionDeadline time.Time
	CreatedAt           time.Time
	LastModified        time.Time
	Totals              kernel.Blob
	Items               []*Item
	Proposals           []*Proposal
}

// RestoreOrder rebuilds an order from persistence. It is the only way to obtain
// an order in a status other than through the guarded transitions.
//
// The restored LastModified becomes the Version token the repository compares
// against when saving.
func RestoreOrder(s Snapshot, opts ...Option) (*Order, error) {
	o := &Order{
		allowDirectContact:  s.AllowDirectContact,
		negotiable:          s.Negotiable,
		interactionDeadline: s.InteractionDeadline,
		createdAt:           s.CreatedAt,
		lastModified:        s.LastModified,
		version:             s.LastModified,
		totals:              s.Totals,
		clock:               kernel.SystemClock{},
		guard:               guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setParties(s.SupplierID, s.BuyerID),
		s.Status.Validate(),
		s.CartStatus.Validate(),
		o.setItems(s.Items),
		o.setProposals(s.Proposals),
	); err != nil {
		return nil, err
	}
	o.status = s.Status
	o.cartStatus = s.CartStatus

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() kernel.ID                  { return o.id }
func (o *Order) SupplierID() kernel.ID          { return o.supplierID }
func (o *Order) BuyerID() kernel.ID             { return o.buyerID }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) CartStatus() CartStatus         { return o.cartStatus }
func (o *Order) AllowDirectContact() bool       { return o.allowDirectContact }
func (o *Order) Negotiable() bool               { return o.negotiable }
func (o *Order) InteractionDeadline() time.Time { return o.interactionDeadline }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) LastModified() time.Time        { return o.lastModified }
func (o *Order) Totals() kernel.Blob            { return o.totals }
func (o *Order) ItemCount() int                 { return o.itemCount }

// Version is the lastModified value the order was loaded with. It is zero for
// orders that were never persisted.
func (o *Order) Version() time.Time { return o.version }

// Items returns copies of the attached items in insertion order. Changes to the
// copies do not affect the order; use EditItem instead.
func (o *Order) Items() []*Item {
	out := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		out = append(out, item.clone())
	}
	return out
}

// Item returns a copy of the item with the given id.
func (o *Order) Item(itemID kernel.ID) (*Item, bool) {
	item := o.findItem(itemID)
	if item == nil {
		return nil, false
	}
	return item.clone(), true
}

// Proposals returns the negotiation log in chronological order.
func (o *Order) Proposals() []*Proposal {
	out := make([]*Proposal, 0, len(o.proposals))
	for _, p := range o.proposals {
		c := *p
		out = append(out, &c)
	}
	return out
}

// AddItem appends an item to the order.
//
// Business rules:
//   - the order must be Negotiating (errs.ErrStateIsInvalid otherwise)
//   - the item must reference this order and must not already be attached
func (o *Order) AddItem(item *Item) error {
	if err := o.status.ValidateItemMutation("add items to"); err != nil {
		return err
	}
	if err := o.validateNewItem(item); err != nil {
		return err
	}

	o.items = append(o.items, item.clone())
	o.recountItems()
	o.touch()
	return nil
}

// RemoveItem detaches the item with the given id. Removing an unknown id is a
// no-op, but the order must still be Negotiating.
func (o *Order) RemoveItem(itemID kernel.ID) error {
	if err := o.status.ValidateItemMutation("remove items from"); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.id == itemID {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recountItems()
			o.touch()
			return nil
		}
	}
	return nil
}

// EditItem applies fn to a working copy of an attached item and keeps the copy
// only when fn succeeds, so a failed edit leaves the item untouched.
//
// Attached items are editable only while the order is Negotiating. This covers
// quantity, price, discount, note, extra data and the item's shipment records.
//
// Example:
//
//	err := o.EditItem(itemID, func(item *order.Item) error {
//	    return item.UpdateDiscount(decimal.NewFromInt(5))
//	})
func (o *Order) EditItem(itemID kernel.ID, fn func(*Item) error) error {
	if err := o.status.ValidateItemMutation("edit items of"); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.id != itemID {
			continue
		}
		working := item.clone()
		if err := fn(working); err != nil {
			return err
		}
		o.items[idx] = working
		o.touch()
		return nil
	}
	return errs.NewObjectNotFoundError("itemID", itemID)
}

// AddShipment attaches a shipment record to one of the order's items.
func (o *Order) AddShipment(itemID kernel.ID, shipment *Shipment) error {
	return o.EditItem(itemID, func(item *Item) error {
		return item.AddShipment(shipment)
	})
}

// EditShipment applies fn to a working copy of one shipment record. Like every
// item edit it requires a negotiating order and leaves the order untouched when
// fn fails.
func (o *Order) EditShipment(itemID, shipmentID kernel.ID, fn func(*Shipment) error) error {
	return o.EditItem(itemID, func(item *Item) error {
		return item.EditShipment(shipmentID, fn)
	})
}

// RemoveShipment detaches a shipment record from one of the order's items.
// Removing an unknown shipment is a no-op, but the item must exist.
func (o *Order) RemoveShipment(itemID, shipmentID kernel.ID) error {
	return o.EditItem(itemID, func(item *Item) error {
		item.RemoveShipment(shipmentID)
		return nil
	})
}

// AddProposal appends a proposal to the negotiation log and stamps its creation
// time. Proposals are accepted in every status.
func (o *Order) AddProposal(proposal *Proposal) error {
	if err := proposal.Validate(); err != nil {
		return err
	}
	if proposal.orderID != o.id {
		return errs.NewValueIsInvalidErrorWithCause(
			"proposal",
			fmt.Errorf("proposal belongs to order %s, not %s", proposal.orderID, o.id),
		)
	}
	for _, p := range o.proposals {
		if p.id == proposal.id {
			return errs.NewValueIsInvalidErrorWithCause(
				"proposal",
				fmt.Errorf("proposal %s is already in the log", proposal.id),
			)
		}
	}

	appended := *proposal
	appended.createdAt = o.clock.Now()
	o.proposals = append(o.proposals, &appended)
	o.touch()
	return nil
}

// Close ends the negotiation successfully. The order must be Negotiating and
// have at least one item.
func (o *Order) Close() error {
	next, err := o.status.Close(len(o.items) > 0)
	if err != nil {
		return err
	}
	o.transition(next)
	return nil
}

// CancelByBuyer ends the negotiation on the buyer's request. It is allowed with
// or without items, but not once the order is Closed or already cancelled.
func (o *Order) CancelByBuyer() error {
	next, err := o.status.Cancel(CancelledByBuyer)
	if err != nil {
		return err
	}
	o.transition(next)
	return nil
}

// CancelByTimeout ends the negotiation because the interaction deadline passed.
// The order never calls this on its own; the timeout sweep does.
func (o *Order) CancelByTimeout() error {
	next, err := o.status.Cancel(CancelledByTimeout)
	if err != nil {
		return err
	}
	o.transition(next)
	return nil
}

// FinalizeCart marks the buyer cart as finalized.
func (o *Order) FinalizeCart() error {
	if o.cartStatus == CartFinalized {
		return errs.NewStateIsInvalidError("cart is already finalized")
	}
	o.cartStatus = CartFinalized
	o.touch()
	return nil
}

// ReopenCart reopens a finalized cart. Only a negotiating order can reopen its cart.
func (o *Order) ReopenCart() error {
	if err := o.status.ValidateItemMutation("reopen the cart of"); err != nil {
		return err
	}
	if o.cartStatus == CartOpen {
		return errs.NewStateIsInvalidError("cart is already open")
	}
	o.cartStatus = CartOpen
	o.touch()
	return nil
}

// ReplaceTotals stores a recomputed totals document. The content is not interpreted.
func (o *Order) ReplaceTotals(totals kernel.Blob) {
	o.totals = totals
	o.touch()
}

// IsWithinDeadline reports whether now is not past the interaction deadline.
func (o *Order) IsWithinDeadline() bool {
	return !o.clock.Now().After(o.interactionDeadline)
}

// ExtendDeadline resets the interaction deadline to now + days. The new deadline
// does not depend on the previous one.
func (o *Order) ExtendDeadline(days int) error {
	if err := validateDays("days", days); err != nil {
		return err
	}
	o.interactionDeadline = o.clock.Now().AddDate(0, 0, days)
	o.touch()
	return nil
}

// Events returns the domain events raised since the last ClearEvents.
func (o *Order) Events() []StatusChanged {
	out := make([]StatusChanged, len(o.events))
	copy(out, o.events)
	return out
}

// ClearEvents drops raised events once they have been stored.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) transition(next Status) {
	now := o.clock.Now()
	o.events = append(o.events, StatusChanged{
		EventID:    kernel.NewUUID(),
		OrderID:    o.id,
		SupplierID: o.supplierID,
		BuyerID:    o.buyerID,
		From:       o.status,
		To:         next,
		OccurredAt: now,
	})
	o.status = next
	o.touch()
}

func (o *Order) touch() {
	o.lastModified = o.clock.Now()
}

func (o *Order) recountItems() {
	o.itemCount = len(o.items)
}

func (o *Order) findItem(itemID kernel.ID) *Item {
	for _, item := range o.items {
		if item.id == itemID {
			return item
		}
	}
	return nil
}

func (o *Order) validateNewItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.orderID != o.id {
		return errs.NewValueIsInvalidErrorWithCause(
			"item",
			fmt.Errorf("item belongs to order %s, not %s", item.orderID, o.id),
		)
	}
	if o.findItem(item.id) != nil {
		return errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("item %s is already attached", item.id))
	}
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate("id"); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParties(supplierID, buyerID kernel.ID) error {
	if err := errors.Join(supplierID.Validate("supplierID"), buyerID.Validate("buyerID")); err != nil {
		return err
	}
	o.supplierID = supplierID
	o.buyerID = buyerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	o.items = nil
	for _, item := range items {
		if err := o.validateNewItem(item); err != nil {
			return err
		}
		o.items = append(o.items, item.clone())
	}
	o.recountItems()
	return nil
}

func (o *Order) setProposals(proposals []*Proposal) error {
	for _, p := range proposals {
		if err := p.Validate(); err != nil {
			return err
		}
		if p.orderID != o.id {
			return errs.NewValueIsInvalidErrorWithCause(
				"proposal",
				fmt.Errorf("proposal belongs to order %s, not %s", p.orderID, o.id),
			)
		}
	}
	o.proposals = make([]*Proposal, 0, len(proposals))
	for _, p := range proposals {
		restored := *p
		o.proposals = append(o.proposals, &restored)
	}
	return nil
}

func validateDays(paramName string, days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", days))
	}
	return nil
}
