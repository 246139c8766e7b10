package order

import (
	"errors"
	"fmt"
	"time"

	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/pkg/errs"
	"negotiation/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrShipmentIsNotConstructed is returned when using a Shipment that was not created via NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is one physical shipment plan covering part or all of an item's quantity.
// Several shipments may jointly cover an item; their quantities are not checked
// against the item's quantity.
type Shipment struct {
	id     kernel.ID
	itemID kernel.ID

	quantity     decimal.Decimal
	freightValue decimal.Decimal

	scheduledDate *time.Time
	totalWeight   *decimal.Decimal
	totalVolume   *decimal.Decimal

	originAddress      string
	destinationAddress string
	note               string
	extraData          kernel.Blob

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment record for an item.
// id and itemID must be positive, quantity greater than 0 and freightValue not negative.
func NewShipment(
	id, itemID kernel.ID,
	quantity, freightValue decimal.Decimal,
	originAddress, destinationAddress string,
) (*Shipment, error) {
	s := &Shipment{
		guard:              guard.NewConstructorGuard(),
		originAddress:      originAddress,
		destinationAddress: destinationAddress,
	}

	if err := errors.Join(
		id.Validate("id"),
		itemID.Validate("itemID"),
		validateQuantity(quantity),
		validateNonNegative("freightValue", freightValue),
	); err != nil {
		return nil, err
	}

	s.id = id
	s.itemID = itemID
	s.quantity = quantity
	s.freightValue = freightValue

	return s, nil
}

// ShipmentState carries the optional fields of a persisted shipment.
type ShipmentState struct {
	ScheduledDate *time.Time
	TotalWeight   *decimal.Decimal
	TotalVolume   *decimal.Decimal
	Note          string
	ExtraData     kernel.Blob
}

// RestoreShipment rebuilds a shipment loaded from persistence. A scheduled date
// in the past is accepted here since it was in the future when it was set.
func RestoreShipment(
	id, itemID kernel.ID,
	quantity, freightValue decimal.Decimal,
	originAddress, destinationAddress string,
	state ShipmentState,
) (*Shipment, error) {
	s, err := NewShipment(id, itemID, quantity, freightValue, originAddress, destinationAddress)
	if err != nil {
		return nil, err
	}
	if err := s.UpdateWeightVolume(state.TotalWeight, state.TotalVolume); err != nil {
		return nil, err
	}
	s.scheduledDate = copyTime(state.ScheduledDate)
	s.note = state.Note
	s.extraData = state.ExtraData
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.ID                 { return s.id }
func (s *Shipment) ItemID() kernel.ID             { return s.itemID }
func (s *Shipment) Quantity() decimal.Decimal     { return s.quantity }
func (s *Shipment) FreightValue() decimal.Decimal { return s.freightValue }
func (s *Shipment) OriginAddress() string         { return s.originAddress }
func (s *Shipment) DestinationAddress() string    { return s.destinationAddress }
func (s *Shipment) Note() string                  { return s.note }
func (s *Shipment) ExtraData() kernel.Blob        { return s.extraData }

// ScheduledDate returns nil when the shipment is not scheduled.
func (s *Shipment) ScheduledDate() *time.Time { return copyTime(s.scheduledDate) }

// TotalWeight returns nil when the weight is unknown.
func (s *Shipment) TotalWeight() *decimal.Decimal { return copyDecimal(s.totalWeight) }

// TotalVolume returns nil when the volume is unknown.
func (s *Shipment) TotalVolume() *decimal.Decimal { return copyDecimal(s.totalVolume) }

// Schedule sets the shipment date, which must be strictly after now.
func (s *Shipment) Schedule(date, now time.Time) error {
	if !date.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduledDate",
			fmt.Errorf("%s is not in the future", date.Format(time.RFC3339)),
		)
	}
	s.scheduledDate = &date
	return nil
}

// UpdateWeightVolume sets the provided values and leaves nil ones untouched.
// Nothing changes when either provided value is negative.
func (s *Shipment) UpdateWeightVolume(weight, volume *decimal.Decimal) error {
	var errWeight, errVolume error
	if weight != nil {
		errWeight = validateNonNegative("totalWeight", *weight)
	}
	if volume != nil {
		errVolume = validateNonNegative("totalVolume", *volume)
	}
	if err := errors.Join(errWeight, errVolume); err != nil {
		return err
	}

	if weight != nil {
		s.totalWeight = copyDecimal(weight)
	}
	if volume != nil {
		s.totalVolume = copyDecimal(volume)
	}
	return nil
}

func (s *Shipment) UpdateFreightValue(freightValue decimal.Decimal) error {
	if err := validateNonNegative("freightValue", freightValue); err != nil {
		return err
	}
	s.freightValue = freightValue
	return nil
}

func (s *Shipment) UpdateAddresses(originAddress, destinationAddress string) {
	s.originAddress = originAddress
	s.destinationAddress = destinationAddress
}

func (s *Shipment) UpdateExtraData(extraData kernel.Blob) {
	s.extraData = extraData
}

func (s *Shipment) UpdateNote(note string) {
	s.note = note
}

func (s *Shipment) clone() *Shipment {
	c := *s
	c.scheduledDate = copyTime(s.scheduledDate)
	c.totalWeight = copyDecimal(s.totalWeight)
	c.totalVolume = copyDecimal(s.totalVolume)
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
