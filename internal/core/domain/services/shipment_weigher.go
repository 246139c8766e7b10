package services

import (
	"errors"

	"negotiation/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProductMeasures is what the product catalog knows about one unit of a product.
type ProductMeasures struct {
	// NominalWeight is the declared weight of one unit.
	NominalWeight decimal.Decimal
	// VolumetricWeight is derived from the unit's dimensions and density; nil when
	// the product has no dimensions.
	VolumetricWeight *decimal.Decimal
	// UnitVolume is the volume of one unit; nil when unknown.
	UnitVolume *decimal.Decimal
}

// ShipmentWeigher decides which weight a shipment is charged for.
// A shipment weighs the larger of nominal and volumetric weight per unit, times
// the shipped quantity. Volume is unit volume times quantity when known.
type ShipmentWeigher struct{}

func NewShipmentWeigher() ShipmentWeigher {
	return ShipmentWeigher{}
}

// Weigh returns total weight and total volume for quantity units. The volume is
// nil when the product has no unit volume.
func (ShipmentWeigher) Weigh(measures ProductMeasures, quantity decimal.Decimal) (*decimal.Decimal, *decimal.Decimal, error) {
	var errQty, errWeight error
	if !quantity.IsPositive() {
		errQty = errs.NewValueIsInvalidError("quantity")
	}
	if measures.NominalWeight.IsNegative() {
		errWeight = errs.NewValueIsInvalidError("nominalWeight")
	}
	if err := errors.Join(errQty, errWeight); err != nil {
		return nil, nil, err
	}

	unitWeight := measures.NominalWeight
	if measures.VolumetricWeight != nil && measures.VolumetricWeight.GreaterThan(unitWeight) {
		unitWeight = *measures.VolumetricWeight
	}
	weight := unitWeight.Mul(quantity)

	if measures.UnitVolume == nil {
		return &weight, nil, nil
	}
	volume := measures.UnitVolume.Mul(quantity)
	return &weight, &volume, nil
}
