package productrepo

import (
	"github.com/shopspring/decimal"
)

// ProductDTO is the subset of the product table the negotiation needs.
// Dimensions are in meters and density in kilograms per cubic meter.
type ProductDTO struct {
	ID            int64               `gorm:"primaryKey;autoIncrement:false"`
	Name          string              `gorm:"type:varchar(255);not null"`
	NominalWeight decimal.Decimal     `gorm:"type:numeric;not null"`
	Length        decimal.NullDecimal `gorm:"type:numeric"`
	Width         decimal.NullDecimal `gorm:"type:numeric"`
	Height        decimal.NullDecimal `gorm:"type:numeric"`
	Density       decimal.NullDecimal `gorm:"type:numeric"`
	Active        bool                `gorm:"not null;default:true"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// unitVolume is length x width x height, or nil when a dimension is missing.
func (p ProductDTO) unitVolume() *decimal.Decimal {
	if !p.Length.Valid || !p.Width.Valid || !p.Height.Valid {
		return nil
	}
	v := p.Length.Decimal.Mul(p.Width.Decimal).Mul(p.Height.Decimal)
	return &v
}

// volumetricWeight is unit volume times density, or nil when either is unknown.
func (p ProductDTO) volumetricWeight() *decimal.Decimal {
	volume := p.unitVolume()
	if volume == nil || !p.Density.Valid {
		return nil
	}
	w := volume.Mul(p.Density.Decimal)
	return &w
}
