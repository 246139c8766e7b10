package services

import (
	"negotiation/internal/core/domain/model/kernel"
	"negotiation/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Totals is the document stored in an order's totals blob.
type Totals struct {
	ItemsTotal    decimal.Decimal `json:"itemsTotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	ItemsFinal    decimal.Decimal `json:"itemsFinal"`
	FreightTotal  decimal.Decimal `json:"freightTotal"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	ItemCount     int             `json:"itemCount"`
}

// TotalsCalculator is the pricing collaborator of the order aggregate. The order
// stores its totals as an opaque blob; this service is the only place that knows
// the blob's schema.
//
// Business rules:
//   - itemsTotal, discountTotal and itemsFinal sum the corresponding item amounts
//   - freightTotal sums the freight of every shipment record of every item
//   - grandTotal = itemsFinal + freightTotal
//
// Example usage:
//
//	calc := services.NewTotalsCalculator()
//	if err := calc.Recalculate(o); err != nil {
//	    return err
//	}
type TotalsCalculator struct{}

func NewTotalsCalculator() TotalsCalculator {
	return TotalsCalculator{}
}

// Calculate computes the totals of an order without changing it.
func (TotalsCalculator) Calculate(o *order.Order) (Totals, error) {
	if err := o.Validate(); err != nil {
		return Totals{}, err
	}

	totals := Totals{
		ItemsTotal:    decimal.Zero,
		DiscountTotal: decimal.Zero,
		ItemsFinal:    decimal.Zero,
		FreightTotal:  decimal.Zero,
	}
	for _, item := range o.Items() {
		totals.ItemsTotal = totals.ItemsTotal.Add(item.Total())
		totals.DiscountTotal = totals.DiscountTotal.Add(item.DiscountAmount())
		totals.ItemsFinal = totals.ItemsFinal.Add(item.Final())
		totals.FreightTotal = totals.FreightTotal.Add(item.FreightTotal())
		totals.ItemCount++
	}
	totals.GrandTotal = totals.ItemsFinal.Add(totals.FreightTotal)

	return totals, nil
}

// Recalculate computes the totals and replaces the order's totals blob.
func (c TotalsCalculator) Recalculate(o *order.Order) error {
	totals, err := c.Calculate(o)
	if err != nil {
		return err
	}
	blob, err := kernel.BlobFromValue(totals)
	if err != nil {
		return err
	}
	o.ReplaceTotals(blob)
	return nil
}

// DecodeTotals reads a totals blob back. The empty blob decodes to zero totals.
func DecodeTotals(blob kernel.Blob) (Totals, error) {
	var totals Totals
	if err := blob.Decode(&totals); err != nil {
		return Totals{}, err
	}
	return totals, nil
}
