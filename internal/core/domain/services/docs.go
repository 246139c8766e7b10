// Package services provides domain services for the negotiation model: logic that
// needs more than a single aggregate's state or that owns a schema the aggregate
// treats as opaque.
//
// The package includes:
//   - TotalsCalculator: computes the order totals document
//   - ShipmentWeigher: picks the chargeable weight of a shipment from product measures
package services
