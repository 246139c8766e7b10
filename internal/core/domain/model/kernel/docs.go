// Package kernel provides the domain primitives shared by the negotiation model.
//
// The package includes:
//   - ID: a positive surrogate identifier for orders, items, shipments, proposals
//     and the external parties they reference
//   - UUID: a value object used to identify domain events
//   - Blob: an opaque, well-formed JSON document stored verbatim by aggregates
//   - Clock: the source of "now" for every time-bound business rule
package kernel
