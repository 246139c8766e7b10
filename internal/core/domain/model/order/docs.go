// Package order implements the negotiation aggregate: an Order between one
// supplier and one buyer together with its items, shipment records and the
// append-only proposal log.
//
// The package includes:
//   - Order: the aggregate root and the only mutation boundary
//   - Item: a product line with decimal total, discount and final amounts
//   - Shipment: a shipment plan for part of an item's quantity
//   - Proposal: an immutable negotiation message, authored by the buyer
//     (BuyerAction) or by the supplier (SupplierNote)
//   - Status and CartStatus: the commercial state machine and the cart axis
//   - StatusChanged: the event raised when an order leaves Negotiating
//
// Key business rules:
//   - Items change only while the order is Negotiating
//   - An order cannot be closed without items
//   - Closed and both cancelled states are terminal
//   - Proposals are accepted in every status and never change
//
// Argument errors match errs.ErrInvalidArgument, lifecycle violations match
// errs.ErrStateIsInvalid. The package performs no I/O and never logs.
package order
