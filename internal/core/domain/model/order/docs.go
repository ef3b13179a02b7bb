// Package order provides domain entities and business logic for repair-shop
// documents. It implements the Order aggregate root, covering both quotes
// and work orders, with lifecycle management and line-item bookkeeping.
//
// The package includes:
//   - Order: The aggregate root that owns identity, status, and the ledger
//   - Status: A state machine that enforces valid status transitions and
//     derives parts-driven statuses from the ledger
//   - Part, Labor: The two line-item kinds, with their patch types
//   - HoldReason: The tagged reason recorded while an order is on hold
//   - Totals: The derived monetary summary, computed on demand
//
// Key business rules:
//   - A received part is always also ordered
//   - Status changes only through the transition table or the derivation
//     rule, which holds or advances the status but never regresses it
//   - Quotes are editable only while in the Quote status; work orders stop
//     being editable once invoiced or cancelled
//   - Totals are recomputed from the current ledger, never cached
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
