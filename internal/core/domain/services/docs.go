// Package services contains domain services that coordinate behavior across
// order aggregates. Domain services host the logic that does not belong to
// any single aggregate, here the operations that move line items between
// documents.
//
// The package includes:
//   - QuoteConverter: Turns an accepted quote into a work order, fully or
//     one selection at a time
//   - WorkOrderSplitter: Carves part of a work order out into a second
//     work order
//
// Both services validate the whole operation before mutating anything, so
// a rejected call leaves every aggregate exactly as it was. They work
// purely in memory; committing the resulting documents atomically is the
// application layer's responsibility.
package services
