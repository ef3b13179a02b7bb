// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// covering both quotes and work orders.
//
// Writes use optimistic concurrency: Update compares the caller's expected
// version against the stored row and fails with a VersionConflictError when
// another writer got there first. On success the implementation bumps the
// aggregate's version.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// expectedVersion is the version the caller loaded; a mismatch against
	// the stored row returns a VersionConflictError and writes nothing.
	Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// full line-item ledger. Returns ObjectNotFoundError when no row exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllQuotesInStatus retrieves every quote currently in the given
	// status. Used by the conversion sweeps and the archive job.
	GetAllQuotesInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
