package queries

import (
	"errors"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/guard"
)

var ErrGetActiveWorkOrdersQueryIsNotConstructed = errors.New(
	"GetActiveWorkOrdersQuery must be created via NewGetActiveWorkOrdersQuery constructor",
)

// GetActiveWorkOrdersQuery retrieves all work orders still in progress.
// Returns documents that are neither invoiced nor cancelled, for the shop
// floor board.
//
// Example:
//
//	query := NewGetActiveWorkOrdersQuery()
//	handler := NewGetActiveWorkOrdersQueryHandler(db)
//
//	workOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active work orders: %w", err)
//	}
//	fmt.Printf("%d work orders in progress\n", len(workOrders))
type GetActiveWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveWorkOrdersQuery creates a query to retrieve in-progress work orders.
// This is a parameterless query.
func NewGetActiveWorkOrdersQuery() GetActiveWorkOrdersQuery {
	return GetActiveWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWorkOrdersQueryIsNotConstructed)
}

// GetActiveWorkOrdersQueryResponse represents one in-progress work order row.
type GetActiveWorkOrdersQueryResponse struct {
	ID        kernel.UUID
	Title     string
	Status    string
	Version   int
	UpdatedAt time.Time
}
