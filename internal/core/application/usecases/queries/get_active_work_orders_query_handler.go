package queries

import (
	"context"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveWorkOrdersQueryHandler retrieves in-progress work orders straight
// from the database, skipping aggregate hydration for the list view.
type GetActiveWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveWorkOrdersQueryHandler creates a handler for the active list.
// Requires a GORM database connection for query execution.
func NewGetActiveWorkOrdersQueryHandler(db *gorm.DB) GetActiveWorkOrdersQueryHandler {
	return GetActiveWorkOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns work orders in every status except
// RepairCompleteInvoiced and Cancelled, sorted by last update, most recent
// first.
func (h GetActiveWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWorkOrdersQuery,
) ([]GetActiveWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workOrders := make([]GetActiveWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status,
			version,
			updated_at
		FROM orders
		WHERE doc_type = ?
		  AND status NOT IN (?, ?)
		ORDER BY updated_at DESC
	`, order.DocWorkOrder, order.RepairCompleteInvoiced, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			title     string
			status    int
			version   int
			updatedAt time.Time
		)

		if err = rows.Scan(&id, &title, &status, &version, &updatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		workOrders = append(workOrders, GetActiveWorkOrdersQueryResponse{
			ID:        orderID,
			Title:     title,
			Status:    order.Status(status).String(),
			Version:   version,
			UpdatedAt: updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workOrders, nil
}
