package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// BulkAssignOrderNumberCommandHandler handles vendor-wide PO assignment.
type BulkAssignOrderNumberCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBulkAssignOrderNumberCommandHandler creates a handler for bulk PO assignment.
func NewBulkAssignOrderNumberCommandHandler(uowFactory OrderUoWFactory) BulkAssignOrderNumberCommandHandler {
	return BulkAssignOrderNumberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk-assign command inside a transaction.
func (h *BulkAssignOrderNumberCommandHandler) Handle(ctx context.Context, cmd BulkAssignOrderNumberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		return aggregate.BulkAssignOrderNumber(cmd.Vendor(), cmd.OrderNumber())
	})
}
