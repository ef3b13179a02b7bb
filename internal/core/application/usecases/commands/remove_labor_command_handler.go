package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// RemoveLaborCommandHandler handles deletion of labor line items.
type RemoveLaborCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveLaborCommandHandler creates a handler for labor removal.
func NewRemoveLaborCommandHandler(uowFactory OrderUoWFactory) RemoveLaborCommandHandler {
	return RemoveLaborCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-labor command inside a transaction.
func (h *RemoveLaborCommandHandler) Handle(ctx context.Context, cmd RemoveLaborCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		return aggregate.RemoveLabor(cmd.LaborID())
	})
}
