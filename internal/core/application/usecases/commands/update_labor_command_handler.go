package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// UpdateLaborCommandHandler handles partial updates to labor line items.
type UpdateLaborCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLaborCommandHandler creates a handler for labor updates.
func NewUpdateLaborCommandHandler(uowFactory OrderUoWFactory) UpdateLaborCommandHandler {
	return UpdateLaborCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-labor command inside a transaction.
func (h *UpdateLaborCommandHandler) Handle(ctx context.Context, cmd UpdateLaborCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		return aggregate.UpdateLabor(cmd.LaborID(), cmd.Patch())
	})
}
