package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// UpdatePartCommandHandler handles partial updates to part line items.
type UpdatePartCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePartCommandHandler creates a handler for part updates.
func NewUpdatePartCommandHandler(uowFactory OrderUoWFactory) UpdatePartCommandHandler {
	return UpdatePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update-part command inside a transaction.
func (h *UpdatePartCommandHandler) Handle(ctx context.Context, cmd UpdatePartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		return aggregate.UpdatePart(cmd.PartID(), cmd.Patch())
	})
}
