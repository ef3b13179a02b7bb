package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// RemovePartCommandHandler handles deletion of part line items.
type RemovePartCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemovePartCommandHandler creates a handler for part removal.
func NewRemovePartCommandHandler(uowFactory OrderUoWFactory) RemovePartCommandHandler {
	return RemovePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-part command inside a transaction.
func (h *RemovePartCommandHandler) Handle(ctx context.Context, cmd RemovePartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		return aggregate.RemovePart(cmd.PartID())
	})
}
