package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// SetPartFlagCommandHandler handles ordered/received flag changes. Flag
// changes are the main driver of status derivation: marking the last part
// received moves the order to PartsReceived without a separate request.
type SetPartFlagCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPartFlagCommandHandler creates a handler for part flag changes.
func NewSetPartFlagCommandHandler(uowFactory OrderUoWFactory) SetPartFlagCommandHandler {
	return SetPartFlagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the flag-change command inside a transaction.
func (h *SetPartFlagCommandHandler) Handle(ctx context.Context, cmd SetPartFlagCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		if cmd.Flag() == PartFlagOrdered {
			return aggregate.SetPartOrdered(cmd.PartID(), cmd.Value())
		}
		return aggregate.SetPartReceived(cmd.PartID(), cmd.Value())
	})
}
