package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// SetServicesCommandHandler handles replacement of the service list.
type SetServicesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetServicesCommandHandler creates a handler for service-list updates.
func NewSetServicesCommandHandler(uowFactory OrderUoWFactory) SetServicesCommandHandler {
	return SetServicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-services command inside a transaction.
func (h *SetServicesCommandHandler) Handle(ctx context.Context, cmd SetServicesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		return aggregate.SetServices(cmd.Services())
	})
}
