package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// AddLaborCommandHandler handles adding a labor line item to an order.
type AddLaborCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddLaborCommandHandler creates a handler for labor additions.
func NewAddLaborCommandHandler(uowFactory OrderUoWFactory) AddLaborCommandHandler {
	return AddLaborCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-labor command inside a transaction.
func (h *AddLaborCommandHandler) Handle(ctx context.Context, cmd AddLaborCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		labor, err := order.NewLabor(cmd.LaborID(), cmd.Description(), cmd.BillingType(), cmd.Hours(), cmd.Rate())
		if err != nil {
			return err
		}
		return aggregate.AddLabor(labor)
	})
}
