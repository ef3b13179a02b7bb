package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// AddPartCommandHandler handles adding a part line item to an order.
type AddPartCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddPartCommandHandler creates a handler for part additions.
func NewAddPartCommandHandler(uowFactory OrderUoWFactory) AddPartCommandHandler {
	return AddPartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-part command inside a transaction.
func (h *AddPartCommandHandler) Handle(ctx context.Context, cmd AddPartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), cmd.ExpectedVersion(), func(aggregate *order.Order) error {
		part, err := order.NewPart(cmd.PartID(), cmd.Name(), cmd.Quantity(), cmd.UnitCost(), cmd.UnitPrice())
		if err != nil {
			return err
		}

		if err = aggregate.AddPart(part); err != nil {
			return err
		}

		patch := order.PartPatch{}
		if cmd.PartNumber() != "" {
			partNumber := cmd.PartNumber()
			patch.PartNumber = &partNumber
		}
		if cmd.Vendor() != "" {
			vendor := cmd.Vendor()
			patch.Vendor = &vendor
		}
		if cmd.Supplier() != "" {
			supplier := cmd.Supplier()
			patch.Supplier = &supplier
		}
		if patch == (order.PartPatch{}) {
			return nil
		}

		return aggregate.UpdatePart(cmd.PartID(), patch)
	})
}
