package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening a new
// repair document. Quotes start in the Quote status, work orders in Created.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for document creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command inside a transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		aggregate *order.Order
		err       error
	)
	if cmd.DocType() == order.DocQuote {
		aggregate, err = order.NewQuote(
			cmd.OrderID(), cmd.CustomerRef(), cmd.VehicleRef(), cmd.Title(), cmd.Services())
	} else {
		aggregate, err = order.NewWorkOrder(
			cmd.OrderID(), cmd.CustomerRef(), cmd.VehicleRef(), cmd.Title(), cmd.Services())
	}
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
