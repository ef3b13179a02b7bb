package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/pkg/errs"
)

// SplitWorkOrderResult carries both work orders as they were committed,
// including the source's new version.
type SplitWorkOrderResult struct {
	Source       *order.Order
	NewWorkOrder *order.Order
}

// SplitWorkOrderCommandHandler handles splitting a work order in two.
// Like conversion, the split writes two aggregates inside one unit of
// work so line items never end up owned by both documents or neither.
type SplitWorkOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	splitter   services.WorkOrderSplitter
}

// NewSplitWorkOrderCommandHandler creates a handler for work order splits.
func NewSplitWorkOrderCommandHandler(uowFactory OrderUoWFactory) SplitWorkOrderCommandHandler {
	return SplitWorkOrderCommandHandler{
		uowFactory: uowFactory,
		splitter:   services.NewWorkOrderSplitter(),
	}
}

// Handle processes the split command inside a single transaction and
// returns both resulting work orders.
func (h *SplitWorkOrderCommandHandler) Handle(
	ctx context.Context, cmd SplitWorkOrderCommand,
) (SplitWorkOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SplitWorkOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SplitWorkOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	source, err := orderRepo.Get(ctx, cmd.SourceID())
	if err != nil {
		return SplitWorkOrderResult{}, err
	}

	if source.Version() != cmd.ExpectedVersion() {
		return SplitWorkOrderResult{}, errs.NewVersionConflictError(
			"orderId", cmd.SourceID().String(), cmd.ExpectedVersion())
	}

	split, err := h.splitter.Split(source, cmd.NewWorkOrderID(), cmd.Title(), services.LineItemSelection{
		PartIDs:  cmd.PartIDs(),
		LaborIDs: cmd.LaborIDs(),
	})
	if err != nil {
		return SplitWorkOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, source, cmd.ExpectedVersion()); err != nil {
		return SplitWorkOrderResult{}, err
	}
	if err = orderRepo.Add(ctx, split); err != nil {
		return SplitWorkOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SplitWorkOrderResult{}, err
	}

	return SplitWorkOrderResult{Source: source, NewWorkOrder: split}, nil
}
