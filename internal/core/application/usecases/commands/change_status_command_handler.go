package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
)

// ChangeStatusCommandHandler handles explicit status transitions.
//
// The inspection-completion guard needs a fact from outside the aggregate:
// whether a human has recorded a progress note. The handler resolves that
// fact through the notes gateway in the same transaction and hands it to
// the aggregate, which owns the actual decision.
type ChangeStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
func NewChangeStatusCommandHandler(uowFactory UoWFactory) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-change command inside a transaction.
func (h *ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Version() != cmd.ExpectedVersion() {
		return errs.NewVersionConflictError("orderId", cmd.OrderID().String(), cmd.ExpectedVersion())
	}

	var tctx order.TransitionContext
	if aggregate.Status() == order.InspectionInProgress && cmd.Target() == order.InspectionComplete {
		hasNote, err := uow.NotesGateway().HasNonSystemProgressNote(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		tctx.HasNonSystemProgressNote = hasNote
	}

	if err = aggregate.ChangeStatus(cmd.Target(), cmd.HoldReason(), tctx); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, cmd.ExpectedVersion()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
