package commands

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
)

// mutateOrder runs the standard single-aggregate write cycle shared by the
// ledger command handlers: begin, load, check the expected version, apply
// the mutation, save with optimistic concurrency, commit.
//
// The version check happens twice. Here against the freshly loaded
// aggregate, so a stale client fails fast, and again inside the repository
// update, so a concurrent writer between load and save still loses exactly
// one of the two races.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	expectedVersion int,
	mutate func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if aggregate.Version() != expectedVersion {
		return errs.NewVersionConflictError("orderId", orderID.String(), expectedVersion)
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedVersion); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
