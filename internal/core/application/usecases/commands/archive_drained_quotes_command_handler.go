package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
)

// ArchiveDrainedQuotesCommandHandler sweeps active quotes and archives the
// ones partial conversions have drained. Normally the conversion handler
// archives a drained quote immediately; the sweep catches quotes drained
// by code paths that predate that behavior and acts as a safety net.
type ArchiveDrainedQuotesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveDrainedQuotesCommandHandler creates a handler for the archive sweep.
func NewArchiveDrainedQuotesCommandHandler(uowFactory OrderUoWFactory) ArchiveDrainedQuotesCommandHandler {
	return ArchiveDrainedQuotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle archives every drained active quote in one transaction and
// returns how many quotes were archived.
func (h *ArchiveDrainedQuotesCommandHandler) Handle(
	ctx context.Context, cmd ArchiveDrainedQuotesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	quotes, err := orderRepo.GetAllQuotesInStatus(ctx, order.Quote)
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, quote := range quotes {
		expectedVersion := quote.Version()
		if !quote.ArchiveIfDrained() {
			continue
		}
		if err = orderRepo.Update(ctx, quote, expectedVersion); err != nil {
			return 0, err
		}
		archived++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return archived, nil
}
