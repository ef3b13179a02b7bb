package commands

import (
	"context"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/services"
	"repairshop/internal/pkg/errs"
)

// ConvertQuoteResult carries both documents as they were committed, so
// callers see the quote's new version and final status without a re-read.
type ConvertQuoteResult struct {
	Quote         *order.Order
	WorkOrder     *order.Order
	QuoteArchived bool
}

// ConvertQuoteCommandHandler handles quote-to-work-order conversion.
//
// The conversion touches two aggregates: the quote loses line items and
// may be consumed or archived, and a brand-new work order receives them.
// Both writes happen inside one unit of work, so either both documents
// land or neither does and every line item keeps exactly one owner.
type ConvertQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
	converter  services.QuoteConverter
}

// NewConvertQuoteCommandHandler creates a handler for quote conversion.
func NewConvertQuoteCommandHandler(uowFactory OrderUoWFactory) ConvertQuoteCommandHandler {
	return ConvertQuoteCommandHandler{
		uowFactory: uowFactory,
		converter:  services.NewQuoteConverter(),
	}
}

// Handle processes the conversion command inside a single transaction and
// returns both resulting documents.
func (h *ConvertQuoteCommandHandler) Handle(
	ctx context.Context, cmd ConvertQuoteCommand,
) (ConvertQuoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConvertQuoteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConvertQuoteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	quote, err := orderRepo.Get(ctx, cmd.QuoteID())
	if err != nil {
		return ConvertQuoteResult{}, err
	}

	if quote.Version() != cmd.ExpectedVersion() {
		return ConvertQuoteResult{}, errs.NewVersionConflictError(
			"quoteId", cmd.QuoteID().String(), cmd.ExpectedVersion())
	}

	workOrder, err := h.converter.Convert(quote, cmd.WorkOrderID(), services.LineItemSelection{
		PartIDs:  cmd.PartIDs(),
		LaborIDs: cmd.LaborIDs(),
	})
	if err != nil {
		return ConvertQuoteResult{}, err
	}

	// Source first, then the new document. If the quote write loses the
	// version race nothing else has been written yet.
	if err = orderRepo.Update(ctx, quote, cmd.ExpectedVersion()); err != nil {
		return ConvertQuoteResult{}, err
	}
	if err = orderRepo.Add(ctx, workOrder); err != nil {
		return ConvertQuoteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConvertQuoteResult{}, err
	}

	return ConvertQuoteResult{
		Quote:         quote,
		WorkOrder:     workOrder,
		QuoteArchived: quote.Status() == order.QuoteArchived,
	}, nil
}
