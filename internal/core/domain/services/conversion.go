package services

import (
	"fmt"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
)

// LineItemSelection identifies the line items a conversion or split should
// move to the new document. An empty selection means different things to
// different services: the converter treats it as "take everything", the
// splitter rejects it.
type LineItemSelection struct {
	PartIDs  []kernel.UUID
	LaborIDs []kernel.UUID
}

// IsEmpty reports whether the selection names no line items.
func (s LineItemSelection) IsEmpty() bool {
	return len(s.PartIDs) == 0 && len(s.LaborIDs) == 0
}

func (s LineItemSelection) dedupe() LineItemSelection {
	return LineItemSelection{
		PartIDs:  dedupeIDs(s.PartIDs),
		LaborIDs: dedupeIDs(s.LaborIDs),
	}
}

// QuoteConverter is a domain service that turns an accepted quote into a
// work order.
//
// Key responsibilities:
//   - Validating the quote and the selection before any mutation
//   - Moving the selected line items onto a fresh work order
//   - Consuming the quote on a full conversion, archiving it when a
//     partial conversion drains the last line item
//
// Business rules:
//   - Only an active quote can be converted
//   - An empty selection converts the whole quote
//   - Every line item ends up on exactly one document; the sum of items
//     across the quote and the work order equals the original ledger
//   - A rejected conversion leaves both documents untouched
//
// The converter works purely in memory. Persisting both documents in one
// transaction is the caller's job.
type QuoteConverter struct{}

// NewQuoteConverter creates a new QuoteConverter instance.
func NewQuoteConverter() QuoteConverter {
	return QuoteConverter{}
}

// Convert moves the selected line items from the quote onto a new work
// order and returns that work order. The quote is mutated in place: a full
// conversion consumes it with a link to the work order, a partial
// conversion that drains the ledger archives it.
func (c QuoteConverter) Convert(
	quote *order.Order, workOrderID kernel.UUID, selection LineItemSelection,
) (*order.Order, error) {
	if err := quote.Validate(); err != nil {
		return nil, err
	}
	if quote.DocType() != order.DocQuote || quote.Status() != order.Quote {
		return nil, errs.NewInvalidTransitionError(quote.Status().String(), order.QuoteConverted.String())
	}
	if quote.IsLedgerEmpty() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quoteId", fmt.Errorf("quote %s has no line items to convert", quote.ID()))
	}

	// An empty selection asks for a full conversion: the quote is consumed
	// and linked to the one work order that replaced it. An explicit
	// selection is always a partial conversion, even when it happens to
	// drain the ledger, because earlier partials may already have moved
	// items to other work orders and no single link would be truthful.
	full := selection.IsEmpty()
	if full {
		selection = fullSelection(quote)
	}
	selection = selection.dedupe()

	if err := ensureSelectionOnOrder(quote, selection); err != nil {
		return nil, err
	}

	workOrder, err := order.NewWorkOrder(
		workOrderID, quote.CustomerRef(), quote.VehicleRef(), quote.Title(), quote.Services())
	if err != nil {
		return nil, err
	}

	if err := moveSelection(quote, workOrder, selection); err != nil {
		return nil, err
	}

	if full {
		if err := quote.MarkConverted(workOrderID); err != nil {
			return nil, err
		}
	} else {
		quote.ArchiveIfDrained()
	}

	return workOrder, nil
}

// fullSelection names every line item currently on the order.
func fullSelection(o *order.Order) LineItemSelection {
	var selection LineItemSelection
	for _, p := range o.Parts() {
		selection.PartIDs = append(selection.PartIDs, p.ID())
	}
	for _, l := range o.Labor() {
		selection.LaborIDs = append(selection.LaborIDs, l.ID())
	}
	return selection
}

// ensureSelectionOnOrder verifies every selected id is present on the
// source order, so the later extraction cannot fail halfway through.
func ensureSelectionOnOrder(o *order.Order, selection LineItemSelection) error {
	for _, id := range selection.PartIDs {
		if !o.HasPart(id) {
			return errs.NewObjectNotFoundError("partId", id.String())
		}
	}
	for _, id := range selection.LaborIDs {
		if !o.HasLabor(id) {
			return errs.NewObjectNotFoundError("laborId", id.String())
		}
	}
	return nil
}

// moveSelection extracts the selected items from src and appends them to
// dst. Callers have already verified the selection, so every step succeeds
// or reveals a programming error.
func moveSelection(src, dst *order.Order, selection LineItemSelection) error {
	parts, err := src.ExtractParts(selection.PartIDs)
	if err != nil {
		return err
	}
	labor, err := src.ExtractLabor(selection.LaborIDs)
	if err != nil {
		return err
	}

	for _, p := range parts {
		if err := dst.AddPart(p); err != nil {
			return err
		}
	}
	for _, l := range labor {
		if err := dst.AddLabor(l); err != nil {
			return err
		}
	}
	return nil
}

func dedupeIDs(ids []kernel.UUID) []kernel.UUID {
	seen := make(map[string]struct{}, len(ids))
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, id)
	}
	return out
}
