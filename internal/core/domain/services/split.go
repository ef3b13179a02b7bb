package services

import (
	"fmt"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
)

// WorkOrderSplitter is a domain service that carves a subset of a work
// order's line items out into a second work order, so independent streams
// of repair work can progress and be billed separately.
//
// Business rules:
//   - Only an editable work order can be split
//   - The new document needs its own title and the selection must name at
//     least one line item; the source keeps whatever complement remains,
//     which may be nothing
//   - Line items keep their state across the move; the two ledgers
//     together equal the original
//   - A rejected split leaves the source untouched
//
// Like the converter, the splitter works purely in memory and leaves
// transactional persistence to the caller.
type WorkOrderSplitter struct{}

// NewWorkOrderSplitter creates a new WorkOrderSplitter instance.
func NewWorkOrderSplitter() WorkOrderSplitter {
	return WorkOrderSplitter{}
}

// Split moves the selected line items from the source work order onto a new
// work order and returns it. The new document starts in the Created status
// and carries the source's customer and vehicle references under the given
// title.
func (s WorkOrderSplitter) Split(
	source *order.Order, newWorkOrderID kernel.UUID, title string, selection LineItemSelection,
) (*order.Order, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}
	if source.DocType() != order.DocWorkOrder {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderId", fmt.Errorf("order %s is a %s, only work orders can be split", source.ID(), source.DocType()))
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("newTitle")
	}
	if selection.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("selection")
	}

	selection = selection.dedupe()
	if err := ensureSelectionOnOrder(source, selection); err != nil {
		return nil, err
	}

	workOrder, err := order.NewWorkOrder(
		newWorkOrderID, source.CustomerRef(), source.VehicleRef(), title, source.Services())
	if err != nil {
		return nil, err
	}

	if err := moveSelection(source, workOrder, selection); err != nil {
		return nil, err
	}

	return workOrder, nil
}
