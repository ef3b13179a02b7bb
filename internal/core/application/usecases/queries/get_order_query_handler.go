package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/ports"
)

// GetOrderQueryHandler loads one order with its ledger and computes its
// totals on the way out. Totals are derived at read time from the current
// line items and the configured tax policy; they are never stored, so a
// stale cached figure cannot exist.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
	taxPolicy ports.TaxPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository, taxPolicy ports.TaxPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepo: orderRepo,
		taxPolicy: taxPolicy,
	}
}

// Handle executes the query and shapes the aggregate into the read model.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context, query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return NewGetOrderQueryResponse(aggregate, h.taxPolicy.RateFor(aggregate))
}

// NewGetOrderQueryResponse shapes an order aggregate into the read model,
// computing totals at the given tax rate. Command adapters reuse it to
// return the documents a conversion or split produced.
func NewGetOrderQueryResponse(aggregate *order.Order, taxRate decimal.Decimal) (GetOrderQueryResponse, error) {
	totals, err := order.ComputeTotals(aggregate, taxRate)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:                 aggregate.ID(),
		Version:            aggregate.Version(),
		DocType:            aggregate.DocType().String(),
		Status:             aggregate.Status().String(),
		Title:              aggregate.Title(),
		CustomerRef:        aggregate.CustomerRef(),
		VehicleRef:         aggregate.VehicleRef(),
		Services:           aggregate.Services(),
		LinkedWorkOrderRef: aggregate.LinkedWorkOrderRef(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Totals: TotalsResponse{
			PartsCost:  totals.PartsCost.Amount(),
			LaborCost:  totals.LaborCost.Amount(),
			Subtotal:   totals.Subtotal.Amount(),
			TaxAmount:  totals.TaxAmount.Amount(),
			GrandTotal: totals.GrandTotal.Amount(),
		},
	}

	if reason := aggregate.HoldReason(); reason != nil {
		resp.HoldReason = reason.String()
	}
	if aggregate.ResumeStatus() != order.Unknown {
		resp.ResumeStatus = aggregate.ResumeStatus().String()
	}

	for _, p := range aggregate.Parts() {
		resp.Parts = append(resp.Parts, PartResponse{
			ID:                  p.ID(),
			Name:                p.Name(),
			PartNumber:          p.PartNumber(),
			Vendor:              p.Vendor(),
			Supplier:            p.Supplier(),
			PurchaseOrderNumber: p.PurchaseOrderNumber(),
			Quantity:            p.Quantity(),
			UnitCost:            p.UnitCost().Amount(),
			UnitPrice:           p.UnitPrice().Amount(),
			Ordered:             p.Ordered(),
			Received:            p.Received(),
			Subtotal:            p.Subtotal().Amount(),
		})
	}

	for _, l := range aggregate.Labor() {
		resp.Labor = append(resp.Labor, LaborResponse{
			ID:          l.ID(),
			Description: l.Description(),
			BillingType: l.BillingType().String(),
			Hours:       l.Hours(),
			Rate:        l.Rate().Amount(),
			Subtotal:    l.Subtotal().Amount(),
		})
	}

	return resp, nil
}
