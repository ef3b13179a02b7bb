package http

import (
	"time"

	"github.com/shopspring/decimal"

	"repairshop/internal/core/application/usecases/queries"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest opens a new quote or work order. Monetary values in all
// request bodies travel as decimal strings.
type CreateOrderRequest struct {
	DocType     string   `json:"docType"`
	CustomerRef string   `json:"customerRef"`
	VehicleRef  string   `json:"vehicleRef"`
	Title       string   `json:"title"`
	Services    []string `json:"services"`
}

// CreateOrderResponse returns the identifier of the freshly created document.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ChangeStatusRequest moves an order to a new status. HoldReason is required
// exactly when the target status is OnHold.
type ChangeStatusRequest struct {
	Status          string             `json:"status"`
	HoldReason      *HoldReasonRequest `json:"holdReason,omitempty"`
	ExpectedVersion int                `json:"expectedVersion"`
}

// HoldReasonRequest carries the hold reason code and the free text that
// accompanies the "other" code.
type HoldReasonRequest struct {
	Code      string `json:"code"`
	OtherText string `json:"otherText,omitempty"`
}

// AddPartRequest appends a part line item to the order ledger.
type AddPartRequest struct {
	Name            string `json:"name"`
	PartNumber      string `json:"partNumber,omitempty"`
	Vendor          string `json:"vendor,omitempty"`
	Supplier        string `json:"supplier,omitempty"`
	Quantity        int    `json:"quantity"`
	UnitCost        string `json:"unitCost"`
	UnitPrice       string `json:"unitPrice"`
	ExpectedVersion int    `json:"expectedVersion"`
}

// AddLineItemResponse returns the identifier of a freshly added line item.
type AddLineItemResponse struct {
	ID string `json:"id"`
}

// UpdatePartRequest patches a part line item; absent fields stay untouched.
type UpdatePartRequest struct {
	Name                *string `json:"name,omitempty"`
	PartNumber          *string `json:"partNumber,omitempty"`
	Vendor              *string `json:"vendor,omitempty"`
	Supplier            *string `json:"supplier,omitempty"`
	PurchaseOrderNumber *string `json:"purchaseOrderNumber,omitempty"`
	Quantity            *int    `json:"quantity,omitempty"`
	UnitCost            *string `json:"unitCost,omitempty"`
	UnitPrice           *string `json:"unitPrice,omitempty"`
	ExpectedVersion     int     `json:"expectedVersion"`
}

// SetPartFlagRequest raises or clears a procurement flag on a part.
type SetPartFlagRequest struct {
	Flag            string `json:"flag"`
	Value           bool   `json:"value"`
	ExpectedVersion int    `json:"expectedVersion"`
}

// BulkAssignOrderNumberRequest stamps a purchase order number on every
// part from the given vendor.
type BulkAssignOrderNumberRequest struct {
	Vendor          string `json:"vendor"`
	OrderNumber     string `json:"orderNumber"`
	ExpectedVersion int    `json:"expectedVersion"`
}

// AddLaborRequest appends a labor line item to the order ledger.
type AddLaborRequest struct {
	Description     string          `json:"description"`
	BillingType     string          `json:"billingType"`
	Hours           decimal.Decimal `json:"hours"`
	Rate            string          `json:"rate"`
	ExpectedVersion int             `json:"expectedVersion"`
}

// UpdateLaborRequest patches a labor line item; absent fields stay untouched.
type UpdateLaborRequest struct {
	Description     *string          `json:"description,omitempty"`
	BillingType     *string          `json:"billingType,omitempty"`
	Hours           *decimal.Decimal `json:"hours,omitempty"`
	Rate            *string          `json:"rate,omitempty"`
	ExpectedVersion int              `json:"expectedVersion"`
}

// SetServicesRequest replaces the order's requested service list.
type SetServicesRequest struct {
	Services        []string `json:"services"`
	ExpectedVersion int      `json:"expectedVersion"`
}

// ConvertQuoteRequest turns a quote into a work order. An empty selection
// converts the whole quote; naming line items performs a partial conversion.
type ConvertQuoteRequest struct {
	PartIDs         []string `json:"partIds,omitempty"`
	LaborIDs        []string `json:"laborIds,omitempty"`
	ExpectedVersion int      `json:"expectedVersion"`
}

// ConvertQuoteResponse returns both documents as they were committed. The
// quote view carries the version an optimistic caller needs for its next
// write.
type ConvertQuoteResponse struct {
	WorkOrder     OrderView `json:"workOrder"`
	Quote         OrderView `json:"quote"`
	QuoteArchived bool      `json:"quoteArchived"`
}

// SplitWorkOrderRequest carves the selected line items out of a work order
// into a new one. The new document needs its own title and the selection
// must not be empty.
type SplitWorkOrderRequest struct {
	NewTitle        string   `json:"newTitle"`
	PartIDs         []string `json:"partIds,omitempty"`
	LaborIDs        []string `json:"laborIds,omitempty"`
	ExpectedVersion int      `json:"expectedVersion"`
}

// SplitWorkOrderResponse returns both work orders as they were committed.
type SplitWorkOrderResponse struct {
	OriginalWorkOrder OrderView `json:"originalWorkOrder"`
	NewWorkOrder      OrderView `json:"newWorkOrder"`
}

// PartView is the wire shape of a part line item.
type PartView struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	PartNumber          string          `json:"partNumber,omitempty"`
	Vendor              string          `json:"vendor,omitempty"`
	Supplier            string          `json:"supplier,omitempty"`
	PurchaseOrderNumber string          `json:"purchaseOrderNumber,omitempty"`
	Quantity            int             `json:"quantity"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	Ordered             bool            `json:"ordered"`
	Received            bool            `json:"received"`
	Subtotal            decimal.Decimal `json:"subtotal"`
}

// LaborView is the wire shape of a labor line item.
type LaborView struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	BillingType string          `json:"billingType"`
	Hours       decimal.Decimal `json:"hours"`
	Rate        decimal.Decimal `json:"rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// TotalsView is the derived monetary summary of an order.
type TotalsView struct {
	PartsCost  decimal.Decimal `json:"partsCost"`
	LaborCost  decimal.Decimal `json:"laborCost"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// OrderView is the full wire shape of an order document.
type OrderView struct {
	ID                 string      `json:"id"`
	Version            int         `json:"version"`
	DocType            string      `json:"docType"`
	Status             string      `json:"status"`
	Title              string      `json:"title"`
	CustomerRef        string      `json:"customerRef"`
	VehicleRef         string      `json:"vehicleRef"`
	Services           []string    `json:"services"`
	Parts              []PartView  `json:"parts"`
	Labor              []LaborView `json:"labor"`
	HoldReason         string      `json:"holdReason,omitempty"`
	ResumeStatus       string      `json:"resumeStatus,omitempty"`
	LinkedWorkOrderRef string      `json:"linkedWorkOrderRef,omitempty"`
	Totals             TotalsView  `json:"totals"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// WorkOrderListItem is one row of the active work order list.
type WorkOrderListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// toOrderView maps a query response onto the wire shape.
func toOrderView(resp queries.GetOrderQueryResponse) OrderView {
	view := OrderView{
		ID:           resp.ID.String(),
		Version:      resp.Version,
		DocType:      resp.DocType,
		Status:       resp.Status,
		Title:        resp.Title,
		CustomerRef:  resp.CustomerRef.String(),
		VehicleRef:   resp.VehicleRef.String(),
		Services:     resp.Services,
		HoldReason:   resp.HoldReason,
		ResumeStatus: resp.ResumeStatus,
		Totals: TotalsView{
			PartsCost:  resp.Totals.PartsCost,
			LaborCost:  resp.Totals.LaborCost,
			Subtotal:   resp.Totals.Subtotal,
			TaxAmount:  resp.Totals.TaxAmount,
			GrandTotal: resp.Totals.GrandTotal,
		},
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}

	if resp.LinkedWorkOrderRef != nil {
		view.LinkedWorkOrderRef = resp.LinkedWorkOrderRef.String()
	}

	view.Parts = make([]PartView, len(resp.Parts))
	for i, part := range resp.Parts {
		view.Parts[i] = PartView{
			ID:                  part.ID.String(),
			Name:                part.Name,
			PartNumber:          part.PartNumber,
			Vendor:              part.Vendor,
			Supplier:            part.Supplier,
			PurchaseOrderNumber: part.PurchaseOrderNumber,
			Quantity:            part.Quantity,
			UnitCost:            part.UnitCost,
			UnitPrice:           part.UnitPrice,
			Ordered:             part.Ordered,
			Received:            part.Received,
			Subtotal:            part.Subtotal,
		}
	}

	view.Labor = make([]LaborView, len(resp.Labor))
	for i, labor := range resp.Labor {
		view.Labor[i] = LaborView{
			ID:          labor.ID.String(),
			Description: labor.Description,
			BillingType: labor.BillingType,
			Hours:       labor.Hours,
			Rate:        labor.Rate,
			Subtotal:    labor.Subtotal,
		}
	}

	return view
}
