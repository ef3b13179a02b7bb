// Package queries contains read-side operations in the CQRS architecture.
// Queries never mutate state; they shape stored data into responses.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full ledger and computed
// totals. The response carries the version the client must echo back on
// its next write.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// PartResponse is the read model of a part line item.
type PartResponse struct {
	ID                  kernel.UUID
	Name                string
	PartNumber          string
	Vendor              string
	Supplier            string
	PurchaseOrderNumber string
	Quantity            int
	UnitCost            decimal.Decimal
	UnitPrice           decimal.Decimal
	Ordered             bool
	Received            bool
	Subtotal            decimal.Decimal
}

// LaborResponse is the read model of a labor line item.
type LaborResponse struct {
	ID          kernel.UUID
	Description string
	BillingType string
	Hours       decimal.Decimal
	Rate        decimal.Decimal
	Subtotal    decimal.Decimal
}

// TotalsResponse is the derived monetary summary of an order.
type TotalsResponse struct {
	PartsCost  decimal.Decimal
	LaborCost  decimal.Decimal
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// GetOrderQueryResponse represents a full order document for the API.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	Version            int
	DocType            string
	Status             string
	Title              string
	CustomerRef        kernel.UUID
	VehicleRef         kernel.UUID
	Services           []string
	Parts              []PartResponse
	Labor              []LaborResponse
	HoldReason         string
	ResumeStatus       string
	LinkedWorkOrderRef *kernel.UUID
	Totals             TotalsResponse
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
