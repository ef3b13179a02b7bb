package order

import (
	"github.com/shopspring/decimal"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
)

// Totals is the derived monetary summary of an order's ledger. It is
// computed on demand from the current line items and is never stored.
type Totals struct {
	PartsCost  kernel.Money
	LaborCost  kernel.Money
	Subtotal   kernel.Money
	TaxAmount  kernel.Money
	GrandTotal kernel.Money
}

// ComputeTotals derives the monetary summary from the order's ledger:
//
//	partsCost  = sum over parts of quantity * unitPrice
//	laborCost  = sum over labor of its billing-rule subtotal
//	subtotal   = partsCost + laborCost
//	taxAmount  = subtotal * taxRate, rounded to 2 decimal places
//	grandTotal = subtotal + taxAmount
//
// The part unit cost is informational and never contributes. The tax rate
// is a fraction, for example 0.08 for 8 percent.
func ComputeTotals(o *Order, taxRate decimal.Decimal) (Totals, error) {
	if err := o.Validate(); err != nil {
		return Totals{}, err
	}
	if taxRate.IsNegative() {
		return Totals{}, errs.NewValueIsInvalidError("taxRate")
	}

	partsCost := kernel.ZeroMoney()
	for _, p := range o.parts {
		partsCost = partsCost.Add(p.Subtotal())
	}

	laborCost := kernel.ZeroMoney()
	for _, l := range o.labor {
		laborCost = laborCost.Add(l.Subtotal())
	}

	subtotal := partsCost.Add(laborCost)

	taxAmount, err := kernel.NewMoney(subtotal.Amount().Mul(taxRate).Round(2))
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		PartsCost:  partsCost,
		LaborCost:  laborCost,
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal.Add(taxAmount),
	}, nil
}
