// Package taxpolicy provides the tax rate source used when pricing orders.
package taxpolicy

import (
	"github.com/shopspring/decimal"

	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
)

// FixedRatePolicy applies a single configured tax rate to every order.
type FixedRatePolicy struct {
	rate decimal.Decimal
}

// NewFixedRatePolicy creates a tax policy with the given fractional rate,
// for example 0.08 for an eight percent sales tax.
func NewFixedRatePolicy(rate decimal.Decimal) (*FixedRatePolicy, error) {
	if rate.IsNegative() {
		return nil, errs.NewValueIsOutOfRangeError("taxRate", rate, decimal.Zero, decimal.NewFromInt(1))
	}
	if rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, errs.NewValueIsOutOfRangeError("taxRate", rate, decimal.Zero, decimal.NewFromInt(1))
	}

	return &FixedRatePolicy{rate: rate}, nil
}

// RateFor returns the configured rate regardless of the order.
func (p *FixedRatePolicy) RateFor(_ *order.Order) decimal.Decimal {
	return p.rate
}
