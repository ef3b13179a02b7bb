package kernel

import (
	"fmt"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney,
// MoneyFromString, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money is an immutable value object holding a non-negative decimal amount.
// All cost and price math in the domain goes through Money so that totals
// are exact; float64 is never used for currency.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("49.99")
//	if err != nil {
//	    // handle validation error
//	}
//	lineTotal := price.MulInt(3) // 149.97
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected: the ledger models costs and prices, and a
// negative line item would corrupt totals.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount))
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal string (e.g. "12.50") into a Money value.
// Returns an error for malformed or negative input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// ZeroMoney returns a valid Money holding zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulInt returns the Money multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(n))),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulDecimal returns the Money multiplied by a decimal factor, e.g. labor
// hours or a tax rate. The factor may not be negative.
func (m Money) MulDecimal(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), guard: guard.NewConstructorGuard()}
}

// IsEqual compares two Money values numerically, ignoring exponent
// representation (1.5 equals 1.50).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
