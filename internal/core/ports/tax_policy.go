package ports

import (
	"github.com/shopspring/decimal"

	"repairshop/internal/core/domain/model/order"
)

// TaxPolicy supplies the tax rate applied when an order's totals are
// computed. The rate is a fraction, for example 0.08 for 8 percent, and may
// depend on the order being priced.
type TaxPolicy interface {
	RateFor(o *order.Order) decimal.Decimal
}
