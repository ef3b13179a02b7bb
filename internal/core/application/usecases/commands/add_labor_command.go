package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrAddLaborCommandIsNotConstructed = errors.New(
	"AddLaborCommand must be created via NewAddLaborCommand constructor",
)

// AddLaborCommand represents a request to add a labor line item. Hourly
// items bill rate times hours; fixed items bill the rate once.
type AddLaborCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	laborID         kernel.UUID
	description     string
	billingType     order.BillingType
	hours           decimal.Decimal
	rate            kernel.Money
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewAddLaborCommand creates a command to add a labor line item.
func NewAddLaborCommand(
	orderID, laborID kernel.UUID, description string,
	billingType order.BillingType, hours decimal.Decimal, rate kernel.Money,
	expectedVersion int,
) (AddLaborCommand, error) {
	cmd := AddLaborCommand{
		hours: hours,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		laborID.Validate(),
		billingType.Validate(),
		rate.Validate(),
	); err != nil {
		return AddLaborCommand{}, err
	}
	if description == "" {
		return AddLaborCommand{}, errs.NewValueIsRequiredError("description")
	}
	if expectedVersion < 1 {
		return AddLaborCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.laborID = laborID
	cmd.description = description
	cmd.billingType = billingType
	cmd.rate = rate
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLaborCommand) Validate() error {
	return c.guard.Validate(ErrAddLaborCommandIsNotConstructed)
}

func (c AddLaborCommand) OrderID() kernel.UUID           { return c.orderID }
func (c AddLaborCommand) LaborID() kernel.UUID           { return c.laborID }
func (c AddLaborCommand) Description() string            { return c.description }
func (c AddLaborCommand) BillingType() order.BillingType { return c.billingType }
func (c AddLaborCommand) Hours() decimal.Decimal         { return c.hours }
func (c AddLaborCommand) Rate() kernel.Money             { return c.rate }
func (c AddLaborCommand) ExpectedVersion() int           { return c.expectedVersion }
