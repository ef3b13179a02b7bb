package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrBulkAssignOrderNumberCommandIsNotConstructed = errors.New(
	"BulkAssignOrderNumberCommand must be created via NewBulkAssignOrderNumberCommand constructor",
)

// BulkAssignOrderNumberCommand represents a request to stamp a purchase
// order number on every part from one vendor and mark those parts ordered.
// Safe to retry: the operation is idempotent.
type BulkAssignOrderNumberCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	vendor          string
	orderNumber     string
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewBulkAssignOrderNumberCommand creates a command to bulk-assign a PO number.
func NewBulkAssignOrderNumberCommand(
	orderID kernel.UUID, vendor, orderNumber string, expectedVersion int,
) (BulkAssignOrderNumberCommand, error) {
	cmd := BulkAssignOrderNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return BulkAssignOrderNumberCommand{}, err
	}
	if vendor == "" {
		return BulkAssignOrderNumberCommand{}, errs.NewValueIsRequiredError("vendor")
	}
	if orderNumber == "" {
		return BulkAssignOrderNumberCommand{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if expectedVersion < 1 {
		return BulkAssignOrderNumberCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.vendor = vendor
	cmd.orderNumber = orderNumber
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignOrderNumberCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignOrderNumberCommandIsNotConstructed)
}

func (c BulkAssignOrderNumberCommand) OrderID() kernel.UUID { return c.orderID }
func (c BulkAssignOrderNumberCommand) Vendor() string       { return c.vendor }
func (c BulkAssignOrderNumberCommand) OrderNumber() string  { return c.orderNumber }
func (c BulkAssignOrderNumberCommand) ExpectedVersion() int { return c.expectedVersion }
