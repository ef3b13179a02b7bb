package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrUpdateLaborCommandIsNotConstructed = errors.New(
	"UpdateLaborCommand must be created via NewUpdateLaborCommand constructor",
)

// UpdateLaborCommand represents a partial update to a labor line item.
type UpdateLaborCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	laborID         kernel.UUID
	patch           order.LaborPatch
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewUpdateLaborCommand creates a command to patch a labor line item.
func NewUpdateLaborCommand(
	orderID, laborID kernel.UUID, patch order.LaborPatch, expectedVersion int,
) (UpdateLaborCommand, error) {
	cmd := UpdateLaborCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		laborID.Validate(),
	); err != nil {
		return UpdateLaborCommand{}, err
	}
	if expectedVersion < 1 {
		return UpdateLaborCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.laborID = laborID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLaborCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLaborCommandIsNotConstructed)
}

func (c UpdateLaborCommand) OrderID() kernel.UUID    { return c.orderID }
func (c UpdateLaborCommand) LaborID() kernel.UUID    { return c.laborID }
func (c UpdateLaborCommand) Patch() order.LaborPatch { return c.patch }
func (c UpdateLaborCommand) ExpectedVersion() int    { return c.expectedVersion }
