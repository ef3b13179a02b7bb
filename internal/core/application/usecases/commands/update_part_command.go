package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrUpdatePartCommandIsNotConstructed = errors.New(
	"UpdatePartCommand must be created via NewUpdatePartCommand constructor",
)

// UpdatePartCommand represents a partial update to a part line item. Only
// the fields set in the patch change; the patch itself is validated by the
// aggregate against the part's invariants.
type UpdatePartCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	partID          kernel.UUID
	patch           order.PartPatch
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewUpdatePartCommand creates a command to patch a part line item.
func NewUpdatePartCommand(
	orderID, partID kernel.UUID, patch order.PartPatch, expectedVersion int,
) (UpdatePartCommand, error) {
	cmd := UpdatePartCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartID(partID),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return UpdatePartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartCommandIsNotConstructed)
}

func (c UpdatePartCommand) OrderID() kernel.UUID   { return c.orderID }
func (c UpdatePartCommand) PartID() kernel.UUID    { return c.partID }
func (c UpdatePartCommand) Patch() order.PartPatch { return c.patch }
func (c UpdatePartCommand) ExpectedVersion() int   { return c.expectedVersion }

func (c *UpdatePartCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdatePartCommand) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	c.partID = partID
	return nil
}

func (c *UpdatePartCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 1 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}
	c.expectedVersion = expectedVersion
	return nil
}
