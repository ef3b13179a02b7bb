package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrRemovePartCommandIsNotConstructed = errors.New(
	"RemovePartCommand must be created via NewRemovePartCommand constructor",
)

// RemovePartCommand represents a request to delete a part line item.
type RemovePartCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	partID          kernel.UUID
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewRemovePartCommand creates a command to delete a part line item.
func NewRemovePartCommand(orderID, partID kernel.UUID, expectedVersion int) (RemovePartCommand, error) {
	cmd := RemovePartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		partID.Validate(),
	); err != nil {
		return RemovePartCommand{}, err
	}
	if expectedVersion < 1 {
		return RemovePartCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.partID = partID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePartCommand) Validate() error {
	return c.guard.Validate(ErrRemovePartCommandIsNotConstructed)
}

func (c RemovePartCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemovePartCommand) PartID() kernel.UUID  { return c.partID }
func (c RemovePartCommand) ExpectedVersion() int { return c.expectedVersion }
