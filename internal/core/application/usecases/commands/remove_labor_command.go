package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrRemoveLaborCommandIsNotConstructed = errors.New(
	"RemoveLaborCommand must be created via NewRemoveLaborCommand constructor",
)

// RemoveLaborCommand represents a request to delete a labor line item.
type RemoveLaborCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	laborID         kernel.UUID
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewRemoveLaborCommand creates a command to delete a labor line item.
func NewRemoveLaborCommand(orderID, laborID kernel.UUID, expectedVersion int) (RemoveLaborCommand, error) {
	cmd := RemoveLaborCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		laborID.Validate(),
	); err != nil {
		return RemoveLaborCommand{}, err
	}
	if expectedVersion < 1 {
		return RemoveLaborCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.laborID = laborID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLaborCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLaborCommandIsNotConstructed)
}

func (c RemoveLaborCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemoveLaborCommand) LaborID() kernel.UUID { return c.laborID }
func (c RemoveLaborCommand) ExpectedVersion() int { return c.expectedVersion }
