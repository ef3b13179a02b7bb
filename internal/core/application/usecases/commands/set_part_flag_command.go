package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrSetPartFlagCommandIsNotConstructed = errors.New(
	"SetPartFlagCommand must be created via NewSetPartFlagCommand constructor",
)

// PartFlag names the two tracked procurement flags on a part line item.
type PartFlag string

const (
	PartFlagOrdered  PartFlag = "ordered"
	PartFlagReceived PartFlag = "received"
)

// Validate checks if the flag name is one of the two known flags.
func (f PartFlag) Validate() error {
	if f != PartFlagOrdered && f != PartFlagReceived {
		return errs.NewValueIsInvalidError("flag")
	}
	return nil
}

// SetPartFlagCommand represents a request to set or clear a part's ordered
// or received flag. The aggregate coerces the companion flag so that a
// received part is always also ordered.
type SetPartFlagCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	partID          kernel.UUID
	flag            PartFlag
	value           bool
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewSetPartFlagCommand creates a command to change a part flag.
func NewSetPartFlagCommand(
	orderID, partID kernel.UUID, flag PartFlag, value bool, expectedVersion int,
) (SetPartFlagCommand, error) {
	cmd := SetPartFlagCommand{
		flag:  flag,
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		partID.Validate(),
		flag.Validate(),
	); err != nil {
		return SetPartFlagCommand{}, err
	}
	if expectedVersion < 1 {
		return SetPartFlagCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.partID = partID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartFlagCommand) Validate() error {
	return c.guard.Validate(ErrSetPartFlagCommandIsNotConstructed)
}

func (c SetPartFlagCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetPartFlagCommand) PartID() kernel.UUID  { return c.partID }
func (c SetPartFlagCommand) Flag() PartFlag       { return c.flag }
func (c SetPartFlagCommand) Value() bool          { return c.value }
func (c SetPartFlagCommand) ExpectedVersion() int { return c.expectedVersion }
