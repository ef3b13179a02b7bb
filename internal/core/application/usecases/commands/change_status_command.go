package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand represents a request to move an order to a new status
// through the transition table. Transitions into OnHold carry a hold
// reason; every request carries the version the client last saw.
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	target          order.Status
	holdReason      *order.HoldReason
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to change an order's status.
// A hold reason is required exactly when the target is OnHold.
func NewChangeStatusCommand(
	orderID kernel.UUID, target order.Status, holdReason *order.HoldReason, expectedVersion int,
) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		holdReason: holdReason,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	if holdReason != nil {
		if err := holdReason.Validate(); err != nil {
			return ChangeStatusCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeStatusCommand) Target() order.Status {
	return c.target
}

// HoldReason returns the hold reason, nil unless the target is OnHold.
func (c ChangeStatusCommand) HoldReason() *order.HoldReason {
	return c.holdReason
}

// ExpectedVersion returns the aggregate version the client last saw.
func (c ChangeStatusCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *ChangeStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ChangeStatusCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 1 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}
	c.expectedVersion = expectedVersion
	return nil
}
