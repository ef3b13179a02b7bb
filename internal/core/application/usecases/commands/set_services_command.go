package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrSetServicesCommandIsNotConstructed = errors.New(
	"SetServicesCommand must be created via NewSetServicesCommand constructor",
)

// SetServicesCommand represents a request to replace an order's
// requested-service descriptions. Services are informational and never
// affect totals.
type SetServicesCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	services        []string
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewSetServicesCommand creates a command to replace the service list.
func NewSetServicesCommand(
	orderID kernel.UUID, services []string, expectedVersion int,
) (SetServicesCommand, error) {
	cmd := SetServicesCommand{
		services: append([]string(nil), services...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return SetServicesCommand{}, err
	}
	if expectedVersion < 1 {
		return SetServicesCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.orderID = orderID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetServicesCommand) Validate() error {
	return c.guard.Validate(ErrSetServicesCommandIsNotConstructed)
}

func (c SetServicesCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetServicesCommand) Services() []string   { return append([]string(nil), c.services...) }
func (c SetServicesCommand) ExpectedVersion() int { return c.expectedVersion }
