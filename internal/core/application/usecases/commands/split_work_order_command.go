package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrSplitWorkOrderCommandIsNotConstructed = errors.New(
	"SplitWorkOrderCommand must be created via NewSplitWorkOrderCommand constructor",
)

// SplitWorkOrderCommand represents a request to move a subset of a work
// order's line items onto a new work order. The source keeps whatever the
// selection leaves behind, which may be nothing.
type SplitWorkOrderCommand struct { //nolint:recvcheck //using for validation
	sourceID        kernel.UUID
	newWorkOrderID  kernel.UUID
	title           string
	partIDs         []kernel.UUID
	laborIDs        []kernel.UUID
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewSplitWorkOrderCommand creates a command to split a work order. The new
// document carries its own title.
func NewSplitWorkOrderCommand(
	sourceID, newWorkOrderID kernel.UUID, title string,
	partIDs, laborIDs []kernel.UUID, expectedVersion int,
) (SplitWorkOrderCommand, error) {
	cmd := SplitWorkOrderCommand{
		title:    title,
		partIDs:  append([]kernel.UUID(nil), partIDs...),
		laborIDs: append([]kernel.UUID(nil), laborIDs...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sourceID.Validate(),
		newWorkOrderID.Validate(),
	); err != nil {
		return SplitWorkOrderCommand{}, err
	}
	if title == "" {
		return SplitWorkOrderCommand{}, errs.NewValueIsRequiredError("newTitle")
	}
	if len(cmd.partIDs) == 0 && len(cmd.laborIDs) == 0 {
		return SplitWorkOrderCommand{}, errs.NewValueIsRequiredError("selection")
	}
	for _, id := range cmd.partIDs {
		if err := id.Validate(); err != nil {
			return SplitWorkOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("partIds", err)
		}
	}
	for _, id := range cmd.laborIDs {
		if err := id.Validate(); err != nil {
			return SplitWorkOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("laborIds", err)
		}
	}
	if expectedVersion < 1 {
		return SplitWorkOrderCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.sourceID = sourceID
	cmd.newWorkOrderID = newWorkOrderID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SplitWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrSplitWorkOrderCommandIsNotConstructed)
}

func (c SplitWorkOrderCommand) SourceID() kernel.UUID       { return c.sourceID }
func (c SplitWorkOrderCommand) NewWorkOrderID() kernel.UUID { return c.newWorkOrderID }
func (c SplitWorkOrderCommand) Title() string               { return c.title }
func (c SplitWorkOrderCommand) PartIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.partIDs...)
}
func (c SplitWorkOrderCommand) LaborIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.laborIDs...)
}
func (c SplitWorkOrderCommand) ExpectedVersion() int { return c.expectedVersion }
