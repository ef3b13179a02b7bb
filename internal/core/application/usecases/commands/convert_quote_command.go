package commands

import (
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

var ErrConvertQuoteCommandIsNotConstructed = errors.New(
	"ConvertQuoteCommand must be created via NewConvertQuoteCommand constructor",
)

// ConvertQuoteCommand represents a request to convert a quote into a work
// order. Empty id lists convert the whole quote; naming specific line
// items performs a partial conversion.
//
// Example:
//
//	cmd, err := NewConvertQuoteCommand(quoteID, workOrderID, nil, nil, version)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewConvertQuoteCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("conversion failed: %w", err)
//	}
type ConvertQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID         kernel.UUID
	workOrderID     kernel.UUID
	partIDs         []kernel.UUID
	laborIDs        []kernel.UUID
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewConvertQuoteCommand creates a command to convert a quote.
// workOrderID is the identifier the new work order will carry.
func NewConvertQuoteCommand(
	quoteID, workOrderID kernel.UUID, partIDs, laborIDs []kernel.UUID, expectedVersion int,
) (ConvertQuoteCommand, error) {
	cmd := ConvertQuoteCommand{
		partIDs:  append([]kernel.UUID(nil), partIDs...),
		laborIDs: append([]kernel.UUID(nil), laborIDs...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quoteID.Validate(),
		workOrderID.Validate(),
	); err != nil {
		return ConvertQuoteCommand{}, err
	}
	for _, id := range cmd.partIDs {
		if err := id.Validate(); err != nil {
			return ConvertQuoteCommand{}, errs.NewValueIsInvalidErrorWithCause("partIds", err)
		}
	}
	for _, id := range cmd.laborIDs {
		if err := id.Validate(); err != nil {
			return ConvertQuoteCommand{}, errs.NewValueIsInvalidErrorWithCause("laborIds", err)
		}
	}
	if expectedVersion < 1 {
		return ConvertQuoteCommand{}, errs.NewValueIsInvalidError("expectedVersion")
	}

	cmd.quoteID = quoteID
	cmd.workOrderID = workOrderID
	cmd.expectedVersion = expectedVersion
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConvertQuoteCommand) Validate() error {
	return c.guard.Validate(ErrConvertQuoteCommandIsNotConstructed)
}

func (c ConvertQuoteCommand) QuoteID() kernel.UUID     { return c.quoteID }
func (c ConvertQuoteCommand) WorkOrderID() kernel.UUID { return c.workOrderID }
func (c ConvertQuoteCommand) PartIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.partIDs...)
}
func (c ConvertQuoteCommand) LaborIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.laborIDs...)
}
func (c ConvertQuoteCommand) ExpectedVersion() int { return c.expectedVersion }
