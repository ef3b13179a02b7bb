package commands

import (
	"errors"

	"repairshop/internal/pkg/guard"
)

var ErrArchiveDrainedQuotesCommandIsNotConstructed = errors.New(
	"ArchiveDrainedQuotesCommand must be created via NewArchiveDrainedQuotesCommand constructor",
)

// ArchiveDrainedQuotesCommand represents a sweep over active quotes that
// archives every quote whose ledger has been drained by partial
// conversions. Run periodically by the background job.
type ArchiveDrainedQuotesCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveDrainedQuotesCommand creates a command to run the archive sweep.
func NewArchiveDrainedQuotesCommand() (ArchiveDrainedQuotesCommand, error) {
	return ArchiveDrainedQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveDrainedQuotesCommand) Validate() error {
	return c.guard.Validate(ErrArchiveDrainedQuotesCommandIsNotConstructed)
}
