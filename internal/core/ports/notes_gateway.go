package ports

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"
)

// NotesGateway exposes the progress-note facts the status machine's guards
// need. Notes themselves are owned by another part of the system; the
// lifecycle engine only ever asks about them.
type NotesGateway interface {
	// HasNonSystemProgressNote reports whether at least one progress note
	// with a non-system author exists for the order.
	HasNonSystemProgressNote(ctx context.Context, orderID kernel.UUID) (bool, error)
}
