package notesrepo

import (
	"context"

	"repairshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormNotesGateway implements NotesGateway using GORM.
type GormNotesGateway struct {
	db *gorm.DB
}

// NewGormNotesGateway creates a new GORM notes gateway.
func NewGormNotesGateway(db *gorm.DB) *GormNotesGateway {
	return &GormNotesGateway{db: db}
}

// HasNonSystemProgressNote reports whether the order has at least one
// progress note recorded by a human author.
func (g *GormNotesGateway) HasNonSystemProgressNote(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := g.db.WithContext(ctx).Model(&ProgressNoteDTO{}).
		Where("order_id = ? AND author_type <> ?", orderID.Bytes(), "system").
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
