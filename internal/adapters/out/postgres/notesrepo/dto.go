package notesrepo

import (
	"time"

	"github.com/google/uuid"
)

// ProgressNoteDTO represents a progress note record in the database.
type ProgressNoteDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorType string    `gorm:"not null"`
	Body       string    `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName returns the database table name for progress notes.
func (ProgressNoteDTO) TableName() string {
	return "progress_notes"
}
