package orderrepo

import (
	"context"
	"errors"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order using optimistic concurrency: the row is
// written only when its stored version still equals expectedVersion, and
// the write advances the version by one. Line items are replaced wholesale;
// within the surrounding transaction the delete and re-insert are atomic.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = expectedVersion + 1

	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("version", "title", "status", "services",
			"hold_reason_code", "hold_reason_other", "resume_status",
			"linked_work_order_ref", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, aggregate, expectedVersion)
	}

	if err = db.Where("order_id = ?", dto.ID).Delete(&PartDTO{}).Error; err != nil {
		return err
	}
	if err = db.Where("order_id = ?", dto.ID).Delete(&LaborDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Parts) > 0 {
		if err = db.Create(&dto.Parts).Error; err != nil {
			return err
		}
	}
	if len(dto.Labor) > 0 {
		if err = db.Create(&dto.Labor).Error; err != nil {
			return err
		}
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMissedUpdate distinguishes a version race from a missing row.
func (r *GormOrderRepository) classifyMissedUpdate(
	ctx context.Context, aggregate *order.Order, expectedVersion int,
) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}
	return errs.NewVersionConflictError("orderId", aggregate.ID().String(), expectedVersion)
}

// Get retrieves an order by ID with its full ledger, line items in their
// original insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Parts", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Labor", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllQuotesInStatus retrieves all quotes currently in the given status.
func (r *GormOrderRepository) GetAllQuotesInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Parts", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Labor", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Find(&dtos, "doc_type = ? AND status = ?", int(order.DocQuote), int(status)).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		quote, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}
