// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// One table holds both quotes and work orders, discriminated by doc_type;
// the version column carries the optimistic-concurrency counter.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version            int       `gorm:"not null"`
	DocType            int       `gorm:"index;not null"`
	CustomerRef        uuid.UUID `gorm:"type:uuid;index"`
	VehicleRef         uuid.UUID `gorm:"type:uuid;index"`
	Title              string
	Status             int `gorm:"index;not null"`
	Services           string
	HoldReasonCode     *int
	HoldReasonOther    string
	ResumeStatus       int
	LinkedWorkOrderRef *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Parts []PartDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Labor []LaborDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PartDTO represents one part line item row. Position preserves insertion
// order across reloads.
type PartDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index;not null"`
	Position            int       `gorm:"not null"`
	Name                string
	PartNumber          string
	Vendor              string `gorm:"index"`
	Supplier            string
	PurchaseOrderNumber string
	Quantity            int
	UnitCost            decimal.Decimal `gorm:"type:numeric(12,2)"`
	UnitPrice           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Ordered             bool
	Received            bool
}

// TableName specifies the database table name for part line items.
func (PartDTO) TableName() string {
	return "order_parts"
}

// LaborDTO represents one labor line item row.
type LaborDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Position    int       `gorm:"not null"`
	Description string
	BillingType int
	Hours       decimal.Decimal `gorm:"type:numeric(8,2)"`
	Rate        decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for labor line items.
func (LaborDTO) TableName() string {
	return "order_labor"
}

// fromDomain converts an order domain aggregate to its database
// representation, line items included.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	services, err := json.Marshal(aggregate.Services())
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Version:      aggregate.Version(),
		DocType:      int(aggregate.DocType()),
		CustomerRef:  aggregate.CustomerRef().Bytes(),
		VehicleRef:   aggregate.VehicleRef().Bytes(),
		Title:        aggregate.Title(),
		Status:       int(aggregate.Status()),
		Services:     string(services),
		ResumeStatus: int(aggregate.ResumeStatus()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}

	if reason := aggregate.HoldReason(); reason != nil {
		code := int(reason.Code())
		dto.HoldReasonCode = &code
		dto.HoldReasonOther = reason.OtherText()
	}

	if ref := aggregate.LinkedWorkOrderRef(); ref != nil {
		raw := ref.Bytes()
		dto.LinkedWorkOrderRef = &raw
	}

	for i, p := range aggregate.Parts() {
		dto.Parts = append(dto.Parts, PartDTO{
			ID:                  p.ID().Bytes(),
			OrderID:             dto.ID,
			Position:            i,
			Name:                p.Name(),
			PartNumber:          p.PartNumber(),
			Vendor:              p.Vendor(),
			Supplier:            p.Supplier(),
			PurchaseOrderNumber: p.PurchaseOrderNumber(),
			Quantity:            p.Quantity(),
			UnitCost:            p.UnitCost().Amount(),
			UnitPrice:           p.UnitPrice().Amount(),
			Ordered:             p.Ordered(),
			Received:            p.Received(),
		})
	}

	for i, l := range aggregate.Labor() {
		dto.Labor = append(dto.Labor, LaborDTO{
			ID:          l.ID().Bytes(),
			OrderID:     dto.ID,
			Position:    i,
			Description: l.Description(),
			BillingType: int(l.BillingType()),
			Hours:       l.Hours(),
			Rate:        l.Rate().Amount(),
		})
	}

	return dto, nil
}

// toDomain converts a database DTO to an order domain aggregate via
// RestoreOrder, re-running the domain's construction invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerRef, err := kernel.UUIDFromBytes(dto.CustomerRef[:])
	if err != nil {
		return nil, err
	}
	vehicleRef, err := kernel.UUIDFromBytes(dto.VehicleRef[:])
	if err != nil {
		return nil, err
	}

	var services []string
	if dto.Services != "" {
		if err = json.Unmarshal([]byte(dto.Services), &services); err != nil {
			return nil, err
		}
	}

	var holdReason *order.HoldReason
	if dto.HoldReasonCode != nil {
		reason, reasonErr := order.NewHoldReason(order.HoldReasonCode(*dto.HoldReasonCode), dto.HoldReasonOther)
		if reasonErr != nil {
			return nil, reasonErr
		}
		holdReason = &reason
	}

	var linkedRef *kernel.UUID
	if dto.LinkedWorkOrderRef != nil {
		ref, refErr := kernel.UUIDFromBytes((*dto.LinkedWorkOrderRef)[:])
		if refErr != nil {
			return nil, refErr
		}
		linkedRef = &ref
	}

	parts := make([]order.Part, 0, len(dto.Parts))
	for _, p := range dto.Parts {
		part, partErr := partToDomain(p)
		if partErr != nil {
			return nil, partErr
		}
		parts = append(parts, part)
	}

	labor := make([]order.Labor, 0, len(dto.Labor))
	for _, l := range dto.Labor {
		item, laborErr := laborToDomain(l)
		if laborErr != nil {
			return nil, laborErr
		}
		labor = append(labor, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Version:            dto.Version,
		DocType:            order.DocType(dto.DocType),
		CustomerRef:        customerRef,
		VehicleRef:         vehicleRef,
		Title:              dto.Title,
		Status:             order.Status(dto.Status),
		Services:           services,
		Parts:              parts,
		Labor:              labor,
		HoldReason:         holdReason,
		ResumeStatus:       order.Status(dto.ResumeStatus),
		LinkedWorkOrderRef: linkedRef,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}

func partToDomain(dto PartDTO) (order.Part, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Part{}, err
	}
	unitCost, err := kernel.NewMoney(dto.UnitCost)
	if err != nil {
		return order.Part{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Part{}, err
	}

	return order.RestorePart(
		id, dto.Name, dto.PartNumber, dto.Vendor, dto.Supplier, dto.PurchaseOrderNumber,
		dto.Quantity, unitCost, unitPrice, dto.Ordered, dto.Received)
}

func laborToDomain(dto LaborDTO) (order.Labor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Labor{}, err
	}
	rate, err := kernel.NewMoney(dto.Rate)
	if err != nil {
		return order.Labor{}, err
	}

	return order.RestoreLabor(id, dto.Description, order.BillingType(dto.BillingType), dto.Hours, rate)
}
