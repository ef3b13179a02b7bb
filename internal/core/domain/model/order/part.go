package order

import (
	"errors"
	"fmt"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
)

// ErrPartIsNotConstructed is returned when a Part instance was not created
// through one of the part constructors.
var ErrPartIsNotConstructed = errors.New("Part must be created via NewPart, NewReceiptPart, or RestorePart")

// Part is a priced part line item on an order's ledger.
//
// Invariants:
//   - quantity is at least 1
//   - unitCost and unitPrice are non-negative
//   - received implies ordered, always
//
// A part belongs to exactly one order at any instant; conversion and split
// move parts between documents by remove-then-add, never by duplication.
type Part struct {
	id                  kernel.UUID
	name                string
	partNumber          string
	vendor              string
	supplier            string
	purchaseOrderNumber string
	quantity            int
	unitCost            kernel.Money
	unitPrice           kernel.Money
	ordered             bool
	received            bool
	isConstructed       bool
}

// PartPatch describes a partial update to a part. Nil fields are left
// unchanged. Flag fields follow the same coercion rules as the flag
// setters: clearing ordered also clears received, and setting received
// also sets ordered.
type PartPatch struct {
	Name                *string
	PartNumber          *string
	Vendor              *string
	Supplier            *string
	PurchaseOrderNumber *string
	Quantity            *int
	UnitCost            *kernel.Money
	UnitPrice           *kernel.Money
	Ordered             *bool
	Received            *bool
}

// NewPart creates a part line item that has not yet been ordered.
// This is the normal path when pricing a quote or work order.
func NewPart(id kernel.UUID, name string, quantity int, unitCost, unitPrice kernel.Money) (Part, error) {
	return newPart(id, name, quantity, unitCost, unitPrice, false, false)
}

// NewReceiptPart creates a part line item with explicit ordered/received
// flags. Used when importing already-ordered items from a receipt, where
// the part may arrive on the ledger mid-lifecycle.
func NewReceiptPart(
	id kernel.UUID, name string, quantity int, unitCost, unitPrice kernel.Money,
	ordered, received bool,
) (Part, error) {
	return newPart(id, name, quantity, unitCost, unitPrice, ordered, received)
}

func newPart(
	id kernel.UUID, name string, quantity int, unitCost, unitPrice kernel.Money,
	ordered, received bool,
) (Part, error) {
	part := Part{isConstructed: true}

	if err := errors.Join(
		part.setID(id),
		part.setName(name),
		part.setQuantity(quantity),
		part.setUnitCost(unitCost),
		part.setUnitPrice(unitPrice),
		part.setFlags(ordered, received),
	); err != nil {
		return Part{}, err
	}

	return part, nil
}

// RestorePart reconstructs a part from persistence, including its optional
// sourcing fields. The same invariants apply as at first construction.
func RestorePart(
	id kernel.UUID, name, partNumber, vendor, supplier, purchaseOrderNumber string,
	quantity int, unitCost, unitPrice kernel.Money, ordered, received bool,
) (Part, error) {
	part, err := newPart(id, name, quantity, unitCost, unitPrice, ordered, received)
	if err != nil {
		return Part{}, err
	}

	part.partNumber = partNumber
	part.vendor = vendor
	part.supplier = supplier
	part.purchaseOrderNumber = purchaseOrderNumber
	return part, nil
}

// Validate ensures the Part was created through a constructor.
func (p Part) Validate() error {
	if !p.isConstructed {
		return ErrPartIsNotConstructed
	}
	return nil
}

// ID returns the part's unique identifier.
func (p Part) ID() kernel.UUID {
	return p.id
}

// Name returns the part's display name.
func (p Part) Name() string {
	return p.name
}

// PartNumber returns the manufacturer part number, if recorded.
func (p Part) PartNumber() string {
	return p.partNumber
}

// Vendor returns the vendor the part is sourced from, if recorded.
func (p Part) Vendor() string {
	return p.vendor
}

// Supplier returns the supplier, if recorded.
func (p Part) Supplier() string {
	return p.supplier
}

// PurchaseOrderNumber returns the purchase order the part was ordered
// under, if any.
func (p Part) PurchaseOrderNumber() string {
	return p.purchaseOrderNumber
}

// Quantity returns the ordered quantity (always at least 1).
func (p Part) Quantity() int {
	return p.quantity
}

// UnitCost returns the shop's per-unit purchase cost.
func (p Part) UnitCost() kernel.Money {
	return p.unitCost
}

// UnitPrice returns the customer-facing per-unit price.
func (p Part) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Ordered reports whether the part has been ordered from its vendor.
func (p Part) Ordered() bool {
	return p.ordered
}

// Received reports whether the part has arrived. Received parts are always
// also ordered.
func (p Part) Received() bool {
	return p.received
}

// Subtotal returns quantity times unit price, the part's contribution to
// the order total.
func (p Part) Subtotal() kernel.Money {
	return p.unitPrice.MulInt(p.quantity)
}

// applyPatch returns a copy of the part with the patch applied and all
// invariants re-checked.
func (p Part) applyPatch(patch PartPatch) (Part, error) {
	updated := p

	var err error
	if patch.Name != nil {
		err = errors.Join(err, updated.setName(*patch.Name))
	}
	if patch.PartNumber != nil {
		updated.partNumber = *patch.PartNumber
	}
	if patch.Vendor != nil {
		updated.vendor = *patch.Vendor
	}
	if patch.Supplier != nil {
		updated.supplier = *patch.Supplier
	}
	if patch.PurchaseOrderNumber != nil {
		updated.purchaseOrderNumber = *patch.PurchaseOrderNumber
	}
	if patch.Quantity != nil {
		err = errors.Join(err, updated.setQuantity(*patch.Quantity))
	}
	if patch.UnitCost != nil {
		err = errors.Join(err, updated.setUnitCost(*patch.UnitCost))
	}
	if patch.UnitPrice != nil {
		err = errors.Join(err, updated.setUnitPrice(*patch.UnitPrice))
	}
	if err != nil {
		return Part{}, err
	}

	if patch.Ordered != nil {
		updated.markOrdered(*patch.Ordered)
	}
	if patch.Received != nil {
		updated.markReceived(*patch.Received)
	}

	return updated, nil
}

// markOrdered sets the ordered flag. Clearing it also clears received so
// the received-implies-ordered invariant cannot be violated.
func (p *Part) markOrdered(ordered bool) {
	p.ordered = ordered
	if !ordered {
		p.received = false
	}
}

// markReceived sets the received flag. Receiving a part implies it was
// ordered, so setting received also sets ordered.
func (p *Part) markReceived(received bool) {
	p.received = received
	if received {
		p.ordered = true
	}
}

// assignPurchaseOrder records the purchase order number and marks the part
// ordered. Used by the bulk vendor assignment operation.
func (p *Part) assignPurchaseOrder(poNumber string) {
	p.purchaseOrderNumber = poNumber
	p.ordered = true
}

func (p *Part) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Part) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("part name")
	}
	p.name = name
	return nil
}

func (p *Part) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Part) setUnitCost(unitCost kernel.Money) error {
	if err := unitCost.Validate(); err != nil {
		return err
	}
	p.unitCost = unitCost
	return nil
}

func (p *Part) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Part) setFlags(ordered, received bool) error {
	if received && !ordered {
		return errs.NewValueIsInvalidErrorWithCause(
			"received", errors.New("a part cannot be received before it is ordered"))
	}
	p.ordered = ordered
	p.received = received
	return nil
}
