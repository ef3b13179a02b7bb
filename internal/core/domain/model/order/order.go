package order

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewQuote, NewWorkOrder, or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewQuote, NewWorkOrder, or RestoreOrder")
)

// DocType distinguishes the two document kinds an Order can be.
type DocType int

const (
	// DocUnknown represents an invalid or undefined document type.
	DocUnknown DocType = iota

	// DocQuote is a quote: a priced proposal awaiting conversion.
	DocQuote

	// DocWorkOrder is a work order: an active repair document.
	DocWorkOrder
)

// String returns the wire name of the document type.
func (d DocType) String() string {
	switch d {
	case DocQuote:
		return "quote"
	case DocWorkOrder:
		return "workorder"
	default:
		return "Unknown"
	}
}

// DocTypeFromString parses a wire name back into a document type.
func DocTypeFromString(s string) (DocType, error) {
	switch s {
	case "quote":
		return DocQuote, nil
	case "workorder":
		return DocWorkOrder, nil
	default:
		return DocUnknown, errs.NewValueIsInvalidErrorWithCause(
			"docType", fmt.Errorf("%q is not a valid document type", s))
	}
}

// Validate checks if the document type is defined.
func (d DocType) Validate() error {
	if d != DocQuote && d != DocWorkOrder {
		return errs.NewValueIsInvalidErrorWithCause(
			"docType", fmt.Errorf("%d is not a valid document type", d))
	}
	return nil
}

// TransitionContext carries the collaborator facts an explicit status
// transition may need. The aggregate stays free of I/O: the application
// layer resolves the facts (for example by asking the notes gateway) and
// passes them in.
type TransitionContext struct {
	// HasNonSystemProgressNote reports whether a human-authored progress
	// note exists for the order. Gates InspectionInProgress ->
	// InspectionComplete.
	HasNonSystemProgressNote bool
}

// Order is the aggregate root for a repair-shop document: a Quote or a
// WorkOrder. It owns the line-item ledger (parts and labor) and is the only
// component allowed to change its own status, which it does exclusively
// through the status machine's transition table and derivation rule.
//
// Order follows these invariants:
//   - every part keeps received implies ordered
//   - every line item belongs to exactly one order at any instant
//   - status changes only through ChangeStatus, MarkConverted,
//     ArchiveIfDrained, and the post-mutation derivation choke point
//   - totals are always recomputed from the current ledger, never cached
//
// The version field supports optimistic concurrency: the repository rejects
// a write whose expected version no longer matches the stored row.
type Order struct {
	id      kernel.UUID
	version int
	docType DocType

	customerRef kernel.UUID
	vehicleRef  kernel.UUID

	title    string
	status   Status
	services []string
	parts    []Part
	labor    []Labor

	// holdReason is present only while status is OnHold.
	holdReason *HoldReason

	// resumeStatus is the status to return to when leaving OnHold or
	// Cancelled; Unknown otherwise.
	resumeStatus Status

	// linkedWorkOrderRef points a consumed quote at the work order that
	// replaced it. Quotes only, set by full conversion.
	linkedWorkOrderRef *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewQuote creates a quote document in the Quote status with an empty ledger.
func NewQuote(id, customerRef, vehicleRef kernel.UUID, title string, services []string) (*Order, error) {
	return newOrder(id, DocQuote, Quote, customerRef, vehicleRef, title, services)
}

// NewWorkOrder creates a work order document in the Created status with an
// empty ledger.
func NewWorkOrder(id, customerRef, vehicleRef kernel.UUID, title string, services []string) (*Order, error) {
	return newOrder(id, DocWorkOrder, Created, customerRef, vehicleRef, title, services)
}

func newOrder(
	id kernel.UUID, docType DocType, status Status,
	customerRef, vehicleRef kernel.UUID, title string, services []string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		docType:       docType,
		status:        status,
		version:       1,
		services:      append([]string(nil), services...),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerRef(customerRef),
		o.setVehicleRef(vehicleRef),
		o.setTitle(title),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction by a repository.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Version            int
	DocType            DocType
	CustomerRef        kernel.UUID
	VehicleRef         kernel.UUID
	Title              string
	Status             Status
	Services           []string
	Parts              []Part
	Labor              []Labor
	HoldReason         *HoldReason
	ResumeStatus       Status
	LinkedWorkOrderRef *kernel.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The same construction invariants apply as for new documents, plus the
// status must belong to the document type's state set.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o := &Order{
		version:            params.Version,
		docType:            params.DocType,
		services:           append([]string(nil), params.Services...),
		parts:              append([]Part(nil), params.Parts...),
		labor:              append([]Labor(nil), params.Labor...),
		holdReason:         params.HoldReason,
		resumeStatus:       params.ResumeStatus,
		linkedWorkOrderRef: params.LinkedWorkOrderRef,
		createdAt:          params.CreatedAt,
		updatedAt:          params.UpdatedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(params.ID),
		o.setCustomerRef(params.CustomerRef),
		o.setVehicleRef(params.VehicleRef),
		o.setTitle(params.Title),
		params.DocType.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if params.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a positive version", params.Version))
	}

	if params.Status.IsQuoteStatus() != (params.DocType == DocQuote) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status for a %s", params.Status, params.DocType))
	}

	for _, p := range o.parts {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	for _, l := range o.labor {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = params.Status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// BumpVersion advances the aggregate's version after a successful write.
// Called by repositories only.
func (o *Order) BumpVersion() {
	o.version++
}

// DocType returns whether the order is a quote or a work order.
func (o *Order) DocType() DocType {
	return o.docType
}

// CustomerRef returns the opaque customer reference.
func (o *Order) CustomerRef() kernel.UUID {
	return o.customerRef
}

// VehicleRef returns the opaque vehicle reference.
func (o *Order) VehicleRef() kernel.UUID {
	return o.vehicleRef
}

// Title returns the document title.
func (o *Order) Title() string {
	return o.title
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Services returns a copy of the requested-service descriptions.
// Services are informational and never contribute to totals.
func (o *Order) Services() []string {
	return append([]string(nil), o.services...)
}

// Parts returns a copy of the part line items in insertion order.
func (o *Order) Parts() []Part {
	return append([]Part(nil), o.parts...)
}

// Labor returns a copy of the labor line items in insertion order.
func (o *Order) Labor() []Labor {
	return append([]Labor(nil), o.labor...)
}

// HoldReason returns the hold reason while the order is OnHold, nil otherwise.
func (o *Order) HoldReason() *HoldReason {
	return o.holdReason
}

// ResumeStatus returns the status the order will return to when leaving
// OnHold or Cancelled; Unknown when neither side-state is active.
func (o *Order) ResumeStatus() Status {
	return o.resumeStatus
}

// LinkedWorkOrderRef returns the work order a consumed quote points at,
// or nil.
func (o *Order) LinkedWorkOrderRef() *kernel.UUID {
	return o.linkedWorkOrderRef
}

// CreatedAt returns the document creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus performs an explicit manual status transition.
//
// The (current, target) edge is validated against the fixed allowed-edges
// table, with two additional guards evaluated through tctx:
//
//   - InspectionInProgress -> InspectionComplete requires a non-system
//     progress note (GuardNotSatisfied otherwise)
//   - any transition into OnHold requires a valid hold reason
//     (ValueIsRequired otherwise)
//
// Leaving OnHold or Cancelled is only allowed back to the stored prior
// status (or OnHold -> Cancelled). Rejected transitions leave the order
// unmodified.
func (o *Order) ChangeStatus(target Status, reason *HoldReason, tctx TransitionContext) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if !o.canReach(target) {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	if o.status == InspectionInProgress && target == InspectionComplete && !tctx.HasNonSystemProgressNote {
		return errs.NewGuardNotSatisfiedError(
			fmt.Sprintf("%s -> %s", o.status, target),
			"no non-system progress note recorded for the order")
	}

	if target == OnHold {
		if reason == nil {
			return errs.NewValueIsRequiredError("holdReason")
		}
		if err := reason.Validate(); err != nil {
			return err
		}
	}

	o.applyTransition(target, reason)
	return nil
}

// canReach reports whether target is reachable from the current status by
// an explicit manual transition, including exits from the side-states back
// to the stored prior status.
func (o *Order) canReach(target Status) bool {
	if o.status == OnHold || o.status == Cancelled {
		if target == o.resumeStatus {
			return true
		}
		return o.status == OnHold && target == Cancelled
	}

	return canTransition(o.status, target)
}

// applyTransition mutates status and the side-state bookkeeping. Callers
// have already validated the edge and its guards.
func (o *Order) applyTransition(target Status, reason *HoldReason) {
	switch target {
	case OnHold:
		o.resumeStatus = o.status
		o.holdReason = reason
	case Cancelled:
		if o.status != OnHold {
			o.resumeStatus = o.status
		}
		o.holdReason = nil
	default:
		o.resumeStatus = Unknown
		o.holdReason = nil
	}

	o.status = target
	o.touch()
}

// AddPart appends a part line item to the ledger.
func (o *Order) AddPart(part Part) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if err := part.Validate(); err != nil {
		return err
	}
	if o.findPart(part.ID()) != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"partId", fmt.Errorf("part %s is already on order %s", part.ID(), o.id))
	}

	o.parts = append(o.parts, part)
	o.finishLedgerMutation()
	return nil
}

// UpdatePart applies a partial update to a part line item.
func (o *Order) UpdatePart(partID kernel.UUID, patch PartPatch) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	existing := o.findPart(partID)
	if existing == nil {
		return errs.NewObjectNotFoundError("partId", partID.String())
	}

	updated, err := existing.applyPatch(patch)
	if err != nil {
		return err
	}

	*existing = updated
	o.finishLedgerMutation()
	return nil
}

// RemovePart deletes a part line item from the ledger.
func (o *Order) RemovePart(partID kernel.UUID) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	for i := range o.parts {
		if o.parts[i].ID().IsEqual(partID) {
			o.parts = append(o.parts[:i], o.parts[i+1:]...)
			o.finishLedgerMutation()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("partId", partID.String())
}

// SetPartOrdered sets a part's ordered flag. Clearing it also clears the
// received flag in the same call, preserving received implies ordered.
func (o *Order) SetPartOrdered(partID kernel.UUID, ordered bool) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	part := o.findPart(partID)
	if part == nil {
		return errs.NewObjectNotFoundError("partId", partID.String())
	}

	part.markOrdered(ordered)
	o.finishLedgerMutation()
	return nil
}

// SetPartReceived sets a part's received flag. Receiving a part marks it
// ordered as well.
func (o *Order) SetPartReceived(partID kernel.UUID, received bool) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	part := o.findPart(partID)
	if part == nil {
		return errs.NewObjectNotFoundError("partId", partID.String())
	}

	part.markReceived(received)
	o.finishLedgerMutation()
	return nil
}

// BulkAssignOrderNumber records a purchase order number on every part
// sourced from the given vendor and marks those parts ordered. The
// operation is idempotent: re-running it with identical arguments yields
// an identical ledger.
func (o *Order) BulkAssignOrderNumber(vendor, orderNumber string) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if vendor == "" {
		return errs.NewValueIsRequiredError("vendor")
	}
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	for i := range o.parts {
		if o.parts[i].Vendor() == vendor {
			o.parts[i].assignPurchaseOrder(orderNumber)
		}
	}

	o.finishLedgerMutation()
	return nil
}

// AddLabor appends a labor line item to the ledger.
func (o *Order) AddLabor(labor Labor) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if err := labor.Validate(); err != nil {
		return err
	}
	if o.findLabor(labor.ID()) != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"laborId", fmt.Errorf("labor %s is already on order %s", labor.ID(), o.id))
	}

	o.labor = append(o.labor, labor)
	o.finishLedgerMutation()
	return nil
}

// UpdateLabor applies a partial update to a labor line item.
func (o *Order) UpdateLabor(laborID kernel.UUID, patch LaborPatch) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	existing := o.findLabor(laborID)
	if existing == nil {
		return errs.NewObjectNotFoundError("laborId", laborID.String())
	}

	updated, err := existing.applyPatch(patch)
	if err != nil {
		return err
	}

	*existing = updated
	o.finishLedgerMutation()
	return nil
}

// RemoveLabor deletes a labor line item from the ledger.
func (o *Order) RemoveLabor(laborID kernel.UUID) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	for i := range o.labor {
		if o.labor[i].ID().IsEqual(laborID) {
			o.labor = append(o.labor[:i], o.labor[i+1:]...)
			o.finishLedgerMutation()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("laborId", laborID.String())
}

// SetServices replaces the requested-service descriptions.
func (o *Order) SetServices(services []string) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	o.services = append([]string(nil), services...)
	o.touch()
	return nil
}

// HasPart reports whether the ledger contains the given part id.
func (o *Order) HasPart(partID kernel.UUID) bool {
	return o.findPart(partID) != nil
}

// HasLabor reports whether the ledger contains the given labor id.
func (o *Order) HasLabor(laborID kernel.UUID) bool {
	return o.findLabor(laborID) != nil
}

// IsLedgerEmpty reports whether the order holds no parts and no labor.
func (o *Order) IsLedgerEmpty() bool {
	return len(o.parts) == 0 && len(o.labor) == 0
}

// ExtractParts removes the identified parts from the ledger and returns
// them, so a conversion or split can move them to another document.
// All ids must be present; an unknown id fails the whole call with no
// mutation. Extraction runs the same derivation choke point as every other
// ledger mutation, so the source status can hold or advance but never
// regress.
func (o *Order) ExtractParts(partIDs []kernel.UUID) ([]Part, error) {
	if err := o.ensureEditable(); err != nil {
		return nil, err
	}

	for _, id := range partIDs {
		if o.findPart(id) == nil {
			return nil, errs.NewObjectNotFoundError("partId", id.String())
		}
	}

	extracted := make([]Part, 0, len(partIDs))
	remaining := make([]Part, 0, len(o.parts))
	for _, p := range o.parts {
		if containsID(partIDs, p.ID()) {
			extracted = append(extracted, p)
		} else {
			remaining = append(remaining, p)
		}
	}

	o.parts = remaining
	o.finishLedgerMutation()
	return extracted, nil
}

// ExtractLabor removes the identified labor items from the ledger and
// returns them. Same all-or-nothing semantics as ExtractParts.
func (o *Order) ExtractLabor(laborIDs []kernel.UUID) ([]Labor, error) {
	if err := o.ensureEditable(); err != nil {
		return nil, err
	}

	for _, id := range laborIDs {
		if o.findLabor(id) == nil {
			return nil, errs.NewObjectNotFoundError("laborId", id.String())
		}
	}

	extracted := make([]Labor, 0, len(laborIDs))
	remaining := make([]Labor, 0, len(o.labor))
	for _, l := range o.labor {
		if containsID(laborIDs, l.ID()) {
			extracted = append(extracted, l)
		} else {
			remaining = append(remaining, l)
		}
	}

	o.labor = remaining
	o.finishLedgerMutation()
	return extracted, nil
}

// MarkConverted consumes a quote after a full conversion: the quote leaves
// the Quote status, becomes non-editable, and keeps a reference to the work
// order that replaced it. The quote document is retained, not deleted.
func (o *Order) MarkConverted(workOrderID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	if o.docType != DocQuote || o.status != Quote {
		return errs.NewInvalidTransitionError(o.status.String(), QuoteConverted.String())
	}

	o.linkedWorkOrderRef = &workOrderID
	o.status = QuoteConverted
	o.touch()
	return nil
}

// ArchiveIfDrained archives a quote whose ledger has been fully drained by
// partial conversions. Returns true when the quote transitioned to
// QuoteArchived; false when the quote still has line items or is not an
// active quote.
func (o *Order) ArchiveIfDrained() bool {
	if o.docType != DocQuote || o.status != Quote || !o.IsLedgerEmpty() {
		return false
	}

	o.status = QuoteArchived
	o.touch()
	return true
}

// ensureEditable rejects ledger mutations on documents that are closed to
// editing: consumed or archived quotes, and invoiced or cancelled work
// orders.
func (o *Order) ensureEditable() error {
	if err := o.Validate(); err != nil {
		return err
	}

	switch {
	case o.docType == DocQuote && o.status != Quote:
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("quote %s is not editable in status %s", o.id, o.status))
	case o.docType == DocWorkOrder && (o.status == RepairCompleteInvoiced || o.status == Cancelled):
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("work order %s is not editable in status %s", o.id, o.status))
	}

	return nil
}

// finishLedgerMutation is the single choke point every ledger mutation ends
// with: it re-derives the status from the parts ledger and stamps the
// update time. Derivation only ever holds or advances the status.
func (o *Order) finishLedgerMutation() {
	o.status = DeriveFromParts(o.status, len(o.parts) > 0, o.allPartsOrdered(), o.allPartsReceived())
	o.touch()
}

func (o *Order) allPartsOrdered() bool {
	for _, p := range o.parts {
		if !p.Ordered() {
			return false
		}
	}
	return true
}

func (o *Order) allPartsReceived() bool {
	for _, p := range o.parts {
		if !p.Received() {
			return false
		}
	}
	return true
}

func (o *Order) findPart(partID kernel.UUID) *Part {
	for i := range o.parts {
		if o.parts[i].ID().IsEqual(partID) {
			return &o.parts[i]
		}
	}
	return nil
}

func (o *Order) findLabor(laborID kernel.UUID) *Labor {
	for i := range o.labor {
		if o.labor[i].ID().IsEqual(laborID) {
			return &o.labor[i]
		}
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerRef(customerRef kernel.UUID) error {
	if err := customerRef.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerRef", err)
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setVehicleRef(vehicleRef kernel.UUID) error {
	if err := vehicleRef.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleRef", err)
	}
	o.vehicleRef = vehicleRef
	return nil
}

func (o *Order) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func containsID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
