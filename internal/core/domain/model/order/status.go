package order

import (
	"fmt"

	"repairshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order document.
// Work orders move along a canonical forward chain; Quote documents use a
// disjoint set of states. The side-states OnHold and Cancelled are reachable
// from any non-terminal work-order state and return to the prior state only
// through an explicit manual transition.
//
// Work-order chain:
//
//	Created -> AppointmentScheduled -> InspectionInProgress -> InspectionComplete
//	        -> PartsOrdered -> PartsReceived -> RepairInProgress
//	        -> RepairCompleteAwaitingPayment -> RepairCompleteInvoiced
//
// Quote states:
//
//	Quote -> QuoteConverted (consumed by full conversion)
//	Quote -> QuoteArchived  (ledger fully drained, or archived manually)
//
// Status changes only through the transition and derivation functions in
// this file; no other component mutates it directly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a work order.
	Created

	// AppointmentScheduled indicates the vehicle has a drop-off appointment.
	AppointmentScheduled

	// InspectionInProgress indicates the vehicle is being inspected.
	InspectionInProgress

	// InspectionComplete indicates the inspection finished and was documented.
	InspectionComplete

	// PartsOrdered indicates every part on the ledger has been ordered.
	PartsOrdered

	// PartsReceived indicates every part on the ledger has been received.
	PartsReceived

	// RepairInProgress indicates repair work has started.
	RepairInProgress

	// RepairCompleteAwaitingPayment indicates the repair is done and unbilled.
	RepairCompleteAwaitingPayment

	// RepairCompleteInvoiced is the terminal status of a completed work order.
	RepairCompleteInvoiced

	// OnHold is a side-state pausing work; the prior status is kept so the
	// order can resume where it left off.
	OnHold

	// Cancelled is a side-state stopping work; reinstating returns to the
	// prior status via an explicit manual transition.
	Cancelled

	// Quote is the active status of a quote document.
	Quote

	// QuoteConverted marks a quote consumed by a full conversion; the quote
	// is retained as a non-editable reference to its work order.
	QuoteConverted

	// QuoteArchived marks a quote whose ledger was fully drained by partial
	// conversions, or which was archived manually.
	QuoteArchived
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                       "Unknown",
		Created:                       "Created",
		AppointmentScheduled:          "AppointmentScheduled",
		InspectionInProgress:          "InspectionInProgress",
		InspectionComplete:            "InspectionComplete",
		PartsOrdered:                  "PartsOrdered",
		PartsReceived:                 "PartsReceived",
		RepairInProgress:              "RepairInProgress",
		RepairCompleteAwaitingPayment: "RepairCompleteAwaitingPayment",
		RepairCompleteInvoiced:        "RepairCompleteInvoiced",
		OnHold:                        "OnHold",
		Cancelled:                     "Cancelled",
		Quote:                         "Quote",
		QuoteConverted:                "QuoteConverted",
		QuoteArchived:                 "QuoteArchived",
	}
}

// StatusFromString parses the string representation produced by String.
// Returns an error for unrecognized names, including "Unknown".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsQuoteStatus reports whether the status belongs to the quote document set.
func (s Status) IsQuoteStatus() bool {
	return s == Quote || s == QuoteConverted || s == QuoteArchived
}

// IsTerminal reports whether no further transitions are possible.
// Cancelled is deliberately not terminal: a cancelled work order can be
// reinstated to its prior status by an explicit manual transition.
func (s Status) IsTerminal() bool {
	return s == RepairCompleteInvoiced || s == QuoteConverted || s == QuoteArchived
}

// isHoldable reports whether OnHold and Cancelled are reachable from s.
// Every non-terminal work-order chain status qualifies.
func (s Status) isHoldable() bool {
	return s >= Created && s <= RepairCompleteAwaitingPayment
}

// isPreOrder reports whether s precedes the parts states on the chain.
// These are the statuses from which ledger derivation may advance to
// PartsOrdered or PartsReceived.
func (s Status) isPreOrder() bool {
	return s >= Created && s <= InspectionComplete
}

// allowedTransitions is the fixed allowed-edges table for explicit manual
// transitions. Edges into OnHold/Cancelled and out of them (back to the
// stored prior status) are validated separately, as is the implicit
// Quote -> QuoteConverted transition performed by full conversion.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		// Created may skip straight to inspection when no appointment is needed.
		Created:              {AppointmentScheduled, InspectionInProgress},
		AppointmentScheduled: {InspectionInProgress},
		InspectionInProgress: {InspectionComplete},
		// InspectionComplete may skip the parts states when no parts are needed.
		InspectionComplete:            {PartsOrdered, RepairInProgress},
		PartsOrdered:                  {PartsReceived},
		PartsReceived:                 {RepairInProgress},
		RepairInProgress:              {RepairCompleteAwaitingPayment},
		RepairCompleteAwaitingPayment: {RepairCompleteInvoiced},
		Quote:                         {QuoteArchived},
	}
}

// canTransition reports whether the (from, to) edge is in the allowed table,
// including entry into the OnHold/Cancelled side-states. Exits from the
// side-states depend on the order's stored prior status and are validated
// by the aggregate.
func canTransition(from, to Status) bool {
	if to == OnHold || to == Cancelled {
		return from.isHoldable() || (from == OnHold && to == Cancelled)
	}

	for _, allowed := range allowedTransitions()[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// DeriveFromParts returns the status implied by the parts ledger.
// It is the auto-derivation rule of the status machine, invoked from a
// single choke point after every ledger mutation:
//
//   - all parts ordered and current status pre-order -> PartsOrdered
//   - all parts received and current status pre-order or PartsOrdered -> PartsReceived
//
// Derivation is monotonic-forward only: it never moves status backward,
// even if a later edit makes the ledger no longer satisfy the condition
// that originally triggered the advance. An empty ledger derives nothing.
func DeriveFromParts(current Status, hasParts, allOrdered, allReceived bool) Status {
	if !hasParts {
		return current
	}

	if allReceived && (current.isPreOrder() || current == PartsOrdered) {
		return PartsReceived
	}

	if allOrdered && current.isPreOrder() {
		return PartsOrdered
	}

	return current
}
