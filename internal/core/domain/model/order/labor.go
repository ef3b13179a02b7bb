package order

import (
	"errors"
	"fmt"

	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLaborIsNotConstructed is returned when a Labor instance was not
// created through NewLabor or RestoreLabor.
var ErrLaborIsNotConstructed = errors.New("Labor must be created via NewLabor or RestoreLabor")

// BillingType distinguishes how a labor line item is billed.
type BillingType int

const (
	// BillingUnknown represents an invalid or undefined billing type.
	BillingUnknown BillingType = iota

	// BillingHourly bills hours multiplied by the rate.
	BillingHourly

	// BillingFixed bills the rate as a flat amount; hours are informational
	// only and never multiply into the subtotal.
	BillingFixed
)

// getBillingTypeStrings returns the string representation of every billing type.
func getBillingTypeStrings() map[BillingType]string {
	return map[BillingType]string{
		BillingUnknown: "Unknown",
		BillingHourly:  "hourly",
		BillingFixed:   "fixed",
	}
}

// BillingTypeFromString parses the representation produced by String.
func BillingTypeFromString(s string) (BillingType, error) {
	for bt, name := range getBillingTypeStrings() {
		if name == s && bt != BillingUnknown {
			return bt, nil
		}
	}
	return BillingUnknown, errs.NewValueIsInvalidErrorWithCause(
		"billingType", fmt.Errorf("%q is not a valid billing type", s))
}

// String returns the wire name of the billing type.
func (b BillingType) String() string {
	if str, ok := getBillingTypeStrings()[b]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the billing type is defined.
func (b BillingType) Validate() error {
	if _, ok := getBillingTypeStrings()[b]; !ok || b == BillingUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"billingType", fmt.Errorf("%d is not a valid billing type", b))
	}
	return nil
}

// Labor is a labor line item on an order's ledger.
//
// Subtotal rule: hourly labor bills hours times rate; fixed labor bills the
// rate alone regardless of hours.
type Labor struct {
	id            kernel.UUID
	description   string
	billingType   BillingType
	hours         decimal.Decimal
	rate          kernel.Money
	isConstructed bool
}

// LaborPatch describes a partial update to a labor line item. Nil fields
// are left unchanged.
type LaborPatch struct {
	Description *string
	BillingType *BillingType
	Hours       *decimal.Decimal
	Rate        *kernel.Money
}

// NewLabor creates a validated labor line item.
// Hourly labor requires positive hours; for fixed labor the hours value is
// stored for reference but never validated against the subtotal.
func NewLabor(
	id kernel.UUID, description string, billingType BillingType,
	hours decimal.Decimal, rate kernel.Money,
) (Labor, error) {
	labor := Labor{isConstructed: true}

	if err := errors.Join(
		labor.setID(id),
		labor.setDescription(description),
		labor.setBillingType(billingType),
		labor.setRate(rate),
	); err != nil {
		return Labor{}, err
	}

	if err := labor.setHours(hours); err != nil {
		return Labor{}, err
	}

	return labor, nil
}

// RestoreLabor reconstructs a labor line item from persistence.
func RestoreLabor(
	id kernel.UUID, description string, billingType BillingType,
	hours decimal.Decimal, rate kernel.Money,
) (Labor, error) {
	return NewLabor(id, description, billingType, hours, rate)
}

// Validate ensures the Labor was created through a constructor.
func (l Labor) Validate() error {
	if !l.isConstructed {
		return ErrLaborIsNotConstructed
	}
	return nil
}

// ID returns the labor line item's unique identifier.
func (l Labor) ID() kernel.UUID {
	return l.id
}

// Description returns the work description.
func (l Labor) Description() string {
	return l.description
}

// BillingType returns how the line item is billed.
func (l Labor) BillingType() BillingType {
	return l.billingType
}

// Hours returns the labor hours; meaningful only for hourly billing.
func (l Labor) Hours() decimal.Decimal {
	return l.hours
}

// Rate returns the hourly rate or the flat amount, depending on billing type.
func (l Labor) Rate() kernel.Money {
	return l.rate
}

// Subtotal returns the line item's contribution to the order total:
// hours times rate when hourly, the rate alone when fixed.
func (l Labor) Subtotal() kernel.Money {
	if l.billingType == BillingHourly {
		return l.rate.MulDecimal(l.hours)
	}
	return l.rate
}

// applyPatch returns a copy of the labor item with the patch applied and
// all invariants re-checked.
func (l Labor) applyPatch(patch LaborPatch) (Labor, error) {
	updated := l

	var err error
	if patch.Description != nil {
		err = errors.Join(err, updated.setDescription(*patch.Description))
	}
	if patch.BillingType != nil {
		err = errors.Join(err, updated.setBillingType(*patch.BillingType))
	}
	if patch.Rate != nil {
		err = errors.Join(err, updated.setRate(*patch.Rate))
	}
	if err != nil {
		return Labor{}, err
	}

	if patch.Hours != nil {
		if err = updated.setHours(*patch.Hours); err != nil {
			return Labor{}, err
		}
	} else if patch.BillingType != nil {
		// Billing type changed without new hours: re-check the stored hours
		// against the new type's rules.
		if err = updated.setHours(updated.hours); err != nil {
			return Labor{}, err
		}
	}

	return updated, nil
}

func (l *Labor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Labor) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("labor description")
	}
	l.description = description
	return nil
}

func (l *Labor) setBillingType(billingType BillingType) error {
	if err := billingType.Validate(); err != nil {
		return err
	}
	l.billingType = billingType
	return nil
}

func (l *Labor) setHours(hours decimal.Decimal) error {
	if hours.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"hours", fmt.Errorf("%s is negative", hours))
	}
	if l.billingType == BillingHourly && hours.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"hours", errors.New("hourly labor requires positive hours"))
	}
	l.hours = hours
	return nil
}

func (l *Labor) setRate(rate kernel.Money) error {
	if err := rate.Validate(); err != nil {
		return err
	}
	l.rate = rate
	return nil
}
