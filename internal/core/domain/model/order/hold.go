package order

import (
	"fmt"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/guard"
)

// ErrHoldReasonIsNotConstructed is returned when a HoldReason was not
// created through NewHoldReason.
var ErrHoldReasonIsNotConstructed = errs.NewValueIsRequiredError(
	"hold reason must be created via NewHoldReason constructor")

// HoldReasonCode enumerates why a work order was placed on hold.
type HoldReasonCode int

const (
	// HoldReasonUnknown represents an invalid or undefined hold reason code.
	HoldReasonUnknown HoldReasonCode = iota

	// HoldAwaitingParts indicates work is paused until parts arrive.
	HoldAwaitingParts

	// HoldAwaitingApproval indicates work is paused pending customer approval.
	HoldAwaitingApproval

	// HoldAwaitingPayment indicates work is paused pending payment.
	HoldAwaitingPayment

	// HoldOther is a catch-all that requires a free-text explanation.
	HoldOther
)

// getHoldReasonCodeStrings returns the string representation of every code.
func getHoldReasonCodeStrings() map[HoldReasonCode]string {
	return map[HoldReasonCode]string{
		HoldReasonUnknown:    "Unknown",
		HoldAwaitingParts:    "AwaitingParts",
		HoldAwaitingApproval: "AwaitingApproval",
		HoldAwaitingPayment:  "AwaitingPayment",
		HoldOther:            "Other",
	}
}

// HoldReasonCodeFromString parses the representation produced by String.
func HoldReasonCodeFromString(s string) (HoldReasonCode, error) {
	for code, name := range getHoldReasonCodeStrings() {
		if name == s && code != HoldReasonUnknown {
			return code, nil
		}
	}
	return HoldReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"holdReason", fmt.Errorf("%q is not a valid hold reason", s))
}

// String returns the human-readable name of the code.
func (c HoldReasonCode) String() string {
	if str, ok := getHoldReasonCodeStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the code is one of the defined reasons.
func (c HoldReasonCode) Validate() error {
	if _, ok := getHoldReasonCodeStrings()[c]; !ok || c == HoldReasonUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"holdReason", fmt.Errorf("%d is not a valid hold reason", c))
	}
	return nil
}

// HoldReason is a tagged value object pairing a reason code with free text.
// The free text is required exactly when the code is HoldOther and rejected
// otherwise, so the illegal state "Other with no explanation" is
// unrepresentable.
type HoldReason struct {
	code      HoldReasonCode
	otherText string
	guard     guard.ConstructorGuard
}

// NewHoldReason creates a validated HoldReason.
// otherText must be non-empty when code is HoldOther and empty for every
// other code.
func NewHoldReason(code HoldReasonCode, otherText string) (HoldReason, error) {
	if err := code.Validate(); err != nil {
		return HoldReason{}, err
	}

	if code == HoldOther && otherText == "" {
		return HoldReason{}, errs.NewValueIsRequiredError("holdReasonOther")
	}

	if code != HoldOther && otherText != "" {
		return HoldReason{}, errs.NewValueIsInvalidErrorWithCause(
			"holdReasonOther", fmt.Errorf("free text is only valid with the %s reason", HoldOther))
	}

	return HoldReason{
		code:      code,
		otherText: otherText,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Code returns the hold reason code.
func (h HoldReason) Code() HoldReasonCode {
	return h.code
}

// OtherText returns the free-text explanation; empty unless Code is HoldOther.
func (h HoldReason) OtherText() string {
	return h.otherText
}

// String renders the reason for logs and display.
func (h HoldReason) String() string {
	if h.code == HoldOther {
		return fmt.Sprintf("%s: %s", h.code, h.otherText)
	}
	return h.code.String()
}

// Validate checks that the HoldReason was created through NewHoldReason.
func (h HoldReason) Validate() error {
	return h.guard.Validate(ErrHoldReasonIsNotConstructed)
}
