package order

import (
	"fmt"
	"strings"

	"negotiation/internal/pkg/errs"
)

// Status represents the commercial lifecycle state of an order.
//
// State transitions:
//
//	Negotiating ──┬──> Closed               (requires at least one item)
//	              ├──> CancelledByBuyer
//	              └──> CancelledByTimeout
//
// Every state other than Negotiating is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Negotiating is the initial status. Items may be added and removed only here.
	Negotiating

	// Closed means both parties agreed on the order. Terminal.
	Closed

	// CancelledByBuyer means the buyer abandoned the negotiation. Terminal.
	CancelledByBuyer

	// CancelledByTimeout means the interaction deadline passed while negotiating. Terminal.
	CancelledByTimeout
)

var statusNames = map[Status]string{
	Negotiating:        "Negotiating",
	Closed:             "Closed",
	CancelledByBuyer:   "CancelledByBuyer",
	CancelledByTimeout: "CancelledByTimeout",
}

// ParseStatus converts the persisted or transported name of a status back to a Status.
// Matching is case-insensitive.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is one of the four defined states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Closed || s == CancelledByBuyer || s == CancelledByTimeout
}

// ValidateItemMutation checks that items may be added, removed or edited.
func (s Status) ValidateItemMutation(action string) error {
	if s != Negotiating {
		return errs.NewStateIsInvalidError(
			fmt.Sprintf("cannot %s an order not in negotiation (status is %s)", action, s),
		)
	}
	return nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Negotiating -> Closed, when hasItems is true
//
// The two failure causes carry different messages but the same error kind,
// errs.ErrStateIsInvalid.
func (s Status) Close(hasItems bool) (Status, error) {
	if s != Negotiating {
		return Unknown, errs.NewStateIsInvalidError(fmt.Sprintf("cannot close an order in status %s", s))
	}
	if !hasItems {
		return Unknown, errs.NewStateIsInvalidError("cannot close an order without items")
	}
	return Closed, nil
}

// Cancel transitions the status to target, which must be one of the cancellation states.
// Cancellation is allowed from any non-terminal state regardless of item count.
func (s Status) Cancel(target Status) (Status, error) {
	if target != CancelledByBuyer && target != CancelledByTimeout {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a cancellation status", target),
		)
	}
	switch {
	case s == Closed:
		return Unknown, errs.NewStateIsInvalidError("cannot cancel a closed order")
	case s.IsTerminal():
		return Unknown, errs.NewStateIsInvalidError(fmt.Sprintf("order is already %s", s))
	case s != Negotiating:
		return Unknown, errs.NewStateIsInvalidError(fmt.Sprintf("cannot cancel an order in status %s", s))
	}
	return target, nil
}
