package delivery

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel error for illegal status transitions.
// Use errors.Is to classify transition failures regardless of the concrete
// from/to pair that produced them.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a delivery record.
// It implements a strictly linear state machine: every delivery moves through
// the stages in order, with no skipping and no reverting.
//
// State transitions:
//
//	Pending ──> Dispatched ──> OutForDelivery ──> Delivered
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a registered delivery waiting in the
	// dispatch queue for the active slot to free up.
	Pending

	// Dispatched indicates the delivery occupies the active dispatch slot
	// and a courier run has been scheduled for it.
	Dispatched

	// OutForDelivery indicates the parcel has left the warehouse and is on
	// its way to the destination.
	OutForDelivery

	// Delivered indicates the parcel reached its destination.
	// This is the terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Dispatched:     "Dispatched",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Dispatched:     "Dispatched",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// Statuses returns all valid statuses in lifecycle order.
// The order doubles as the grouping order for status reports:
// Pending, Dispatched, OutForDelivery, Delivered.
func Statuses() []Status {
	return []Status{Pending, Dispatched, OutForDelivery, Delivered}
}

// StatusFromName parses a human-readable status name back into a Status.
// The match is exact, including case: "Out for Delivery", not "out for
// delivery". Unknown names are an error.
func StatusFromName(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", name))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Dispatched, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, which render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the lifecycle.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// IsActive reports whether the status occupies the dispatch slot.
// A delivery is active while it is Dispatched or OutForDelivery: it has left
// the pending queue but has not yet been delivered.
func (s Status) IsActive() bool {
	return s == Dispatched || s == OutForDelivery
}

// CanTransitionTo checks whether a transition to target is legal without
// performing it. The lifecycle is strictly linear, so the only legal target
// is the immediate successor of the current status.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target != s+1 {
		return NewInvalidTransitionError(s, target)
	}

	return nil
}

// TransitionTo returns the new status after a transition to target.
//
// Valid transitions:
//   - Pending -> Dispatched
//   - Dispatched -> OutForDelivery
//   - OutForDelivery -> Delivered
//
// Any other pair, including skips (Pending -> Delivered) and reversals
// (Delivered -> Pending), fails with InvalidTransitionError.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}

	return target, nil
}

// InvalidTransitionError reports an attempt to move a delivery between two
// statuses the linear lifecycle does not connect. The record involved is
// left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
