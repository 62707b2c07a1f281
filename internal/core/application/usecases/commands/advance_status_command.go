package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAdvanceStatusCommandIsNotConstructed = errors.New(
		"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
	)
)

// AdvanceStatusCommand represents a request to move one delivery record to
// the next status of its lifecycle. Only the immediate successor status is a
// legal target; the scheduler rejects skips and reversals.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID string
	target   delivery.Status

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to advance a delivery record.
// Validates that the parcel id is non-empty and the target is a known
// status.
func NewAdvanceStatusCommand(parcelID string, target delivery.Status) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceStatusCommandIsNotConstructed if validation fails.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// ParcelID returns the identifier of the record to advance.
func (c AdvanceStatusCommand) ParcelID() string {
	return c.parcelID
}

// Target returns the status the record should move to.
func (c AdvanceStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *AdvanceStatusCommand) setParcelID(parcelID string) error {
	if parcelID == "" {
		return ErrParcelIDIsRequired
	}

	c.parcelID = parcelID
	return nil
}

func (c *AdvanceStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
