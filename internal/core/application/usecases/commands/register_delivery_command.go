// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, then a handler that drives the scheduler.
package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterDeliveryCommandIsNotConstructed = errors.New(
		"RegisterDeliveryCommand must be created via NewRegisterDeliveryCommand constructor",
	)
	ErrParcelIDIsRequired    = errors.New("parcel id is required")
	ErrSenderIsRequired      = errors.New("sender is required")
	ErrReceiverIsRequired    = errors.New("receiver is required")
	ErrDestinationIsRequired = errors.New("destination is required")
)

// RegisterDeliveryCommand represents a request to register a new delivery
// record. Encapsulates the parcel identity, the parties, and the destination.
//
// Example:
//
//	cmd, err := NewRegisterDeliveryCommand("P-100", "Acme Ltd", "J. Smith", "Area C")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewRegisterDeliveryCommandHandler(scheduler)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register delivery: %w", err)
//	}
type RegisterDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID    string
	sender      string
	receiver    string
	destination string

	guard guard.ConstructorGuard
}

// NewRegisterDeliveryCommand creates a command to register a delivery.
// Validates that every field is non-empty. Returns an error if any
// validation fails.
func NewRegisterDeliveryCommand(
	parcelID, sender, receiver, destination string,
) (RegisterDeliveryCommand, error) {
	cmd := RegisterDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
		cmd.setDestination(destination),
	); err != nil {
		return RegisterDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDeliveryCommandIsNotConstructed if validation fails.
func (c RegisterDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeliveryCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c RegisterDeliveryCommand) ParcelID() string {
	return c.parcelID
}

// Sender returns the party the parcel originates from.
func (c RegisterDeliveryCommand) Sender() string {
	return c.sender
}

// Receiver returns the party the parcel is addressed to.
func (c RegisterDeliveryCommand) Receiver() string {
	return c.receiver
}

// Destination returns the name of the delivery target location.
func (c RegisterDeliveryCommand) Destination() string {
	return c.destination
}

func (c *RegisterDeliveryCommand) setParcelID(parcelID string) error {
	if parcelID == "" {
		return ErrParcelIDIsRequired
	}

	c.parcelID = parcelID
	return nil
}

func (c *RegisterDeliveryCommand) setSender(sender string) error {
	if sender == "" {
		return ErrSenderIsRequired
	}

	c.sender = sender
	return nil
}

func (c *RegisterDeliveryCommand) setReceiver(receiver string) error {
	if receiver == "" {
		return ErrReceiverIsRequired
	}

	c.receiver = receiver
	return nil
}

func (c *RegisterDeliveryCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}
