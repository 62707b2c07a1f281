package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrAddLocationCommandIsNotConstructed = errors.New(
		"AddLocationCommand must be created via NewAddLocationCommand constructor",
	)
	ErrLocationNameIsRequired = errors.New("location name is required")
)

// AddLocationCommand represents a request to register a location on the
// route graph. Registering an existing location is a no-op.
type AddLocationCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewAddLocationCommand creates a command to register a location.
// Validates that the name is non-empty.
func NewAddLocationCommand(name string) (AddLocationCommand, error) {
	cmd := AddLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return AddLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddLocationCommandIsNotConstructed if validation fails.
func (c AddLocationCommand) Validate() error {
	return c.guard.Validate(ErrAddLocationCommandIsNotConstructed)
}

// Name returns the location name to register.
func (c AddLocationCommand) Name() string {
	return c.name
}

func (c *AddLocationCommand) setName(name string) error {
	if name == "" {
		return ErrLocationNameIsRequired
	}

	c.name = name
	return nil
}
