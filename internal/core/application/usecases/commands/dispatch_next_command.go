package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrDispatchNextCommandIsNotConstructed = errors.New(
	"DispatchNextCommand must be created via NewDispatchNextCommand constructor",
)

// DispatchNextCommand represents a request to fill a free dispatch slot with
// the oldest pending record. The command carries no data; it exists so the
// sweep job and the HTTP adapter drive dispatching through the same path.
type DispatchNextCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNextCommand creates a dispatch command.
func NewDispatchNextCommand() (DispatchNextCommand, error) {
	return DispatchNextCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNextCommandIsNotConstructed if validation fails.
func (c DispatchNextCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNextCommandIsNotConstructed)
}
