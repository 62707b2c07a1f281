package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// AddLocationCommandHandler registers locations on the scheduler's route
// graph.
type AddLocationCommandHandler struct {
	scheduler *services.Scheduler
}

// NewAddLocationCommandHandler creates a handler for location registration.
func NewAddLocationCommandHandler(scheduler *services.Scheduler) AddLocationCommandHandler {
	return AddLocationCommandHandler{
		scheduler: scheduler,
	}
}

// Handle processes the command. Idempotent for already registered names.
func (h *AddLocationCommandHandler) Handle(ctx context.Context, cmd AddLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewLocation(cmd.Name())
	if err != nil {
		return err
	}

	return h.scheduler.Graph().AddLocation(location)
}
