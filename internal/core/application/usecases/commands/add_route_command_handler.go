package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// AddRouteCommandHandler adds directed, weighted edges to the scheduler's
// route graph. Both endpoints must already be registered locations.
type AddRouteCommandHandler struct {
	scheduler *services.Scheduler
}

// NewAddRouteCommandHandler creates a handler for route registration.
func NewAddRouteCommandHandler(scheduler *services.Scheduler) AddRouteCommandHandler {
	return AddRouteCommandHandler{
		scheduler: scheduler,
	}
}

// Handle processes the command. Re-adding an existing edge updates its
// travel time.
func (h *AddRouteCommandHandler) Handle(ctx context.Context, cmd AddRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	from, err := kernel.NewLocation(cmd.From())
	if err != nil {
		return err
	}

	to, err := kernel.NewLocation(cmd.To())
	if err != nil {
		return err
	}

	return h.scheduler.Graph().AddRoute(from, to, cmd.TravelTime())
}
