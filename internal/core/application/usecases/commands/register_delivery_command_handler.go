package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// RegisterDeliveryCommandHandler handles the business logic for delivery
// registration. New records start in Pending status; when the dispatch slot
// is free the scheduler promotes the record immediately.
type RegisterDeliveryCommandHandler struct {
	scheduler *services.Scheduler
}

// NewRegisterDeliveryCommandHandler creates a handler for delivery
// registration. Requires the scheduler that owns the record store.
func NewRegisterDeliveryCommandHandler(scheduler *services.Scheduler) RegisterDeliveryCommandHandler {
	return RegisterDeliveryCommandHandler{
		scheduler: scheduler,
	}
}

// Handle processes the registration command. The destination must name a
// location already registered on the route graph; a duplicate parcel id is
// rejected.
func (h *RegisterDeliveryCommandHandler) Handle(ctx context.Context, cmd RegisterDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	destination, err := kernel.NewLocation(cmd.Destination())
	if err != nil {
		return err
	}

	_, err = h.scheduler.Register(cmd.ParcelID(), cmd.Sender(), cmd.Receiver(), destination)
	return err
}
