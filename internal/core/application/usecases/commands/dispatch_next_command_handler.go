package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// DispatchNextCommandHandler promotes the oldest pending record into the
// dispatch slot. A no-op when the slot is occupied or the queue is empty.
type DispatchNextCommandHandler struct {
	scheduler *services.Scheduler
}

// NewDispatchNextCommandHandler creates a handler for dispatch requests.
func NewDispatchNextCommandHandler(scheduler *services.Scheduler) DispatchNextCommandHandler {
	return DispatchNextCommandHandler{
		scheduler: scheduler,
	}
}

// Handle processes the dispatch command. Returns the parcel id that was
// promoted and true, or empty and false when nothing changed.
func (h *DispatchNextCommandHandler) Handle(ctx context.Context, cmd DispatchNextCommand) (string, bool, error) {
	if err := cmd.Validate(); err != nil {
		return "", false, err
	}

	parcelID, promoted := h.scheduler.DispatchNext()
	return parcelID, promoted, nil
}
