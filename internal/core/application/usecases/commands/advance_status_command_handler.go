package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AdvanceStatusCommandHandler handles the business logic for status
// transitions. When a transition completes a delivery the handler builds the
// archival record, with the route resolved against the current graph, and
// writes it to the archive.
//
// Example:
//
//	handler := NewAdvanceStatusCommandHandler(scheduler, reporter, archive)
//	cmd, _ := NewAdvanceStatusCommand("P-100", delivery.OutForDelivery)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status transition failed: %w", err)
//	}
type AdvanceStatusCommandHandler struct {
	scheduler *services.Scheduler
	reporter  services.RouteReporter
	archive   ports.DeliveryArchive
}

// NewAdvanceStatusCommandHandler creates a handler for status transitions.
// Requires the scheduler, the route reporter, and the archive the completed
// records are written to.
func NewAdvanceStatusCommandHandler(
	scheduler *services.Scheduler,
	reporter services.RouteReporter,
	archive ports.DeliveryArchive,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		scheduler: scheduler,
		reporter:  reporter,
		archive:   archive,
	}
}

// Handle processes the transition command. The scheduler enforces the linear
// lifecycle and the single dispatch slot; an archive failure surfaces to the
// caller but the in-memory transition stays applied.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.scheduler.AdvanceStatus(cmd.ParcelID(), cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() != delivery.Delivered {
		return nil
	}

	record, err := h.scheduler.Get(cmd.ParcelID())
	if err != nil {
		return err
	}

	completed, err := h.reporter.CompleteDelivery(record, h.scheduler.Graph(), time.Now())
	if err != nil {
		return err
	}

	return h.archive.Add(ctx, completed)
}
