package services

import (
	"time"

	"github.com/google/uuid"

	"dispatch/internal/core/domain/model/delivery"
)

// StatusChange records a single status transition of a delivery.
// The scheduler appends one for every transition it performs, including
// automatic FIFO promotions, giving reports a full audit trail.
type StatusChange struct {
	// EventID uniquely identifies the transition event.
	EventID uuid.UUID

	// ParcelID identifies the delivery that changed status.
	ParcelID string

	// From is the status before the transition.
	From delivery.Status

	// To is the status after the transition.
	To delivery.Status

	// At is the UTC time the transition was applied.
	At time.Time
}

func newStatusChange(parcelID string, from, to delivery.Status) StatusChange {
	return StatusChange{
		EventID:  uuid.New(),
		ParcelID: parcelID,
		From:     from,
		To:       to,
		At:       time.Now().UTC(),
	}
}
