// Package ports defines the contracts between the core and the adapters.
// These interfaces enable dependency inversion: the application layer depends
// on them, the adapters implement them.
package ports

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// DeliveryArchive defines the persistence contract for completed deliveries.
// The live scheduler keeps every record in memory; the archive is the durable
// log a delivery is written to exactly once, when it reaches Delivered.
type DeliveryArchive interface {
	// Add appends one completed delivery to the archive.
	// The record must carry a non-empty parcel id.
	Add(ctx context.Context, record services.CompletedDelivery) error

	// GetAll retrieves every archived delivery, oldest first.
	GetAll(ctx context.Context) ([]services.CompletedDelivery, error)
}
