// Package archiverepo persists completed deliveries. It implements the
// DeliveryArchive port over GORM, handling the conversion between the
// archival record and its database representation.
package archiverepo

import (
	"time"

	"dispatch/internal/core/domain/services"

	"github.com/lib/pq"
)

// CompletedDeliveryDTO represents the database structure for the completed
// deliveries log. The surrogate id preserves completion order; the route is
// stored as a text array.
type CompletedDeliveryDTO struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	ParcelID string `gorm:"uniqueIndex"`
	Sender   string
	Receiver string

	Origin      string
	Destination string
	Route       pq.StringArray `gorm:"type:text[]"`

	// Travel times are stored as nanoseconds.
	DirectTravelTime      int64
	DirectTravelTimeKnown bool
	PathTravelTime        int64

	DeliveredAt time.Time
}

// TableName specifies the database table name for archived deliveries.
func (CompletedDeliveryDTO) TableName() string {
	return "completed_deliveries"
}

// fromRecord converts an archival record to its database representation.
func fromRecord(record services.CompletedDelivery) CompletedDeliveryDTO {
	return CompletedDeliveryDTO{
		ParcelID: record.ParcelID,
		Sender:   record.Sender,
		Receiver: record.Receiver,

		Origin:      record.Origin,
		Destination: record.Destination,
		Route:       pq.StringArray(record.Route),

		DirectTravelTime:      int64(record.DirectTravelTime),
		DirectTravelTimeKnown: record.DirectTravelTimeKnown,
		PathTravelTime:        int64(record.PathTravelTime),

		DeliveredAt: record.DeliveredAt,
	}
}

// toRecord converts a database DTO back to the archival record.
func toRecord(dto CompletedDeliveryDTO) services.CompletedDelivery {
	return services.CompletedDelivery{
		ParcelID: dto.ParcelID,
		Sender:   dto.Sender,
		Receiver: dto.Receiver,

		Origin:      dto.Origin,
		Destination: dto.Destination,
		Route:       []string(dto.Route),

		DirectTravelTime:      time.Duration(dto.DirectTravelTime),
		DirectTravelTimeKnown: dto.DirectTravelTimeKnown,
		PathTravelTime:        time.Duration(dto.PathTravelTime),

		DeliveredAt: dto.DeliveredAt,
	}
}
