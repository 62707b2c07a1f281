package queries

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetArchivedDeliveriesQueryHandler reads completed deliveries straight from
// the database, bypassing the in-memory scheduler.
type GetArchivedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetArchivedDeliveriesQueryHandler creates a handler for archive queries.
// Requires a GORM database connection for query execution.
func NewGetArchivedDeliveriesQueryHandler(db *gorm.DB) GetArchivedDeliveriesQueryHandler {
	return GetArchivedDeliveriesQueryHandler{db: db}
}

// Handle executes the archive query. Results are sorted by completion order
// for consistent output.
func (h GetArchivedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetArchivedDeliveriesQuery,
) ([]GetArchivedDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	archived := make([]GetArchivedDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			parcel_id,
			sender,
			receiver,
			origin,
			destination,
			route,
			direct_travel_time,
			direct_travel_time_known,
			path_travel_time,
			delivered_at
		FROM completed_deliveries
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetArchivedDeliveriesQueryResponse
		var route pq.StringArray
		var directTravelTime, pathTravelTime int64

		err = rows.Scan(
			&resp.ParcelID,
			&resp.Sender,
			&resp.Receiver,
			&resp.Origin,
			&resp.Destination,
			&route,
			&directTravelTime,
			&resp.DirectTravelTimeKnown,
			&pathTravelTime,
			&resp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Route = route
		resp.DirectTravelTime = time.Duration(directTravelTime)
		resp.PathTravelTime = time.Duration(pathTravelTime)
		archived = append(archived, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return archived, nil
}
