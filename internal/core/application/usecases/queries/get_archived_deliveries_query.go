package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetArchivedDeliveriesQueryIsNotConstructed = errors.New(
	"GetArchivedDeliveriesQuery must be created via NewGetArchivedDeliveriesQuery constructor",
)

// GetArchivedDeliveriesQuery retrieves the durable log of completed
// deliveries, oldest first.
//
// Example:
//
//	query := NewGetArchivedDeliveriesQuery()
//	handler := NewGetArchivedDeliveriesQueryHandler(db)
//
//	archived, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read archive: %w", err)
//	}
//	fmt.Printf("%d deliveries completed so far\n", len(archived))
type GetArchivedDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetArchivedDeliveriesQuery creates a parameterless archive query.
func NewGetArchivedDeliveriesQuery() GetArchivedDeliveriesQuery {
	return GetArchivedDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetArchivedDeliveriesQueryIsNotConstructed if validation fails.
func (q GetArchivedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetArchivedDeliveriesQueryIsNotConstructed)
}

// GetArchivedDeliveriesQueryResponse is one archived delivery.
type GetArchivedDeliveriesQueryResponse struct {
	ParcelID    string
	Sender      string
	Receiver    string
	Origin      string
	Destination string
	Route       []string

	DirectTravelTime      time.Duration
	DirectTravelTimeKnown bool
	PathTravelTime        time.Duration

	DeliveredAt time.Time
}
