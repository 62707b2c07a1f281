// Package queries contains read-only operations over the scheduler and the
// archive. Queries never modify state; handlers return plain response
// structs shaped for presentation.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryBoardQueryIsNotConstructed = errors.New(
	"GetDeliveryBoardQuery must be created via NewGetDeliveryBoardQuery constructor",
)

// GetDeliveryBoardQuery retrieves the live delivery board: every record
// grouped by status, each group sorted by destination name. An optional
// status filter narrows the board to a single group.
//
// Example:
//
//	query := NewGetDeliveryBoardQuery()
//	handler := NewGetDeliveryBoardQueryHandler(scheduler, sorter)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get delivery board: %w", err)
//	}
//	for _, group := range board.Groups {
//	    fmt.Printf("%s: %d deliveries\n", group.Status, len(group.Entries))
//	}
type GetDeliveryBoardQuery struct {
	statusFilter delivery.Status
	hasFilter    bool

	guard guard.ConstructorGuard
}

// NewGetDeliveryBoardQuery creates a query for the full board.
func NewGetDeliveryBoardQuery() GetDeliveryBoardQuery {
	return GetDeliveryBoardQuery{guard: guard.NewConstructorGuard()}
}

// NewGetDeliveryBoardQueryWithStatus creates a query narrowed to one status
// group. Returns an error for an unknown status.
func NewGetDeliveryBoardQueryWithStatus(status delivery.Status) (GetDeliveryBoardQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveryBoardQuery{}, err
	}

	return GetDeliveryBoardQuery{
		statusFilter: status,
		hasFilter:    true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetDeliveryBoardQueryIsNotConstructed if validation fails.
func (q GetDeliveryBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryBoardQueryIsNotConstructed)
}

// StatusFilter returns the status the board is narrowed to and whether a
// filter was set at all.
func (q GetDeliveryBoardQuery) StatusFilter() (delivery.Status, bool) {
	return q.statusFilter, q.hasFilter
}

// GetDeliveryBoardQueryResponse is the grouped, sorted board.
type GetDeliveryBoardQueryResponse struct {
	// Groups appear in lifecycle order: Pending, Dispatched,
	// Out for Delivery, Delivered. A filtered board holds one group.
	Groups []DeliveryBoardGroup
}

// DeliveryBoardGroup is one status bucket of the board.
type DeliveryBoardGroup struct {
	Status  delivery.Status
	Entries []DeliveryBoardEntry
}

// DeliveryBoardEntry is one delivery record as the board shows it.
type DeliveryBoardEntry struct {
	ParcelID    string
	Sender      string
	Receiver    string
	Destination string
	Status      delivery.Status
}
