package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
)

// GetDeliveryBoardQueryHandler builds the delivery board from a scheduler
// snapshot. The snapshot is taken once per query, so a board is internally
// consistent even while registrations keep arriving.
type GetDeliveryBoardQueryHandler struct {
	scheduler *services.Scheduler
	sorter    services.Sorter
}

// NewGetDeliveryBoardQueryHandler creates a handler for board queries.
func NewGetDeliveryBoardQueryHandler(scheduler *services.Scheduler, sorter services.Sorter) GetDeliveryBoardQueryHandler {
	return GetDeliveryBoardQueryHandler{
		scheduler: scheduler,
		sorter:    sorter,
	}
}

// Handle executes the board query. Groups appear in lifecycle order and
// every group is present even when empty; a status filter reduces the
// response to that single group.
func (h GetDeliveryBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryBoardQuery,
) (GetDeliveryBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryBoardQueryResponse{}, err
	}

	grouped := h.sorter.GroupAndSort(h.scheduler.Snapshot())

	statuses := delivery.Statuses()
	if filter, ok := query.StatusFilter(); ok {
		statuses = []delivery.Status{filter}
	}

	response := GetDeliveryBoardQueryResponse{
		Groups: make([]DeliveryBoardGroup, 0, len(statuses)),
	}
	for _, status := range statuses {
		group := DeliveryBoardGroup{
			Status:  status,
			Entries: make([]DeliveryBoardEntry, 0, len(grouped[status])),
		}
		for _, d := range grouped[status] {
			group.Entries = append(group.Entries, DeliveryBoardEntry{
				ParcelID:    d.ParcelID(),
				Sender:      d.Sender(),
				Receiver:    d.Receiver(),
				Destination: d.Destination().Name(),
				Status:      d.Status(),
			})
		}
		response.Groups = append(response.Groups, group)
	}

	return response, nil
}
