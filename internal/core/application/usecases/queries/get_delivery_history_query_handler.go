package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// GetDeliveryHistoryQueryHandler reads the status change log the scheduler
// keeps for every transition it applies.
type GetDeliveryHistoryQueryHandler struct {
	scheduler *services.Scheduler
}

// NewGetDeliveryHistoryQueryHandler creates a handler for history queries.
func NewGetDeliveryHistoryQueryHandler(scheduler *services.Scheduler) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{scheduler: scheduler}
}

// Handle executes the history query. The parcel must be registered; an
// unknown parcel is an error rather than an empty history.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) (GetDeliveryHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryHistoryQueryResponse{}, err
	}

	if _, err := h.scheduler.Get(query.ParcelID()); err != nil {
		return GetDeliveryHistoryQueryResponse{}, err
	}

	response := GetDeliveryHistoryQueryResponse{
		ParcelID: query.ParcelID(),
	}
	for _, change := range h.scheduler.History(query.ParcelID()) {
		response.Changes = append(response.Changes, StatusChangeEntry{
			EventID: change.EventID,
			From:    change.From,
			To:      change.To,
			At:      change.At,
		})
	}

	return response, nil
}
