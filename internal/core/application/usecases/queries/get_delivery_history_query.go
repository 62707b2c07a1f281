package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
		"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
	)
	ErrHistoryParcelIDIsRequired = errors.New("parcel id is required")
)

// GetDeliveryHistoryQuery retrieves the status change history of one parcel,
// oldest change first.
type GetDeliveryHistoryQuery struct { //nolint:recvcheck //using for validation
	parcelID string

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a history query for one parcel.
// Validates that the parcel id is non-empty.
func NewGetDeliveryHistoryQuery(parcelID string) (GetDeliveryHistoryQuery, error) {
	if parcelID == "" {
		return GetDeliveryHistoryQuery{}, ErrHistoryParcelIDIsRequired
	}

	return GetDeliveryHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryHistoryQueryIsNotConstructed if validation fails.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// ParcelID returns the parcel the history is requested for.
func (q GetDeliveryHistoryQuery) ParcelID() string {
	return q.parcelID
}

// GetDeliveryHistoryQueryResponse is the recorded lifecycle of one parcel.
type GetDeliveryHistoryQueryResponse struct {
	ParcelID string
	Changes  []StatusChangeEntry
}

// StatusChangeEntry is one recorded transition.
type StatusChangeEntry struct {
	EventID uuid.UUID
	From    delivery.Status
	To      delivery.Status
	At      time.Time
}
