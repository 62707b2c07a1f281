package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDeliveryHistoryQuery_EmptyParcelID(t *testing.T) {
	_, err := queries.NewGetDeliveryHistoryQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrHistoryParcelIDIsRequired)
}

func TestGetDeliveryHistoryQueryHandler_Handle_FullLifecycle(t *testing.T) {
	scheduler := newScheduler(t)
	h := queries.NewGetDeliveryHistoryQueryHandler(scheduler)

	register(t, scheduler, "P-1", "Area A")
	deliver(t, scheduler, "P-1")

	query, err := queries.NewGetDeliveryHistoryQuery("P-1")
	require.NoError(t, err)

	response, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, "P-1", response.ParcelID)

	require.Len(t, response.Changes, 3)
	assert.Equal(t, delivery.Pending, response.Changes[0].From)
	assert.Equal(t, delivery.Dispatched, response.Changes[0].To)
	assert.Equal(t, delivery.OutForDelivery, response.Changes[1].To)
	assert.Equal(t, delivery.Delivered, response.Changes[2].To)

	for i, change := range response.Changes {
		assert.NotZero(t, change.EventID, "change %d has no event id", i)
		assert.False(t, change.At.IsZero(), "change %d has no timestamp", i)
	}
	assert.False(t, response.Changes[2].At.Before(response.Changes[0].At))
}

func TestGetDeliveryHistoryQueryHandler_Handle_UnknownParcel(t *testing.T) {
	h := queries.NewGetDeliveryHistoryQueryHandler(newScheduler(t))

	query, err := queries.NewGetDeliveryHistoryQuery("ghost")
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
