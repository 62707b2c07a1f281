package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRouteMapQueryHandler_Handle_ListsGraph(t *testing.T) {
	scheduler := newScheduler(t)
	h := queries.NewGetRouteMapQueryHandler(scheduler, services.NewRouteReporter())

	response, err := h.Handle(t.Context(), queries.NewGetRouteMapQuery())
	require.NoError(t, err)

	assert.Equal(t, "Warehouse", response.Warehouse)
	require.Len(t, response.Locations, 4)
	assert.Equal(t, "Warehouse", response.Locations[0].Name)
	require.Len(t, response.Locations[0].Legs, 2)
	assert.Equal(t, queries.RouteLeg{To: "Area A", TravelTime: 3 * time.Minute}, response.Locations[0].Legs[0])
	assert.Equal(t, queries.RouteLeg{To: "Area B", TravelTime: 4 * time.Minute}, response.Locations[0].Legs[1])

	assert.Empty(t, response.DeliveredRoutes)
}

func TestGetRouteMapQueryHandler_Handle_DeliveredRoutes(t *testing.T) {
	scheduler := newScheduler(t)
	h := queries.NewGetRouteMapQueryHandler(scheduler, services.NewRouteReporter())

	register(t, scheduler, "P-1", "Area C")
	deliver(t, scheduler, "P-1")
	// still in flight, must not appear on the route map
	register(t, scheduler, "P-2", "Area B")

	response, err := h.Handle(t.Context(), queries.NewGetRouteMapQuery())
	require.NoError(t, err)

	require.Len(t, response.DeliveredRoutes, 1)
	route := response.DeliveredRoutes[0]
	assert.Equal(t, "P-1", route.ParcelID)
	assert.Equal(t, "Warehouse", route.Origin)
	assert.Equal(t, "Area C", route.Destination)
	assert.Equal(t, []string{"Warehouse", "Area A", "Area C"}, route.Path)
	assert.Equal(t, 6*time.Minute, route.PathTravelTime)
	assert.False(t, route.DirectTravelTimeKnown)
}

func TestGetRouteMapQueryHandler_Handle_DirectEdgeKnown(t *testing.T) {
	scheduler := newScheduler(t)
	h := queries.NewGetRouteMapQueryHandler(scheduler, services.NewRouteReporter())

	register(t, scheduler, "P-1", "Area A")
	deliver(t, scheduler, "P-1")

	response, err := h.Handle(t.Context(), queries.NewGetRouteMapQuery())
	require.NoError(t, err)

	require.Len(t, response.DeliveredRoutes, 1)
	route := response.DeliveredRoutes[0]
	assert.True(t, route.DirectTravelTimeKnown)
	assert.Equal(t, 3*time.Minute, route.DirectTravelTime)
}

func TestGetRouteMapQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetRouteMapQueryHandler(newScheduler(t), services.NewRouteReporter())

	_, err := h.Handle(t.Context(), queries.GetRouteMapQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRouteMapQueryIsNotConstructed)
}
