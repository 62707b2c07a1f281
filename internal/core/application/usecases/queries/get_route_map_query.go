package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetRouteMapQueryIsNotConstructed = errors.New(
	"GetRouteMapQuery must be created via NewGetRouteMapQuery constructor",
)

// GetRouteMapQuery retrieves the route map: the graph's locations with their
// outgoing legs, plus a route summary for every delivered parcel.
type GetRouteMapQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRouteMapQuery creates a parameterless route map query.
func NewGetRouteMapQuery() GetRouteMapQuery {
	return GetRouteMapQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRouteMapQueryIsNotConstructed if validation fails.
func (q GetRouteMapQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteMapQueryIsNotConstructed)
}

// GetRouteMapQueryResponse describes the graph and the delivered routes.
type GetRouteMapQueryResponse struct {
	Warehouse string

	// Locations lists every registered location in registration order,
	// each with its outgoing legs in insertion order.
	Locations []RouteMapLocation

	// DeliveredRoutes summarizes the route of every Delivered record,
	// in registration order.
	DeliveredRoutes []DeliveredRoute
}

// RouteMapLocation is one node of the route map.
type RouteMapLocation struct {
	Name string
	Legs []RouteLeg
}

// RouteLeg is one directed edge of the route map.
type RouteLeg struct {
	To         string
	TravelTime time.Duration
}

// DeliveredRoute is the route summary of one delivered parcel.
type DeliveredRoute struct {
	ParcelID    string
	Origin      string
	Destination string

	// Path is the minimum-hop route, empty when the destination is not
	// reachable on the current graph.
	Path []string

	// DirectTravelTime is valid only when DirectTravelTimeKnown is true;
	// presentation renders the unknown case as "unknown".
	DirectTravelTime      time.Duration
	DirectTravelTimeKnown bool
	PathTravelTime        time.Duration
}
