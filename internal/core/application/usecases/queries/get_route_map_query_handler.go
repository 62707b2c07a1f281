package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// GetRouteMapQueryHandler builds the route map from the scheduler's graph
// and its record snapshot.
type GetRouteMapQueryHandler struct {
	scheduler *services.Scheduler
	reporter  services.RouteReporter
}

// NewGetRouteMapQueryHandler creates a handler for route map queries.
func NewGetRouteMapQueryHandler(scheduler *services.Scheduler, reporter services.RouteReporter) GetRouteMapQueryHandler {
	return GetRouteMapQueryHandler{
		scheduler: scheduler,
		reporter:  reporter,
	}
}

// Handle executes the route map query.
func (h GetRouteMapQueryHandler) Handle(
	ctx context.Context,
	query GetRouteMapQuery,
) (GetRouteMapQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteMapQueryResponse{}, err
	}

	graph := h.scheduler.Graph()

	response := GetRouteMapQueryResponse{
		Warehouse: graph.Warehouse().Name(),
	}

	for _, from := range graph.Locations() {
		node := RouteMapLocation{Name: from.Name()}
		for _, to := range graph.Neighbors(from) {
			tm, err := graph.TravelTime(from, to)
			if err != nil {
				return GetRouteMapQueryResponse{}, err
			}
			node.Legs = append(node.Legs, RouteLeg{To: to.Name(), TravelTime: tm})
		}
		response.Locations = append(response.Locations, node)
	}

	reports, err := h.reporter.RouteMapReport(h.scheduler.Snapshot(), graph)
	if err != nil {
		return GetRouteMapQueryResponse{}, err
	}
	for _, report := range reports {
		route := DeliveredRoute{
			ParcelID:    report.ParcelID,
			Origin:      report.Origin.Name(),
			Destination: report.Destination.Name(),

			DirectTravelTime:      report.DirectTravelTime,
			DirectTravelTimeKnown: report.DirectTravelTimeKnown,
			PathTravelTime:        report.PathTravelTime,
		}
		for _, loc := range report.Path {
			route.Path = append(route.Path, loc.Name())
		}
		response.DeliveredRoutes = append(response.DeliveredRoutes, route)
	}

	return response, nil
}
