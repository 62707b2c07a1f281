package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/pkg/errs"
)

// RouteReport describes the route of one delivered parcel: the BFS path from
// the warehouse and the travel times the route map records for it.
type RouteReport struct {
	// ParcelID identifies the delivered parcel.
	ParcelID string

	// Origin is the warehouse the route starts at.
	Origin kernel.Location

	// Destination is the parcel's delivery target.
	Destination kernel.Location

	// Path is the minimum-hop route from origin to destination.
	// Nil when the destination is not reachable on the graph.
	Path []kernel.Location

	// DirectTravelTime is the weight of the direct warehouse-to-destination
	// edge. Valid only when DirectTravelTimeKnown is true; presentation
	// renders the unknown case as "unknown" rather than a number.
	DirectTravelTime      time.Duration
	DirectTravelTimeKnown bool

	// PathTravelTime sums the direct edges along Path.
	PathTravelTime time.Duration
}

// CompletedDelivery is the archival record of a finished delivery: the
// parties, the route taken, and the travel times known for it. It is built
// once, when the record reaches Delivered, and handed to the archive.
type CompletedDelivery struct {
	ParcelID string
	Sender   string
	Receiver string

	// Origin is the warehouse name; Destination the delivery target.
	Origin      string
	Destination string

	// Route lists the location names along the BFS path, empty when the
	// destination was unreachable at completion time.
	Route []string

	DirectTravelTime      time.Duration
	DirectTravelTimeKnown bool
	PathTravelTime        time.Duration

	DeliveredAt time.Time
}

// RouteReporter builds route summaries for completed deliveries.
// It only reads the record snapshot and the graph; it never mutates either.
type RouteReporter struct{}

// NewRouteReporter creates a RouteReporter instance.
func NewRouteReporter() RouteReporter {
	return RouteReporter{}
}

// RouteMapReport returns one RouteReport per Delivered record, in the order
// the records are given. Records in any other status are skipped.
//
// For each delivered parcel the path is discovered with ShortestPathBFS and
// the direct travel time with the edge lookup; a destination without a
// direct edge from the warehouse reports DirectTravelTimeKnown=false, and an
// unreachable destination reports a nil path. Graph misconfiguration is a
// reporting gap, not a failure of the whole report.
func (RouteReporter) RouteMapReport(records []*delivery.Delivery, graph *routing.RouteGraph) ([]RouteReport, error) {
	warehouse := graph.Warehouse()

	reports := make([]RouteReport, 0)
	for _, d := range records {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if d.Status() != delivery.Delivered {
			continue
		}

		report := RouteReport{
			ParcelID:    d.ParcelID(),
			Origin:      warehouse,
			Destination: d.Destination(),
		}

		path, err := graph.ShortestPathBFS(warehouse, d.Destination())
		switch {
		case err == nil:
			report.Path = path
			report.PathTravelTime = graph.PathTravelTime(path)
		case errors.Is(err, routing.ErrNotReachable):
			// Leave the path nil; the destination dropped off the map
			// after registration.
		default:
			return nil, err
		}

		if tm, err := graph.TravelTime(warehouse, d.Destination()); err == nil {
			report.DirectTravelTime = tm
			report.DirectTravelTimeKnown = true
		}

		reports = append(reports, report)
	}

	return reports, nil
}

// CompleteDelivery builds the archival record for a record that has reached
// Delivered. The route and travel times are resolved against the graph the
// same way RouteMapReport resolves them; an unreachable destination yields
// an empty route, not an error.
func (r RouteReporter) CompleteDelivery(d *delivery.Delivery, graph *routing.RouteGraph, deliveredAt time.Time) (CompletedDelivery, error) {
	if err := d.Validate(); err != nil {
		return CompletedDelivery{}, err
	}
	if d.Status() != delivery.Delivered {
		return CompletedDelivery{}, errs.NewValueIsInvalidError("status")
	}

	reports, err := r.RouteMapReport([]*delivery.Delivery{d}, graph)
	if err != nil {
		return CompletedDelivery{}, err
	}
	report := reports[0]

	record := CompletedDelivery{
		ParcelID:    d.ParcelID(),
		Sender:      d.Sender(),
		Receiver:    d.Receiver(),
		Origin:      report.Origin.Name(),
		Destination: d.Destination().Name(),

		DirectTravelTime:      report.DirectTravelTime,
		DirectTravelTimeKnown: report.DirectTravelTimeKnown,
		PathTravelTime:        report.PathTravelTime,

		DeliveredAt: deliveredAt.UTC(),
	}
	for _, loc := range report.Path {
		record.Route = append(record.Route, loc.Name())
	}

	return record, nil
}
