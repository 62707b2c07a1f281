package http

import "time"

// Request bodies.
type (
	// NewDeliveryRequest registers one parcel for delivery.
	NewDeliveryRequest struct {
		ParcelID    string `json:"parcelId"`
		Sender      string `json:"sender"`
		Receiver    string `json:"receiver"`
		Destination string `json:"destination"`
	}

	// AdvanceStatusRequest moves a parcel to the named status.
	AdvanceStatusRequest struct {
		Target string `json:"target"`
	}

	// NewLocationRequest registers a location on the route map.
	NewLocationRequest struct {
		Name string `json:"name"`
	}

	// NewRouteRequest adds a directed leg between two locations.
	// TravelTime uses Go duration syntax, e.g. "3m".
	NewRouteRequest struct {
		From       string `json:"from"`
		To         string `json:"to"`
		TravelTime string `json:"travelTime"`
	}
)

// Response bodies.
type (
	// DispatchResponse reports the outcome of a dispatch request.
	DispatchResponse struct {
		ParcelID string `json:"parcelId,omitempty"`
		Promoted bool   `json:"promoted"`
	}

	// DeliveryBoardResponse is the grouped, sorted delivery board.
	DeliveryBoardResponse struct {
		Groups []DeliveryGroup `json:"groups"`
	}

	// DeliveryGroup is one status bucket of the board.
	DeliveryGroup struct {
		Status  string          `json:"status"`
		Entries []DeliveryEntry `json:"entries"`
	}

	// DeliveryEntry is one record as the board shows it.
	DeliveryEntry struct {
		ParcelID    string `json:"parcelId"`
		Sender      string `json:"sender"`
		Receiver    string `json:"receiver"`
		Destination string `json:"destination"`
		Status      string `json:"status"`
	}

	// DeliveryHistoryResponse is the recorded lifecycle of one parcel.
	DeliveryHistoryResponse struct {
		ParcelID string              `json:"parcelId"`
		Changes  []StatusChangeEntry `json:"changes"`
	}

	// StatusChangeEntry is one recorded transition.
	StatusChangeEntry struct {
		EventID string    `json:"eventId"`
		From    string    `json:"from"`
		To      string    `json:"to"`
		At      time.Time `json:"at"`
	}

	// RouteMapResponse describes the graph and the delivered routes.
	RouteMapResponse struct {
		Warehouse       string                `json:"warehouse"`
		Locations       []LocationNode        `json:"locations"`
		DeliveredRoutes []DeliveredRouteEntry `json:"deliveredRoutes"`
	}

	// LocationNode is one node of the route map.
	LocationNode struct {
		Name   string      `json:"name"`
		Routes []RouteEdge `json:"routes"`
	}

	// RouteEdge is one directed leg of the route map.
	RouteEdge struct {
		To         string `json:"to"`
		TravelTime string `json:"travelTime"`
	}

	// DeliveredRouteEntry is the route summary of one delivered parcel.
	// DirectTravelTime reads "unknown" when no direct leg exists.
	DeliveredRouteEntry struct {
		ParcelID         string   `json:"parcelId"`
		Origin           string   `json:"origin"`
		Destination      string   `json:"destination"`
		Path             []string `json:"path,omitempty"`
		DirectTravelTime string   `json:"directTravelTime"`
		PathTravelTime   string   `json:"pathTravelTime"`
	}

	// ArchivedDelivery is one completed delivery from the durable log.
	ArchivedDelivery struct {
		ParcelID         string    `json:"parcelId"`
		Sender           string    `json:"sender"`
		Receiver         string    `json:"receiver"`
		Origin           string    `json:"origin"`
		Destination      string    `json:"destination"`
		Route            []string  `json:"route,omitempty"`
		DirectTravelTime string    `json:"directTravelTime"`
		PathTravelTime   string    `json:"pathTravelTime"`
		DeliveredAt      time.Time `json:"deliveredAt"`
	}

	// ErrorResponse is the uniform error body.
	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)
