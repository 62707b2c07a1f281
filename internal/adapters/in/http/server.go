// Package http exposes the scheduling engine over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	registerDeliveryHandler commands.RegisterDeliveryCommandHandler
	advanceStatusHandler    commands.AdvanceStatusCommandHandler
	dispatchNextHandler     commands.DispatchNextCommandHandler
	addLocationHandler      commands.AddLocationCommandHandler
	addRouteHandler         commands.AddRouteCommandHandler

	// Query handlers
	deliveryBoardHandler      queries.GetDeliveryBoardQueryHandler
	routeMapHandler           queries.GetRouteMapQueryHandler
	deliveryHistoryHandler    queries.GetDeliveryHistoryQueryHandler
	archivedDeliveriesHandler queries.GetArchivedDeliveriesQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	registerDeliveryHandler commands.RegisterDeliveryCommandHandler,
	advanceStatusHandler commands.AdvanceStatusCommandHandler,
	dispatchNextHandler commands.DispatchNextCommandHandler,
	addLocationHandler commands.AddLocationCommandHandler,
	addRouteHandler commands.AddRouteCommandHandler,
	deliveryBoardHandler queries.GetDeliveryBoardQueryHandler,
	routeMapHandler queries.GetRouteMapQueryHandler,
	deliveryHistoryHandler queries.GetDeliveryHistoryQueryHandler,
	archivedDeliveriesHandler queries.GetArchivedDeliveriesQueryHandler,
) *Server {
	return &Server{
		registerDeliveryHandler: registerDeliveryHandler,
		advanceStatusHandler:    advanceStatusHandler,
		dispatchNextHandler:     dispatchNextHandler,
		addLocationHandler:      addLocationHandler,
		addRouteHandler:         addRouteHandler,

		deliveryBoardHandler:      deliveryBoardHandler,
		routeMapHandler:           routeMapHandler,
		deliveryHistoryHandler:    deliveryHistoryHandler,
		archivedDeliveriesHandler: archivedDeliveriesHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.RegisterDelivery)
	api.POST("/deliveries/:parcelID/status", s.AdvanceStatus)
	api.POST("/dispatch", s.DispatchNext)
	api.GET("/deliveries", s.GetDeliveryBoard)
	api.GET("/deliveries/:parcelID/history", s.GetDeliveryHistory)

	api.POST("/locations", s.AddLocation)
	api.POST("/routes", s.AddRoute)
	api.GET("/routes", s.GetRouteMap)

	api.GET("/archive", s.GetArchivedDeliveries)

	e.GET("/health", s.Health)
}

// RegisterDelivery handles POST /api/v1/deliveries.
func (s *Server) RegisterDelivery(ctx echo.Context) error {
	var req NewDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterDeliveryCommand(req.ParcelID, req.Sender, req.Receiver, req.Destination)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.registerDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AdvanceStatus handles POST /api/v1/deliveries/:parcelID/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	var req AdvanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := delivery.StatusFromName(req.Target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewAdvanceStatusCommand(ctx.Param("parcelID"), target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DispatchNext handles POST /api/v1/dispatch.
func (s *Server) DispatchNext(ctx echo.Context) error {
	cmd, err := commands.NewDispatchNextCommand()
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	parcelID, promoted, err := s.dispatchNextHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DispatchResponse{
		ParcelID: parcelID,
		Promoted: promoted,
	})
}

// GetDeliveryBoard handles GET /api/v1/deliveries. An optional "status"
// query parameter narrows the board to one group.
func (s *Server) GetDeliveryBoard(ctx echo.Context) error {
	query := queries.NewGetDeliveryBoardQuery()
	if name := ctx.QueryParam("status"); name != "" {
		status, err := delivery.StatusFromName(name)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		query, err = queries.NewGetDeliveryBoardQueryWithStatus(status)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
	}

	board, err := s.deliveryBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := DeliveryBoardResponse{Groups: make([]DeliveryGroup, 0, len(board.Groups))}
	for _, group := range board.Groups {
		entries := make([]DeliveryEntry, 0, len(group.Entries))
		for _, entry := range group.Entries {
			entries = append(entries, DeliveryEntry{
				ParcelID:    entry.ParcelID,
				Sender:      entry.Sender,
				Receiver:    entry.Receiver,
				Destination: entry.Destination,
				Status:      entry.Status.String(),
			})
		}
		response.Groups = append(response.Groups, DeliveryGroup{
			Status:  group.Status.String(),
			Entries: entries,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryHistory handles GET /api/v1/deliveries/:parcelID/history.
func (s *Server) GetDeliveryHistory(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryHistoryQuery(ctx.Param("parcelID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	history, err := s.deliveryHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := DeliveryHistoryResponse{ParcelID: history.ParcelID}
	for _, change := range history.Changes {
		response.Changes = append(response.Changes, StatusChangeEntry{
			EventID: change.EventID.String(),
			From:    change.From.String(),
			To:      change.To.String(),
			At:      change.At,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddLocation handles POST /api/v1/locations.
func (s *Server) AddLocation(ctx echo.Context) error {
	var req NewLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAddLocationCommand(req.Name)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.addLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AddRoute handles POST /api/v1/routes.
func (s *Server) AddRoute(ctx echo.Context) error {
	var req NewRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	travelTime, err := time.ParseDuration(req.TravelTime)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid travel time: "+err.Error())
	}

	cmd, err := commands.NewAddRouteCommand(req.From, req.To, travelTime)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.addRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetRouteMap handles GET /api/v1/routes.
func (s *Server) GetRouteMap(ctx echo.Context) error {
	routeMap, err := s.routeMapHandler.Handle(ctx.Request().Context(), queries.NewGetRouteMapQuery())
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := RouteMapResponse{Warehouse: routeMap.Warehouse}
	for _, node := range routeMap.Locations {
		location := LocationNode{Name: node.Name}
		for _, leg := range node.Legs {
			location.Routes = append(location.Routes, RouteEdge{
				To:         leg.To,
				TravelTime: leg.TravelTime.String(),
			})
		}
		response.Locations = append(response.Locations, location)
	}
	for _, route := range routeMap.DeliveredRoutes {
		response.DeliveredRoutes = append(response.DeliveredRoutes, deliveredRouteResponse(route))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetArchivedDeliveries handles GET /api/v1/archive.
func (s *Server) GetArchivedDeliveries(ctx echo.Context) error {
	archived, err := s.archivedDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetArchivedDeliveriesQuery())
	if err != nil {
		return mapDomainError(ctx, err)
	}

	response := make([]ArchivedDelivery, 0, len(archived))
	for _, record := range archived {
		archivedRecord := ArchivedDelivery{
			ParcelID:       record.ParcelID,
			Sender:         record.Sender,
			Receiver:       record.Receiver,
			Origin:         record.Origin,
			Destination:    record.Destination,
			Route:          record.Route,
			PathTravelTime: record.PathTravelTime.String(),
			DeliveredAt:    record.DeliveredAt,
		}
		if record.DirectTravelTimeKnown {
			archivedRecord.DirectTravelTime = record.DirectTravelTime.String()
		} else {
			archivedRecord.DirectTravelTime = "unknown"
		}
		response = append(response, archivedRecord)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func deliveredRouteResponse(route queries.DeliveredRoute) DeliveredRouteEntry {
	entry := DeliveredRouteEntry{
		ParcelID:       route.ParcelID,
		Origin:         route.Origin,
		Destination:    route.Destination,
		Path:           route.Path,
		PathTravelTime: route.PathTravelTime.String(),
	}
	if route.DirectTravelTimeKnown {
		entry.DirectTravelTime = route.DirectTravelTime.String()
	} else {
		entry.DirectTravelTime = "unknown"
	}
	return entry
}

// mapDomainError translates domain failures into HTTP status codes.
func mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrDuplicateParcel),
		errors.Is(err, services.ErrDispatchSlotOccupied),
		errors.Is(err, delivery.ErrInvalidTransition):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUnknownDestination),
		errors.Is(err, routing.ErrInvalidRoute),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
