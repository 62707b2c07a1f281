package cmd

import (
	"fmt"
	"time"

	"dispatch/internal/adapters/out/postgres/archiverepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB    *gorm.DB
	scheduler *services.Scheduler
	sorter    services.Sorter
	reporter  services.RouteReporter
	archive   *archiverepo.GormDeliveryArchive
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	graph, err := defaultRouteGraph()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build route graph: %w", err)
	}

	scheduler, err := services.NewScheduler(graph)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build scheduler: %w", err)
	}

	return CompositionRoot{
		gormDB:    gormDB,
		scheduler: scheduler,
		sorter:    services.NewSorter(),
		reporter:  services.NewRouteReporter(),
		archive:   archiverepo.NewGormDeliveryArchive(gormDB),
	}, nil
}

// defaultRouteGraph seeds the topology the service starts with: a warehouse
// fanning out to two hub areas, each hub fanning out to two leaf areas.
func defaultRouteGraph() (*routing.RouteGraph, error) {
	warehouse, err := kernel.NewLocation("Warehouse")
	if err != nil {
		return nil, err
	}

	graph, err := routing.NewRouteGraph(warehouse)
	if err != nil {
		return nil, err
	}

	locations := make(map[string]kernel.Location, 6)
	for _, name := range []string{"Area A", "Area B", "Area C", "Area D", "Area E", "Area F"} {
		loc, locErr := kernel.NewLocation(name)
		if locErr != nil {
			return nil, locErr
		}
		if locErr = graph.AddLocation(loc); locErr != nil {
			return nil, locErr
		}
		locations[name] = loc
	}

	routes := []struct {
		from       kernel.Location
		to         kernel.Location
		travelTime time.Duration
	}{
		{warehouse, locations["Area A"], 3 * time.Minute},
		{warehouse, locations["Area B"], 4 * time.Minute},
		{locations["Area A"], locations["Area C"], 3 * time.Minute},
		{locations["Area A"], locations["Area D"], 3 * time.Minute},
		{locations["Area B"], locations["Area E"], 4 * time.Minute},
		{locations["Area B"], locations["Area F"], 4 * time.Minute},
	}
	for _, r := range routes {
		if err := graph.AddRoute(r.from, r.to, r.travelTime); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

func (c *CompositionRoot) CreateRegisterDeliveryCommandHandler() commands.RegisterDeliveryCommandHandler {
	return commands.NewRegisterDeliveryCommandHandler(c.scheduler)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.scheduler, c.reporter, c.archive)
}

func (c *CompositionRoot) CreateDispatchNextCommandHandler() commands.DispatchNextCommandHandler {
	return commands.NewDispatchNextCommandHandler(c.scheduler)
}

func (c *CompositionRoot) CreateAddLocationCommandHandler() commands.AddLocationCommandHandler {
	return commands.NewAddLocationCommandHandler(c.scheduler)
}

func (c *CompositionRoot) CreateAddRouteCommandHandler() commands.AddRouteCommandHandler {
	return commands.NewAddRouteCommandHandler(c.scheduler)
}

func (c *CompositionRoot) CreateGetDeliveryBoardQueryHandler() queries.GetDeliveryBoardQueryHandler {
	return queries.NewGetDeliveryBoardQueryHandler(c.scheduler, c.sorter)
}

func (c *CompositionRoot) CreateGetRouteMapQueryHandler() queries.GetRouteMapQueryHandler {
	return queries.NewGetRouteMapQueryHandler(c.scheduler, c.reporter)
}

func (c *CompositionRoot) CreateGetDeliveryHistoryQueryHandler() queries.GetDeliveryHistoryQueryHandler {
	return queries.NewGetDeliveryHistoryQueryHandler(c.scheduler)
}

func (c *CompositionRoot) CreateGetArchivedDeliveriesQueryHandler() queries.GetArchivedDeliveriesQueryHandler {
	return queries.NewGetArchivedDeliveriesQueryHandler(c.gormDB)
}
