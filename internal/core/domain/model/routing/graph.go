package routing

import (
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// edgeKey identifies a directed edge for O(1) travel-time lookup.
type edgeKey struct {
	from string
	to   string
}

// RouteGraph is the fixed map of delivery routes: a directed graph of
// locations rooted at the warehouse, with a travel-time weight on each edge.
//
// Pathfinding and travel time are deliberately separate concerns:
// ShortestPathBFS discovers the minimum-hop path ignoring weights, while
// TravelTime is a direct-edge lookup that never sums multi-hop paths.
//
// The graph is safe for concurrent use: configuration writes take the write
// lock, report reads share the read lock.
type RouteGraph struct {
	mu sync.RWMutex

	warehouse kernel.Location

	// nodes indexes registered locations by name.
	nodes map[string]kernel.Location

	// adjacency keeps outgoing neighbors in insertion order, which makes the
	// BFS tie-break among equal-hop candidates deterministic.
	adjacency map[string][]kernel.Location

	// order remembers location registration order for stable listings.
	order []kernel.Location

	travelTimes map[edgeKey]time.Duration
}

// NewRouteGraph creates a graph containing only the warehouse node.
// Every delivery route starts at the warehouse.
func NewRouteGraph(warehouse kernel.Location) (*RouteGraph, error) {
	if err := warehouse.Validate(); err != nil {
		return nil, err
	}

	g := &RouteGraph{
		warehouse:   warehouse,
		nodes:       make(map[string]kernel.Location),
		adjacency:   make(map[string][]kernel.Location),
		travelTimes: make(map[edgeKey]time.Duration),
	}
	g.addLocation(warehouse)

	return g, nil
}

// Warehouse returns the graph's root location.
func (g *RouteGraph) Warehouse() kernel.Location {
	return g.warehouse
}

// AddLocation registers a node. Registering the same location twice is a no-op.
func (g *RouteGraph) AddLocation(loc kernel.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addLocation(loc)
	return nil
}

func (g *RouteGraph) addLocation(loc kernel.Location) {
	if _, ok := g.nodes[loc.Name()]; ok {
		return
	}

	g.nodes[loc.Name()] = loc
	g.adjacency[loc.Name()] = nil
	g.order = append(g.order, loc)
}

// AddRoute adds a directed edge with the given travel time.
// Both endpoints must already be registered and the travel time must be
// non-negative; otherwise an InvalidRouteError is returned and the graph is
// left unchanged.
func (g *RouteGraph) AddRoute(from, to kernel.Location, travelTime time.Duration) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if travelTime < 0 {
		return NewInvalidRouteError(from.Name(), to.Name(),
			errs.NewValueIsInvalidErrorWithCause("travelTime", fmt.Errorf("%s is negative", travelTime)))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from.Name()]; !ok {
		return NewInvalidRouteError(from.Name(), to.Name(),
			errs.NewObjectNotFoundError("location", from.Name()))
	}
	if _, ok := g.nodes[to.Name()]; !ok {
		return NewInvalidRouteError(from.Name(), to.Name(),
			errs.NewObjectNotFoundError("location", to.Name()))
	}

	key := edgeKey{from: from.Name(), to: to.Name()}
	if _, ok := g.travelTimes[key]; !ok {
		g.adjacency[from.Name()] = append(g.adjacency[from.Name()], to)
	}
	g.travelTimes[key] = travelTime

	return nil
}

// ShortestPathBFS finds the minimum-hop path between two registered locations
// using breadth-first traversal. Edge weights play no role here; the hop count
// alone decides, and ties among equal-hop candidates fall to the neighbor
// discovered first in adjacency insertion order.
//
// Returns the ordered sequence of locations from "from" to "to" inclusive,
// or a NotReachableError when no path exists (including when either endpoint
// is unregistered).
func (g *RouteGraph) ShortestPathBFS(from, to kernel.Location) ([]kernel.Location, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[from.Name()]; !ok {
		return nil, NewNotReachableError(from.Name(), to.Name())
	}
	if _, ok := g.nodes[to.Name()]; !ok {
		return nil, NewNotReachableError(from.Name(), to.Name())
	}

	if from.Name() == to.Name() {
		return []kernel.Location{from}, nil
	}

	// Visited is marked at enqueue time so the first discoverer of a node
	// owns it, which keeps the tie-break deterministic.
	parent := make(map[string]string)
	visited := map[string]bool{from.Name(): true}
	queue := []string{from.Name()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.adjacency[current] {
			if visited[neighbor.Name()] {
				continue
			}

			visited[neighbor.Name()] = true
			parent[neighbor.Name()] = current

			if neighbor.Name() == to.Name() {
				return g.reconstructPath(parent, from.Name(), to.Name()), nil
			}

			queue = append(queue, neighbor.Name())
		}
	}

	return nil, NewNotReachableError(from.Name(), to.Name())
}

// reconstructPath walks the parent map back from sink to source.
func (g *RouteGraph) reconstructPath(parent map[string]string, source, sink string) []kernel.Location {
	var reversed []kernel.Location
	for name := sink; ; {
		reversed = append(reversed, g.nodes[name])
		if name == source {
			break
		}
		name = parent[name]
	}

	path := make([]kernel.Location, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// TravelTime returns the weight of the direct edge from "from" to "to".
// It is a pure O(1) lookup and never sums multi-hop paths; when no direct
// edge exists an EdgeNotFoundError is returned.
func (g *RouteGraph) TravelTime(from, to kernel.Location) (time.Duration, error) {
	if err := from.Validate(); err != nil {
		return 0, err
	}
	if err := to.Validate(); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	tm, ok := g.travelTimes[edgeKey{from: from.Name(), to: to.Name()}]
	if !ok {
		return 0, NewEdgeNotFoundError(from.Name(), to.Name())
	}

	return tm, nil
}

// PathTravelTime sums the direct-edge travel times along a path.
// Segments without a recorded direct edge contribute zero, so the result is
// a lower bound on the true travel time.
func (g *RouteGraph) PathTravelTime(path []kernel.Location) time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total time.Duration
	for i := 0; i+1 < len(path); i++ {
		total += g.travelTimes[edgeKey{from: path[i].Name(), to: path[i+1].Name()}]
	}
	return total
}

// Locations returns all registered locations in registration order.
func (g *RouteGraph) Locations() []kernel.Location {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]kernel.Location, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the outgoing neighbors of a location in insertion order.
// An unregistered location has no neighbors.
func (g *RouteGraph) Neighbors(loc kernel.Location) []kernel.Location {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors := g.adjacency[loc.Name()]
	out := make([]kernel.Location, len(neighbors))
	copy(out, neighbors)
	return out
}

// Contains reports whether a location is registered in the graph.
func (g *RouteGraph) Contains(loc kernel.Location) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[loc.Name()]
	return ok
}
