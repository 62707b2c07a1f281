// Package routing provides the route graph for the dispatch system: the fixed
// map of locations reachable from the warehouse with travel-time weighted edges.
//
// The package includes:
//   - RouteGraph: location registry, weighted edges, BFS pathfinding, and
//     direct-edge travel-time lookup
//   - Typed errors: InvalidRouteError, NotReachableError, EdgeNotFoundError
//
// Key business rules:
//   - Travel times are non-negative
//   - Routes may only connect registered locations
//   - Pathfinding minimizes hop count, not travel time; weights are reported
//     separately via direct-edge lookup
//   - A destination unreachable from the warehouse is a configuration error,
//     surfaced to callers as NotReachableError
package routing
