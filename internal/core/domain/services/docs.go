// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dispatch system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Scheduler: the scheduling engine owning the record store, the FIFO
//     pending queue, and the single active dispatch slot
//   - Sorter: destination-key quicksort and status grouping for reports
//   - RouteReporter: route summaries for completed deliveries
//
// Domain services coordinate between aggregates, implementing business logic
// that spans the delivery lifecycle and the route graph.
package services
