package services

import (
	"sync"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/routing"
	"dispatch/internal/pkg/errs"
)

// Scheduler is the delivery scheduling engine. It owns the authoritative
// record store, the FIFO queue of pending parcel IDs, and the single active
// dispatch slot, and it drives every status transition.
//
// Scheduling policy:
//   - At most one delivery is active (Dispatched or Out for Delivery) at any
//     time; that delivery owns the dispatch slot.
//   - A newly registered delivery is promoted to Dispatched immediately when
//     the slot is free, otherwise it waits in the pending queue.
//   - When a delivery reaches Delivered the slot frees and the oldest pending
//     delivery is promoted, strictly first-in first-out.
//
// All mutations run under a single mutex so that concurrent callers cannot
// promote two deliveries into the one slot: read current state, decide the
// transition, and mutate happen as one atomic unit. Accessors hand out
// clones, never the stored records, so readers cannot observe or cause a
// mid-mutation state.
//
// Example:
//
//	graph, _ := routing.NewRouteGraph(warehouse)
//	scheduler, _ := services.NewScheduler(graph)
//
//	d, err := scheduler.Register("PKG-001", "Acme Ltd", "J. Doe", areaC)
//	if err != nil {
//	    // DuplicateParcelError or UnknownDestinationError
//	}
//	fmt.Println(d.Status()) // Dispatched: the slot was free
type Scheduler struct {
	mu sync.Mutex

	graph *routing.RouteGraph

	// records maps parcel ID to the authoritative delivery record.
	// Records are never deleted; delivered parcels stay for reporting.
	records map[string]*delivery.Delivery

	// insertion keeps parcel IDs in registration order for stable snapshots.
	insertion []string

	// pending is the FIFO queue of parcel IDs waiting for the dispatch slot.
	pending []string

	// activeID is the parcel occupying the dispatch slot; empty means free.
	activeID string

	// history is the append-only log of status transitions.
	history []StatusChange

	nextSeq uint64
}

// NewScheduler creates a Scheduler bound to a route graph. The graph defines
// the set of destinations the scheduler accepts registrations for.
func NewScheduler(graph *routing.RouteGraph) (*Scheduler, error) {
	if graph == nil {
		return nil, errs.NewValueIsRequiredError("graph")
	}

	return &Scheduler{
		graph:   graph,
		records: make(map[string]*delivery.Delivery),
	}, nil
}

// Graph returns the route graph the scheduler validates destinations against.
func (s *Scheduler) Graph() *routing.RouteGraph {
	return s.graph
}

// Register creates a delivery record for a new parcel.
//
// The record starts Pending. If the dispatch slot is free it is immediately
// promoted to Dispatched and occupies the slot; otherwise its parcel ID is
// appended to the pending queue.
//
// Fails with DuplicateParcelError when the parcel ID exists, and with
// UnknownDestinationError when the destination is not a registered location
// on the route graph. Nothing is mutated on failure.
//
// Returns a clone of the record reflecting its post-registration status.
func (s *Scheduler) Register(parcelID, sender, receiver string, destination kernel.Location) (*delivery.Delivery, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[parcelID]; exists {
		return nil, NewDuplicateParcelError(parcelID)
	}

	if !s.graph.Contains(destination) {
		return nil, NewUnknownDestinationError(destination.Name())
	}

	d, err := delivery.NewDelivery(parcelID, sender, receiver, destination, s.nextSeq+1)
	if err != nil {
		return nil, err
	}
	s.nextSeq++

	s.records[parcelID] = d
	s.insertion = append(s.insertion, parcelID)

	if s.activeID == "" {
		if err := s.promote(d); err != nil {
			return nil, err
		}
	} else {
		s.pending = append(s.pending, parcelID)
	}

	return d.Clone(), nil
}

// AdvanceStatus moves a delivery to target per the linear lifecycle.
//
// Moving into Dispatched requires the slot to be free (or already owned by
// this parcel); otherwise the call fails with DispatchSlotOccupiedError.
// When a delivery reaches Delivered the slot frees and the head of the
// pending queue, if any, is promoted Pending -> Dispatched.
//
// Returns the parcel ID auto-promoted by this call, or the empty string.
// On any failure the record and the queue are left unchanged.
func (s *Scheduler) AdvanceStatus(parcelID string, target delivery.Status) (promoted string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.records[parcelID]
	if !ok {
		return "", errs.NewObjectNotFoundError("parcelID", parcelID)
	}

	if target == delivery.Dispatched && s.activeID != "" && s.activeID != parcelID {
		return "", NewDispatchSlotOccupiedError(parcelID, s.activeID)
	}

	from := d.Status()
	if err := d.AdvanceTo(target); err != nil {
		return "", err
	}
	s.history = append(s.history, newStatusChange(parcelID, from, target))

	switch {
	case target == delivery.Dispatched:
		// Manual promotion of a pending parcel claims the slot and leaves
		// the queue, regardless of its FIFO position.
		s.activeID = parcelID
		s.removePending(parcelID)
	case target.IsTerminal():
		s.activeID = ""
		promoted = s.dispatchHead()
	}

	return promoted, nil
}

// DispatchNext promotes the oldest pending delivery when the dispatch slot
// is free. It is a no-op when the slot is occupied or the queue is empty.
//
// Returns the promoted parcel ID and true, or the empty string and false.
func (s *Scheduler) DispatchNext() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeID != "" {
		return "", false
	}

	promoted := s.dispatchHead()
	return promoted, promoted != ""
}

// dispatchHead pops the pending queue head and promotes it into the slot.
// Caller holds the mutex and has verified the slot is free.
func (s *Scheduler) dispatchHead() string {
	for len(s.pending) > 0 {
		head := s.pending[0]
		s.pending = s.pending[1:]

		d, ok := s.records[head]
		if !ok || d.Status() != delivery.Pending {
			// Stale queue entry, e.g. manually dispatched out of order.
			continue
		}

		if err := s.promote(d); err != nil {
			continue
		}
		return head
	}

	return ""
}

// promote transitions a pending record into the slot. Caller holds the mutex.
func (s *Scheduler) promote(d *delivery.Delivery) error {
	if err := d.AdvanceTo(delivery.Dispatched); err != nil {
		return err
	}

	s.activeID = d.ParcelID()
	s.history = append(s.history, newStatusChange(d.ParcelID(), delivery.Pending, delivery.Dispatched))
	return nil
}

// removePending deletes a parcel ID from the queue wherever it sits.
// Caller holds the mutex.
func (s *Scheduler) removePending(parcelID string) {
	for i, id := range s.pending {
		if id == parcelID {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Get returns a clone of the record for the given parcel ID, or an
// ObjectNotFoundError when no such parcel is registered.
func (s *Scheduler) Get(parcelID string) (*delivery.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.records[parcelID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("parcelID", parcelID)
	}

	return d.Clone(), nil
}

// Snapshot returns clones of all records in registration order.
// The snapshot is taken under the scheduler's exclusion, so it is a
// consistent view; reports operate on it without further locking.
func (s *Scheduler) Snapshot() []*delivery.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*delivery.Delivery, 0, len(s.insertion))
	for _, id := range s.insertion {
		out = append(out, s.records[id].Clone())
	}
	return out
}

// Active returns the parcel ID occupying the dispatch slot, if any.
func (s *Scheduler) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeID, s.activeID != ""
}

// PendingQueue returns the parcel IDs waiting for the slot, oldest first.
func (s *Scheduler) PendingQueue() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.pending))
	copy(out, s.pending)
	return out
}

// History returns the status-change log for one parcel, oldest first.
func (s *Scheduler) History(parcelID string) []StatusChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []StatusChange
	for _, ev := range s.history {
		if ev.ParcelID == parcelID {
			out = append(out, ev)
		}
	}
	return out
}
