package services

import (
	"dispatch/internal/core/domain/model/delivery"
)

// Sorter orders and groups delivery records for reporting.
//
// Sorting uses partition-exchange (quicksort) keyed on the destination name.
// Quicksort is not stable, so ties on equal destination keys are broken by
// the registration sequence number: records to the same destination always
// appear in insertion order. This makes the comparison a total order and the
// sort deterministic and idempotent.
type Sorter struct{}

// NewSorter creates a Sorter instance.
func NewSorter() Sorter {
	return Sorter{}
}

// SortByDestination returns the records ordered by destination name,
// ascending lexicographic. The input slice is not mutated; empty and
// single-element inputs come back as-is (copied).
func (Sorter) SortByDestination(records []*delivery.Delivery) []*delivery.Delivery {
	sorted := make([]*delivery.Delivery, len(records))
	copy(sorted, records)

	quickSort(sorted, 0, len(sorted)-1)
	return sorted
}

// GroupAndSort partitions records by status and sorts each group by
// destination. The returned map carries every valid status as a key, in
// the lifecycle order Pending, Dispatched, Out for Delivery, Delivered
// (iterate delivery.Statuses() for ordered traversal); a status with no
// records maps to an empty group. Every input record lands in exactly
// one group.
func (s Sorter) GroupAndSort(records []*delivery.Delivery) map[delivery.Status][]*delivery.Delivery {
	groups := make(map[delivery.Status][]*delivery.Delivery, len(delivery.Statuses()))
	for _, status := range delivery.Statuses() {
		groups[status] = []*delivery.Delivery{}
	}

	for _, d := range records {
		groups[d.Status()] = append(groups[d.Status()], d)
	}

	for status, group := range groups {
		groups[status] = s.SortByDestination(group)
	}

	return groups
}

// quickSort sorts records[lo..hi] in place by (destination, sequence).
func quickSort(records []*delivery.Delivery, lo, hi int) {
	if lo >= hi {
		return
	}

	p := partition(records, lo, hi)
	quickSort(records, lo, p-1)
	quickSort(records, p+1, hi)
}

// partition applies the Lomuto exchange scheme with the last element as pivot.
func partition(records []*delivery.Delivery, lo, hi int) int {
	pivot := records[hi]
	i := lo

	for j := lo; j < hi; j++ {
		if less(records[j], pivot) {
			records[i], records[j] = records[j], records[i]
			i++
		}
	}

	records[i], records[hi] = records[hi], records[i]
	return i
}

// less compares two records by destination name, falling back to registration
// sequence on equal keys. Sequence numbers are unique, so this is a strict
// total order.
func less(a, b *delivery.Delivery) bool {
	if a.Destination().Name() != b.Destination().Name() {
		return a.Destination().Name() < b.Destination().Name()
	}
	return a.Seq() < b.Seq()
}
