package services

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateParcel is the sentinel error for registrations reusing an
	// existing parcel ID.
	ErrDuplicateParcel = errors.New("parcel ID already registered")

	// ErrUnknownDestination is the sentinel error for registrations naming a
	// destination absent from the route graph.
	ErrUnknownDestination = errors.New("destination is not on the route map")

	// ErrDispatchSlotOccupied is the sentinel error for attempts to dispatch
	// a delivery while another one holds the active slot.
	ErrDispatchSlotOccupied = errors.New("dispatch slot is occupied")
)

// DuplicateParcelError reports a registration with a parcel ID that is
// already present in the record store.
type DuplicateParcelError struct {
	ParcelID string
}

// NewDuplicateParcelError creates a DuplicateParcelError for the given parcel.
func NewDuplicateParcelError(parcelID string) *DuplicateParcelError {
	return &DuplicateParcelError{ParcelID: parcelID}
}

func (e *DuplicateParcelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateParcel, e.ParcelID)
}

func (e *DuplicateParcelError) Unwrap() error {
	return ErrDuplicateParcel
}

// UnknownDestinationError reports a registration whose destination is not a
// location on the route graph.
type UnknownDestinationError struct {
	Destination string
}

// NewUnknownDestinationError creates an UnknownDestinationError for the given destination.
func NewUnknownDestinationError(destination string) *UnknownDestinationError {
	return &UnknownDestinationError{Destination: destination}
}

func (e *UnknownDestinationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownDestination, e.Destination)
}

func (e *UnknownDestinationError) Unwrap() error {
	return ErrUnknownDestination
}

// DispatchSlotOccupiedError reports an attempt to move a delivery into
// Dispatched while a different delivery holds the active slot. Promotion
// happens through the FIFO queue when the slot frees.
type DispatchSlotOccupiedError struct {
	ParcelID string
	ActiveID string
}

// NewDispatchSlotOccupiedError creates a DispatchSlotOccupiedError.
func NewDispatchSlotOccupiedError(parcelID, activeID string) *DispatchSlotOccupiedError {
	return &DispatchSlotOccupiedError{ParcelID: parcelID, ActiveID: activeID}
}

func (e *DispatchSlotOccupiedError) Error() string {
	return fmt.Sprintf("%s: cannot dispatch %s while %s is active", ErrDispatchSlotOccupied, e.ParcelID, e.ActiveID)
}

func (e *DispatchSlotOccupiedError) Unwrap() error {
	return ErrDispatchSlotOccupied
}
