package delivery

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method. This ensures all records
	// are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery represents a single parcel delivery record. It is the aggregate
// root that carries a parcel through its status lifecycle from registration
// to completion.
//
// Delivery follows these invariants:
//   - Must have a non-empty parcel ID, sender, and receiver
//   - Must have a valid destination location
//   - Status transitions follow the strictly linear lifecycle
//   - Can only be created through NewDelivery or RestoreDelivery
//
// The record store owns the authoritative instance; everything else works
// with parcel IDs or clones, so a report can never drift the stored record.
type Delivery struct {
	// parcelID is the unique identifier for the delivery
	parcelID string

	// sender is the name of the party shipping the parcel
	sender string

	// receiver is the name of the party the parcel is addressed to
	receiver string

	// destination is the delivery target, a node on the route graph
	destination kernel.Location

	// seq is the registration sequence number, assigned by the record store.
	// It orders FIFO promotion and breaks destination-sort ties.
	seq uint64

	// status is the current state in the delivery lifecycle
	status Status

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewDelivery creates a new Delivery record in Pending status.
// This is the only way to create a fresh record, ensuring all invariants hold.
//
// Parameters:
//   - parcelID: unique identifier for the parcel (non-empty)
//   - sender: name of the sending party (non-empty)
//   - receiver: name of the receiving party (non-empty)
//   - destination: delivery target, must be a constructed Location
//   - seq: registration sequence number assigned by the record store
//
// Example:
//
//	dest, _ := kernel.NewLocation("Area C")
//	d, err := delivery.NewDelivery("PKG-001", "Acme Ltd", "J. Doe", dest, 1)
//	if err != nil {
//	    // Handle validation error
//	}
func NewDelivery(parcelID, sender, receiver string, destination kernel.Location, seq uint64) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		seq:           seq,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setParcelID(parcelID),
		d.setSender(sender),
		d.setReceiver(receiver),
		d.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persisted state.
// Unlike NewDelivery it accepts any valid status, so archived records can be
// rehydrated without replaying the lifecycle.
func RestoreDelivery(
	parcelID, sender, receiver string,
	destination kernel.Location,
	seq uint64,
	status Status,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(parcelID, sender, receiver, destination, seq)
	if err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Delivery was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by parcel ID.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.parcelID == other.parcelID
}

// ParcelID returns the delivery's unique identifier.
func (d *Delivery) ParcelID() string {
	return d.parcelID
}

// Sender returns the name of the sending party.
func (d *Delivery) Sender() string {
	return d.sender
}

// Receiver returns the name of the receiving party.
func (d *Delivery) Receiver() string {
	return d.receiver
}

// Destination returns the delivery target location.
func (d *Delivery) Destination() kernel.Location {
	return d.destination
}

// Seq returns the registration sequence number.
func (d *Delivery) Seq() uint64 {
	return d.seq
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// AdvanceTo moves the delivery to target per the linear lifecycle.
// On an illegal transition the record is left unchanged and an
// InvalidTransitionError is returned.
func (d *Delivery) AdvanceTo(target Status) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Clone returns an independent copy of the record. Reports and callers get
// clones so mutations never reach the authoritative record store.
func (d *Delivery) Clone() *Delivery {
	if d == nil {
		return nil
	}

	clone := *d
	return &clone
}

func (d *Delivery) setParcelID(parcelID string) error {
	if parcelID == "" {
		return errs.NewValueIsRequiredError("parcelID")
	}
	d.parcelID = parcelID
	return nil
}

func (d *Delivery) setSender(sender string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	d.sender = sender
	return nil
}

func (d *Delivery) setReceiver(receiver string) error {
	if receiver == "" {
		return errs.NewValueIsRequiredError("receiver")
	}
	d.receiver = receiver
	return nil
}

func (d *Delivery) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	d.destination = destination
	return nil
}
