package kernel

import (
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location identifies a node on the route graph: the warehouse or a delivery
// destination. Location is an immutable value object whose name is guaranteed
// to be non-empty. The zero value is invalid and fails validation - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation("Area A")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: Area A
type Location struct { //nolint:recvcheck //using for validation
	name  string
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given name.
// The name must be a non-empty string; it is the node's unique identifier
// within the route graph.
func NewLocation(name string) (Location, error) {
	if name == "" {
		return Location{}, errs.NewValueIsRequiredError("location name")
	}

	return Location{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Location was created through NewLocation.
// The zero value fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Name returns the location's identifier.
func (l Location) Name() string {
	return l.name
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return l.name
}

// IsEqual compares two locations by name. Both locations must be properly
// constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return l.name == other.name, nil
}
