package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var (
	ErrAddRouteCommandIsNotConstructed = errors.New(
		"AddRouteCommand must be created via NewAddRouteCommand constructor",
	)
	ErrRouteFromIsRequired    = errors.New("route origin is required")
	ErrRouteToIsRequired      = errors.New("route target is required")
	ErrTravelTimeIsNegative   = errors.New("travel time must not be negative")
	ErrRouteEndpointsAreEqual = errors.New("route origin and target must differ")
)

// AddRouteCommand represents a request to add a directed edge between two
// registered locations, weighted with the travel time of the leg.
type AddRouteCommand struct { //nolint:recvcheck //using for validation
	from       string
	to         string
	travelTime time.Duration

	guard guard.ConstructorGuard
}

// NewAddRouteCommand creates a command to add a route. Validates that both
// endpoints are named, differ from each other, and that the travel time is
// not negative.
func NewAddRouteCommand(from, to string, travelTime time.Duration) (AddRouteCommand, error) {
	cmd := AddRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEndpoints(from, to),
		cmd.setTravelTime(travelTime),
	); err != nil {
		return AddRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddRouteCommandIsNotConstructed if validation fails.
func (c AddRouteCommand) Validate() error {
	return c.guard.Validate(ErrAddRouteCommandIsNotConstructed)
}

// From returns the name of the route's origin location.
func (c AddRouteCommand) From() string {
	return c.from
}

// To returns the name of the route's target location.
func (c AddRouteCommand) To() string {
	return c.to
}

// TravelTime returns the weight of the leg.
func (c AddRouteCommand) TravelTime() time.Duration {
	return c.travelTime
}

func (c *AddRouteCommand) setEndpoints(from, to string) error {
	if from == "" {
		return ErrRouteFromIsRequired
	}
	if to == "" {
		return ErrRouteToIsRequired
	}
	if from == to {
		return ErrRouteEndpointsAreEqual
	}

	c.from = from
	c.to = to
	return nil
}

func (c *AddRouteCommand) setTravelTime(travelTime time.Duration) error {
	if travelTime < 0 {
		return ErrTravelTimeIsNegative
	}

	c.travelTime = travelTime
	return nil
}
