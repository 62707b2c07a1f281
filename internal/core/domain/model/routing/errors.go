package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoute is the sentinel error for rejected route definitions:
	// a negative travel time or an unregistered endpoint.
	ErrInvalidRoute = errors.New("route is invalid")

	// ErrNotReachable is the sentinel error for BFS lookups that found no path.
	ErrNotReachable = errors.New("destination is not reachable")

	// ErrEdgeNotFound is the sentinel error for travel-time lookups with no
	// direct edge between the requested locations.
	ErrEdgeNotFound = errors.New("no direct route")
)

// InvalidRouteError reports a route definition the graph refused to accept.
type InvalidRouteError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidRouteError creates an InvalidRouteError for the given edge.
func NewInvalidRouteError(from, to string, cause error) *InvalidRouteError {
	return &InvalidRouteError{From: from, To: to, Cause: cause}
}

func (e *InvalidRouteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidRoute, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidRoute, e.From, e.To)
}

func (e *InvalidRouteError) Unwrap() error {
	return ErrInvalidRoute
}

// NotReachableError reports that breadth-first traversal found no path
// between two locations.
type NotReachableError struct {
	From string
	To   string
}

// NewNotReachableError creates a NotReachableError for the given endpoints.
func NewNotReachableError(from, to string) *NotReachableError {
	return &NotReachableError{From: from, To: to}
}

func (e *NotReachableError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrNotReachable, e.From, e.To)
}

func (e *NotReachableError) Unwrap() error {
	return ErrNotReachable
}

// EdgeNotFoundError reports that no direct edge connects two locations.
type EdgeNotFoundError struct {
	From string
	To   string
}

// NewEdgeNotFoundError creates an EdgeNotFoundError for the given endpoints.
func NewEdgeNotFoundError(from, to string) *EdgeNotFoundError {
	return &EdgeNotFoundError{From: from, To: to}
}

func (e *EdgeNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrEdgeNotFound, e.From, e.To)
}

func (e *EdgeNotFoundError) Unwrap() error {
	return ErrEdgeNotFound
}
