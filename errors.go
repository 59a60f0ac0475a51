package waypoint

import "errors"

// Errors returned by the loading helpers. Navigation never returns errors.
var (
	ErrUnknownEdge   = errors.New("waypoint: unknown edge")
	ErrUnknownTouch  = errors.New("waypoint: unknown touch policy")
	ErrDuplicateStep = errors.New("waypoint: duplicate step")
	ErrEmptyTour     = errors.New("waypoint: tour has no steps")
	ErrUnknownTour   = errors.New("waypoint: unknown tour")
)
