package router

import "errors"

var (
	// ErrRouteNotFound is returned when no declared route matches a path.
	// There is no catch-all route; callers decide what an unmatched path means.
	ErrRouteNotFound = errors.New("no route for path")

	// ErrInvalidMode is returned by ParseMode for unknown history modes.
	ErrInvalidMode = errors.New("invalid history mode")
)
