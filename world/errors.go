package world

import "errors"

var (
	// ErrEntityNotFound: the command names an entity that is gone.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrResourceUnavailable: an asset needed to spawn or fire is not loaded.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrCapacityExhausted: every spawn point is taken.
	ErrCapacityExhausted = errors.New("no free spawn point")
)
