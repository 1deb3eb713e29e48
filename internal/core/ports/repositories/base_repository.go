package repositories

import (
	"context"
)

// SortOrder selects the date ordering of a listing.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// HealthChecker is implemented by stores that can report liveness
type HealthChecker interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error
}
