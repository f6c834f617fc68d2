// Package counters declares the repository contract for the named counters
// (total_generated, collisions) kept in the database.
package counters

import "context"

// Repository reads and increments named counters.
type Repository interface {
	// Add increments counter name by delta, creating it when missing, and
	// returns the new value.
	Add(ctx context.Context, name string, delta int64) (int64, error)

	// All returns every counter keyed by name.
	All(ctx context.Context) (map[string]int64, error)
}
