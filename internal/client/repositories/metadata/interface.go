// Package metadata stores small client-side settings, such as the session
// id, as key/value pairs in the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a string key/value store. Get returns common.ErrorNotFound
// for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
