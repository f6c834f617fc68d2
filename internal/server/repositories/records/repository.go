// Package records declares the server-side repository contract for the
// append-only generated_uuids table.
package records

import (
	"context"

	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
)

// Repository stores generated identifiers.
type Repository interface {
	// Create inserts rec and fills its ID and CreatedAt from the database.
	// A duplicate UUID yields common.ErrCollision.
	Create(ctx context.Context, rec *models.Record) (*models.Record, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]*models.Record, error)
}
