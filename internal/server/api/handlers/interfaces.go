// Package handlers implements the HTTP handlers of the uuidfeed API.
package handlers

import (
	"context"

	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
)

// Generator creates identifiers.
type Generator interface {
	Generate(ctx context.Context, clientID string, isGift bool) (*models.GenerateResult, error)
	BulkGenerate(ctx context.Context, clientID string, count int) ([]string, error)
}

// StatsReader returns aggregate counters.
type StatsReader interface {
	Get(ctx context.Context) (*models.Stats, error)
}

// HistoryReader returns the most recent records.
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]*models.Record, error)
}

// FeedIssuer hands out feed credentials.
type FeedIssuer interface {
	Issue(clientID string) (*models.FeedConfig, error)
}

// Broadcaster hands out subscriptions to inserted records.
type Broadcaster interface {
	Subscribe() (<-chan *models.Record, func())
}
