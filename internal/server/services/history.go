package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/uuidfeed/internal/server/config"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/repomanager"
)

// HistoryService serves the most recent records, newest first.
type HistoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	maxLimit    int
}

func NewHistoryService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *HistoryService {
	maxLimit := cfg.HistoryLimit
	if maxLimit < 1 {
		maxLimit = 1
	}
	return &HistoryService{db: db, repomanager: m, maxLimit: maxLimit}
}

// Recent returns up to limit records. limit <= 0 means the configured
// maximum; larger values are clamped to it.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]*models.Record, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	items, err := s.repomanager.Records(s.db).Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error loading history: %w", err)
	}
	return items, nil
}
