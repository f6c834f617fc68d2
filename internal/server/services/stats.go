package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/server/config"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/repomanager"
)

// StatsService reads the counters. Results may be reused for up to ttl;
// the cache is per process and never feeds back into the counters.
type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	ttl         time.Duration
	now         func() time.Time

	mu       sync.Mutex
	cached   *models.Stats
	cachedAt time.Time
}

// NewStatsService constructs a StatsService; cfg.StatsCacheTTL of 0 disables
// caching.
func NewStatsService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *StatsService {
	return &StatsService{
		db:          db,
		repomanager: m,
		ttl:         cfg.StatsCacheTTL,
		now:         time.Now,
	}
}

// Get returns total_generated and collisions. Missing counters read as 0.
func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 && s.cached != nil && s.now().Sub(s.cachedAt) < s.ttl {
		st := *s.cached
		return &st, nil
	}

	all, err := s.repomanager.Counters(s.db).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading counters: %w", err)
	}

	st := &models.Stats{
		TotalGenerated: all[common.CounterTotalGenerated],
		Collisions:     all[common.CounterCollisions],
	}

	s.cached = st
	s.cachedAt = s.now()

	res := *st
	return &res, nil
}
