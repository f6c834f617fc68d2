// Package services contains server-side business logic. This file implements
// GeneratorService, which mints UUIDs and records them, counting successes
// and collisions through the counters table.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/dbx"
	"github.com/dmitrijs2005/uuidfeed/internal/server/config"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Bulk generation bounds. A request without a count gets DefaultBulkCount.
const (
	DefaultBulkCount = 10
	MinBulkCount     = 1
)

// GeneratorOption customises a GeneratorService.
type GeneratorOption func(*GeneratorService)

// WithUUIDSource replaces the random UUID source, e.g. to force collisions
// in tests.
func WithUUIDSource(fn func() (uuid.UUID, error)) GeneratorOption {
	return func(s *GeneratorService) {
		s.newUUID = fn
	}
}

// GeneratorService creates identifiers and persists them. Uniqueness is
// enforced only by the database unique index; the service holds no locks.
type GeneratorService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	newUUID      func() (uuid.UUID, error)
	bulkMaxCount int
}

// NewGeneratorService constructs a GeneratorService using repositories and
// server config.
func NewGeneratorService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, opts ...GeneratorOption) *GeneratorService {
	s := &GeneratorService{
		db:           db,
		repomanager:  m,
		newUUID:      uuid.NewRandom,
		bulkMaxCount: cfg.BulkMaxCount,
	}
	if s.bulkMaxCount < MinBulkCount {
		s.bulkMaxCount = MinBulkCount
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate creates one UUIDv4 and stores it for clientID.
//
// On success the record is inserted and total_generated incremented in the
// same transaction. If the value already exists the transaction is rolled
// back, collisions is incremented by one and the result has Collision set.
// Any other failure is returned as an error and nothing is counted.
func (s *GeneratorService) Generate(ctx context.Context, clientID string, isGift bool) (*models.GenerateResult, error) {
	id, err := s.newUUID()
	if err != nil {
		return nil, fmt.Errorf("error generating uuid: %w", err)
	}
	value := id.String()

	var created *models.Record
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rec, err := s.repomanager.Records(tx).Create(ctx, &models.Record{UUID: value, ClientID: clientID, IsGift: isGift})
		if err != nil {
			return err
		}
		if _, err := s.repomanager.Counters(tx).Add(ctx, common.CounterTotalGenerated, 1); err != nil {
			return fmt.Errorf("error incrementing %s: %w", common.CounterTotalGenerated, err)
		}
		created = rec
		return nil
	})

	if errors.Is(err, common.ErrCollision) {
		if err := s.countCollision(ctx); err != nil {
			return nil, err
		}
		return &models.GenerateResult{UUID: value, Collision: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error storing uuid: %w", err)
	}

	return &models.GenerateResult{UUID: value, Record: created}, nil
}

// BulkGenerate creates count identifiers for clientID in one transaction.
// count is clamped to [MinBulkCount, BulkMaxCount]. The batch is
// all-or-nothing: a single duplicate rolls every insert back, increments
// collisions once and returns common.ErrCollision.
func (s *GeneratorService) BulkGenerate(ctx context.Context, clientID string, count int) ([]string, error) {
	count = s.ClampBulkCount(count)

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := s.newUUID()
		if err != nil {
			return nil, fmt.Errorf("error generating uuid: %w", err)
		}
		values = append(values, id.String())
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Records(tx)
		for _, v := range values {
			if _, err := repo.Create(ctx, &models.Record{UUID: v, ClientID: clientID}); err != nil {
				return err
			}
		}
		if _, err := s.repomanager.Counters(tx).Add(ctx, common.CounterTotalGenerated, int64(len(values))); err != nil {
			return fmt.Errorf("error incrementing %s: %w", common.CounterTotalGenerated, err)
		}
		return nil
	})

	if errors.Is(err, common.ErrCollision) {
		if err := s.countCollision(ctx); err != nil {
			return nil, err
		}
		return nil, common.ErrCollision
	}
	if err != nil {
		return nil, fmt.Errorf("error storing uuids: %w", err)
	}

	return values, nil
}

// ClampBulkCount maps a requested batch size onto the allowed range.
// Zero means "not specified" and yields DefaultBulkCount.
func (s *GeneratorService) ClampBulkCount(count int) int {
	if count == 0 {
		count = DefaultBulkCount
	}
	if count < MinBulkCount {
		return MinBulkCount
	}
	if count > s.bulkMaxCount {
		return s.bulkMaxCount
	}
	return count
}

// countCollision runs outside the aborted transaction so the increment
// survives the rollback.
func (s *GeneratorService) countCollision(ctx context.Context) error {
	if _, err := s.repomanager.Counters(s.db).Add(ctx, common.CounterCollisions, 1); err != nil {
		return fmt.Errorf("error incrementing %s: %w", common.CounterCollisions, err)
	}
	return nil
}
