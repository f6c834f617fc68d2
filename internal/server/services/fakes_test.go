package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/dbx"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/counters"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/records"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// fakeRecordsRepo enforces uuid uniqueness the way the unique index does.
type fakeRecordsRepo struct {
	mu     sync.Mutex
	byUUID map[string]*models.Record
	nextID int64

	createErr error
	recentOut []*models.Record
	recentErr error
	lastLimit int
}

func newFakeRecordsRepo() *fakeRecordsRepo {
	return &fakeRecordsRepo{byUUID: map[string]*models.Record{}}
}

func (f *fakeRecordsRepo) Create(ctx context.Context, rec *models.Record) (*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byUUID[rec.UUID]; ok {
		return nil, common.ErrCollision
	}
	f.nextID++
	stored := *rec
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.byUUID[rec.UUID] = &stored
	return &stored, nil
}

func (f *fakeRecordsRepo) Recent(ctx context.Context, limit int) ([]*models.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastLimit = limit
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	return f.recentOut, nil
}

func (f *fakeRecordsRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byUUID)
}

type fakeCountersRepo struct {
	mu     sync.Mutex
	values map[string]int64
	calls  int

	addErr map[string]error
	allErr error
}

func newFakeCountersRepo() *fakeCountersRepo {
	return &fakeCountersRepo{values: map[string]int64{}, addErr: map[string]error{}}
}

func (f *fakeCountersRepo) Add(ctx context.Context, name string, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.addErr[name]; err != nil {
		return 0, err
	}
	f.values[name] += delta
	return f.values[name], nil
}

func (f *fakeCountersRepo) All(ctx context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.allErr != nil {
		return nil, f.allErr
	}
	out := make(map[string]int64, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeCountersRepo) get(name string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

type fakeRepoManager struct {
	r *fakeRecordsRepo
	c *fakeCountersRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{r: newFakeRecordsRepo(), c: newFakeCountersRepo()}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Records(db dbx.DBTX) records.Repository      { return m.r }
func (m *fakeRepoManager) Counters(db dbx.DBTX) counters.Repository    { return m.c }

var errBoom = errors.New("boom")
