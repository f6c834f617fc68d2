package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/uuidfeed/internal/dbx"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/counters"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/records"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path runs against *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db dbx.DBTX) records.Repository
	Counters(db dbx.DBTX) counters.Repository
}
