package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/uuidfeed/internal/client/client"
	"github.com/dmitrijs2005/uuidfeed/internal/client/config"
	"github.com/dmitrijs2005/uuidfeed/internal/client/display"
	"github.com/dmitrijs2005/uuidfeed/internal/client/models"
	"github.com/dmitrijs2005/uuidfeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/uuidfeed/internal/client/session"
	"github.com/dmitrijs2005/uuidfeed/internal/client/storage"
	"github.com/dmitrijs2005/uuidfeed/internal/client/stream"
	"github.com/dmitrijs2005/uuidfeed/internal/logging"
)

// API is the server surface the client uses.
type API interface {
	client.FeedAPI
	Generate(ctx context.Context, clientID string, isGift bool) (*models.GenerateResult, error)
	BulkGenerate(ctx context.Context, clientID string, count int) ([]string, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

type App struct {
	config    *config.Config
	api       API
	db        *sql.DB
	stream    *stream.Stream
	sessionID string
	logger    logging.Logger
	compact   func() bool

	statsMu sync.Mutex
	stats   *models.Stats
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(logging.Options{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile, Output: os.Stderr})
	if err != nil {
		return nil, fmt.Errorf("error creating logger: %w", err)
	}

	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	id, err := session.LoadOrCreate(ctx, metadata.NewSQLiteRepository(db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:    c,
		api:       client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout),
		db:        db,
		stream:    stream.New(stream.MaxEntries),
		sessionID: id,
		logger:    logger,
		compact:   display.IsCompactTerminal,
	}, nil
}

// Run loads history, starts the feed subscriber and blocks in the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.db.Close()

	if items, err := a.api.History(ctx, 0); err != nil {
		a.logger.Warn(ctx, "history unavailable", "error", err)
	} else {
		a.stream.Load(items)
	}
	a.refreshStats(ctx)

	onPush := func(rec models.Record) { a.onPush(ctx, rec) }
	sub := client.NewSubscriber(a.api, a.sessionID, a.config.ReconnectInterval, a.logger, onPush, a.stream.Load)
	go func() {
		_ = sub.Run(ctx)
	}()

	printlnFn("Welcome to uuidfeed (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// onPush merges a record from the feed. A new record is echoed together
// with freshly fetched statistics.
func (a *App) onPush(ctx context.Context, rec models.Record) {
	if !a.stream.Add(rec) {
		return
	}
	printlnFn(a.formatRecord(rec))
	a.refreshStats(ctx)
	printlnFn("  " + a.statsLine())
}

// refreshStats replaces the cached statistics; on failure the previous
// values stay.
func (a *App) refreshStats(ctx context.Context) {
	st, err := a.api.Stats(ctx)
	if err != nil {
		a.logger.Warn(ctx, "stats unavailable", "error", err)
		return
	}
	a.setStats(st)
}

func (a *App) setStats(st *models.Stats) {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()
	a.stats = st
}

func (a *App) statsLine() string {
	a.statsMu.Lock()
	st := a.stats
	a.statsMu.Unlock()

	if st == nil {
		return "stats n/a"
	}
	return fmt.Sprintf("total %d, collisions %d, p %s",
		st.TotalGenerated, st.Collisions, display.FormatProbability(st.TotalGenerated, a.compact()))
}

func (a *App) status() string {
	return fmt.Sprintf("%s, %d shown, %s", a.sessionID, a.stream.Len(), a.statsLine())
}

func (a *App) formatRecord(rec models.Record) string {
	return fmt.Sprintf("%s  %-10s  %s", rec.CreatedAt.Local().Format("15:04:05"), stream.Label(rec, a.sessionID), rec.UUID)
}
