// Package server initializes and runs the uuidfeed server: the HTTP API,
// the gRPC feed and the PostgreSQL change listener that drives both, with
// graceful shutdown on SIGINT, SIGTERM or SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/dmitrijs2005/uuidfeed/internal/server/api"
	"github.com/dmitrijs2005/uuidfeed/internal/server/api/handlers"
	"github.com/dmitrijs2005/uuidfeed/internal/server/config"
	"github.com/dmitrijs2005/uuidfeed/internal/server/feed"
	"github.com/dmitrijs2005/uuidfeed/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/uuidfeed/internal/server/services"
	"github.com/gin-gonic/gin"

	gs "github.com/dmitrijs2005/uuidfeed/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	listener    *feed.Listener
	httpServer  *api.HTTPServer
	feedServer  *gs.FeedServer
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(logging.Options{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	generator := services.NewGeneratorService(db, rm, c)
	stats := services.NewStatsService(db, rm, c)
	history := services.NewHistoryService(db, rm, c)
	feedAccess := services.NewFeedAccessService(c)

	hub := feed.NewHub(logger, feed.DefaultSubscriberBuffer)
	listener := feed.NewListener(c.DatabaseDSN, c.ListenerRetryInterval, hub, logger)

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(
		handlers.NewGenerateHandler(generator, logger),
		handlers.NewStatsHandler(stats, history, logger),
		handlers.NewFeedHandler(feedAccess, hub, logger),
		logger,
		c.RequestTimeout,
	)

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: rm,
		listener:    listener,
		httpServer:  api.NewHTTPServer(c.EndpointAddrHTTP, logger, router),
		feedServer:  gs.NewFeedServer(c.EndpointAddrGRPC, logger, hub, feedAccess),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runComponents runs every component until all have returned. The first
// failure cancels the rest and is returned.
func (app *App) runComponents(ctx context.Context, cancelFunc context.CancelFunc, components map[string]func(context.Context) error) error {
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for name, run := range components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(ctx); err != nil {
				app.logger.Error(ctx, "component failed", "component", name, "error", err)
				once.Do(func() { firstErr = fmt.Errorf("%s: %w", name, err) })
				cancelFunc()
			}
		}()
	}

	wg.Wait()
	return firstErr
}

// Run applies migrations, then serves until ctx is cancelled or a signal
// arrives. It returns the migration error or the first component failure,
// e.g. an address that cannot be bound.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	defer app.close(ctx)

	app.logger.Info(ctx, "Starting app...")

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return fmt.Errorf("migrations error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	components := map[string]func(context.Context) error{
		"http":     app.httpServer.Run,
		"grpc":     app.feedServer.Run,
		"listener": app.listener.Run,
	}

	if err := app.runComponents(ctx, cancelFunc, components); err != nil {
		return err
	}

	app.logger.Info(ctx, "App stopped")

	return nil
}

func (app *App) close(ctx context.Context) {
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
	if s, ok := app.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
