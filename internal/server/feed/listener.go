package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// listenConn is the part of *pgx.Conn the listener needs.
type listenConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

type dialFunc func(ctx context.Context, dsn string) (listenConn, error)

func pgxDial(ctx context.Context, dsn string) (listenConn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Listener holds a dedicated connection that LISTENs on the insert channel
// and publishes every notification to the Hub. Events that fire while the
// connection is down are not replayed.
type Listener struct {
	dsn           string
	channel       string
	retryInterval time.Duration
	hub           *Hub
	logger        logging.Logger
	dial          dialFunc
}

func NewListener(dsn string, retryInterval time.Duration, hub *Hub, l logging.Logger) *Listener {
	return &Listener{
		dsn:           dsn,
		channel:       common.FeedChannel,
		retryInterval: retryInterval,
		hub:           hub,
		logger:        l.With("module", "feed_listener"),
		dial:          pgxDial,
	}
}

// Run listens until ctx is cancelled, reconnecting after retryInterval
// whenever the connection drops. It returns nil on cancellation.
func (l *Listener) Run(ctx context.Context) error {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			l.logger.Info(ctx, "Stopping feed listener...")
			return nil
		}

		l.logger.Warn(ctx, "feed disconnected", "error", err, "retry_in", l.retryInterval.String())

		select {
		case <-ctx.Done():
			l.logger.Info(ctx, "Stopping feed listener...")
			return nil
		case <-time.After(l.retryInterval):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.dial(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("error connecting: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("error subscribing to %s: %w", l.channel, err)
	}

	l.logger.Info(ctx, "Listening for inserts", "channel", l.channel)

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		rec, err := decodeRecord(n.Payload)
		if err != nil {
			l.logger.Warn(ctx, "malformed notification", "error", err, "payload", n.Payload)
			continue
		}

		l.logger.Debug(ctx, "record inserted", "uuid", rec.UUID, "client_id", rec.ClientID)
		l.hub.Publish(ctx, rec)
	}
}

func decodeRecord(payload string) (*models.Record, error) {
	rec := &models.Record{}
	if err := json.Unmarshal([]byte(payload), rec); err != nil {
		return nil, err
	}
	if rec.UUID == "" {
		return nil, fmt.Errorf("payload without uuid")
	}
	return rec, nil
}
