package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/uuidfeed/internal/client/models"
	"github.com/dmitrijs2005/uuidfeed/internal/common"
	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	pb "github.com/dmitrijs2005/uuidfeed/internal/proto"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultReconnectInterval is used when no positive interval is configured.
const DefaultReconnectInterval = 3 * time.Second

// FeedAPI is the part of the HTTP API the subscriber depends on.
type FeedAPI interface {
	FeedConfig(ctx context.Context, clientID string) (*models.FeedConfig, error)
	History(ctx context.Context, limit int) ([]models.Record, error)
}

// feedDialer opens a feed client for addr; the closer releases it.
type feedDialer func(addr string) (pb.FeedServiceClient, io.Closer, error)

func dialFeed(addr string) (pb.FeedServiceClient, io.Closer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return pb.NewFeedServiceClient(conn), conn, nil
}

// Subscriber keeps a live feed subscription open. Each (re)connection
// fetches fresh credentials, opens the stream and then backfills from
// history, so records missed while disconnected reappear through the
// caller's de-duplication.
type Subscriber struct {
	api       FeedAPI
	clientID  string
	interval  time.Duration
	logger    logging.Logger
	dial      feedDialer
	onRecord  func(models.Record)
	onHistory func([]models.Record)
}

func NewSubscriber(api FeedAPI, clientID string, interval time.Duration, l logging.Logger,
	onRecord func(models.Record), onHistory func([]models.Record)) *Subscriber {
	if interval <= 0 {
		interval = DefaultReconnectInterval
	}
	return &Subscriber{
		api:       api,
		clientID:  clientID,
		interval:  interval,
		logger:    l.With("module", "feed_subscriber"),
		dial:      dialFeed,
		onRecord:  onRecord,
		onHistory: onHistory,
	}
}

// Run blocks until ctx is cancelled, resubscribing after every disconnect.
func (s *Subscriber) Run(ctx context.Context) error {
	err := retry.Do(ctx, retry.NewConstant(s.interval), func(ctx context.Context) error {
		err := s.subscribeOnce(ctx)
		if ctx.Err() != nil {
			return nil
		}
		s.logger.Warn(ctx, "feed disconnected", "error", err, "retry_in", s.interval.String())
		return retry.RetryableError(err)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *Subscriber) subscribeOnce(ctx context.Context) error {
	fc, err := s.api.FeedConfig(ctx, s.clientID)
	if err != nil {
		return fmt.Errorf("error fetching feed config: %w", err)
	}

	client, closer, err := s.dial(fc.FeedAddr)
	if err != nil {
		return fmt.Errorf("error dialing feed: %w", err)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := client.Subscribe(metadata.AppendToOutgoingContext(ctx, common.FeedTokenHeaderName, fc.FeedToken), &emptypb.Empty{})
	if err != nil {
		return fmt.Errorf("error subscribing: %w", err)
	}

	// The header arrives once the server is registered for new records, so
	// history fetched afterwards overlaps the live stream instead of
	// leaving a gap.
	if _, err := stream.Header(); err != nil {
		return fmt.Errorf("error subscribing: %w", err)
	}

	if items, err := s.api.History(ctx, 0); err != nil {
		s.logger.Warn(ctx, "history backfill failed", "error", err)
	} else if s.onHistory != nil {
		s.onHistory(items)
	}

	s.logger.Info(ctx, "feed connected", "addr", fc.FeedAddr)

	for {
		msg, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("feed closed by server")
			}
			return err
		}

		rec, err := StructToRecord(msg)
		if err != nil {
			s.logger.Warn(ctx, "malformed feed message", "error", err)
			continue
		}
		if s.onRecord != nil {
			s.onRecord(rec)
		}
	}
}

// StructToRecord decodes a feed message.
func StructToRecord(msg *structpb.Struct) (models.Record, error) {
	fields := msg.GetFields()

	rec := models.Record{
		ID:       int64(fields[pb.FieldID].GetNumberValue()),
		UUID:     fields[pb.FieldUUID].GetStringValue(),
		ClientID: fields[pb.FieldClientID].GetStringValue(),
		IsGift:   fields[pb.FieldIsGift].GetBoolValue(),
	}
	if rec.UUID == "" {
		return models.Record{}, errors.New("message without uuid")
	}

	if raw := fields[pb.FieldCreatedAt].GetStringValue(); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return models.Record{}, fmt.Errorf("bad created_at: %w", err)
		}
		rec.CreatedAt = t
	}

	return rec, nil
}
