// Package grpc serves the live feed over a gRPC server stream.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/uuidfeed/internal/logging"
	pb "github.com/dmitrijs2005/uuidfeed/internal/proto"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"google.golang.org/grpc"
)

// Broadcaster hands out subscriptions to inserted records.
type Broadcaster interface {
	Subscribe() (<-chan *models.Record, func())
}

// TokenVerifier validates a feed token and returns its client id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type FeedServer struct {
	pb.UnimplementedFeedServiceServer
	address string
	hub     Broadcaster
	tokens  TokenVerifier
	logger  logging.Logger
}

func NewFeedServer(a string, l logging.Logger, hub Broadcaster, tokens TokenVerifier) *FeedServer {
	return &FeedServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		hub:     hub,
		tokens:  tokens,
	}
}

// newGRPCServer builds the grpc.Server with interceptors and the service
// registered, ready to Serve.
func (s *FeedServer) newGRPCServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainStreamInterceptor(s.feedTokenInterceptor))
	pb.RegisterFeedServiceServer(srv, s)
	return srv
}

func (s *FeedServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *FeedServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newGRPCServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
