package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/uuidfeed/internal/proto"
	"github.com/dmitrijs2005/uuidfeed/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Subscribe streams every inserted record until the client goes away.
func (s *FeedServer) Subscribe(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	ctx := stream.Context()
	clientID, _ := ClientIDFromContext(ctx)

	records, cancel := s.hub.Subscribe()
	defer cancel()

	if err := stream.SendHeader(metadata.Pairs(pb.HeaderSubscribed, "true")); err != nil {
		return err
	}

	s.logger.Info(ctx, "Feed subscriber connected", "client_id", clientID)
	defer s.logger.Info(ctx, "Feed subscriber disconnected", "client_id", clientID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case rec, ok := <-records:
			if !ok {
				return nil
			}
			msg, err := recordToStruct(rec)
			if err != nil {
				s.logger.Error(ctx, "error encoding record", "error", err, "uuid", rec.UUID)
				return status.Error(codes.Internal, "internal error")
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		}
	}
}

func recordToStruct(rec *models.Record) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		pb.FieldID:        float64(rec.ID),
		pb.FieldUUID:      rec.UUID,
		pb.FieldCreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		pb.FieldClientID:  rec.ClientID,
		pb.FieldIsGift:    rec.IsGift,
	})
}
