package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/uuidfeed/internal/common"
	pb "github.com/dmitrijs2005/uuidfeed/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const clientIDKey ctxKey = "clientID"

// ClientIDFromContext returns the client id stored by the feed token
// interceptor.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok
}

// authedStream overrides Context so handlers see the client id.
type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }

func (s *FeedServer) feedTokenInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	if info.FullMethod != pb.FeedService_Subscribe_FullMethodName {
		return handler(srv, ss)
	}

	ctx := ss.Context()

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.FeedTokenHeaderName)
		if len(values) > 0 {
			token = values[0]
		}
	}
	if len(token) == 0 {
		return status.Error(codes.Unauthenticated, "missing token")
	}

	clientID, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return status.Error(codes.Unauthenticated, "token expired")
		}
		return status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(srv, &authedStream{ServerStream: ss, ctx: context.WithValue(ctx, clientIDKey, clientID)})
}
