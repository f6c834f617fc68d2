// Package proto holds the gRPC bindings for the live feed described in
// feed.proto. Messages are protobuf well-known types, so no generated
// message code is needed.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	FeedService_Subscribe_FullMethodName = "/uuidfeed.FeedService/Subscribe"
)

// HeaderSubscribed is sent in the Subscribe response header once the server
// is registered for new records; anything inserted afterwards is streamed.
const HeaderSubscribed = "feed-subscribed"

// Field names of a record Struct.
const (
	FieldID        = "id"
	FieldUUID      = "uuid"
	FieldCreatedAt = "created_at"
	FieldClientID  = "client_id"
	FieldIsGift    = "is_gift"
)

// FeedServiceClient is the client API for FeedService.
type FeedServiceClient interface {
	Subscribe(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error)
}

type feedServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFeedServiceClient(cc grpc.ClientConnInterface) FeedServiceClient {
	return &feedServiceClient{cc}
}

func (c *feedServiceClient) Subscribe(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &FeedService_ServiceDesc.Streams[0], FeedService_Subscribe_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// FeedService_SubscribeClient is the client side of the Subscribe stream.
type FeedService_SubscribeClient = grpc.ServerStreamingClient[structpb.Struct]

// FeedServiceServer is the server API for FeedService. Implementations
// must embed UnimplementedFeedServiceServer.
type FeedServiceServer interface {
	Subscribe(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error
	mustEmbedUnimplementedFeedServiceServer()
}

// UnimplementedFeedServiceServer must be embedded for forward compatibility.
type UnimplementedFeedServiceServer struct{}

func (UnimplementedFeedServiceServer) Subscribe(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error {
	return status.Errorf(codes.Unimplemented, "method Subscribe not implemented")
}
func (UnimplementedFeedServiceServer) mustEmbedUnimplementedFeedServiceServer() {}

// FeedService_SubscribeServer is the server side of the Subscribe stream.
type FeedService_SubscribeServer = grpc.ServerStreamingServer[structpb.Struct]

func RegisterFeedServiceServer(s grpc.ServiceRegistrar, srv FeedServiceServer) {
	s.RegisterService(&FeedService_ServiceDesc, srv)
}

func _FeedService_Subscribe_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(FeedServiceServer).Subscribe(m, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

// FeedService_ServiceDesc is the grpc.ServiceDesc for FeedService.
var FeedService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "uuidfeed.FeedService",
	HandlerType: (*FeedServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       _FeedService_Subscribe_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "feed.proto",
}
