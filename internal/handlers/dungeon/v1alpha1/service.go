package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dungeon.api.v1alpha1.DungeonService"

// Full method names
const (
	GenerateMethod   = "/" + ServiceName + "/Generate"
	RepopulateMethod = "/" + ServiceName + "/Repopulate"
	GetDungeonMethod = "/" + ServiceName + "/GetDungeon"
)

// DungeonServiceServer is the server API for DungeonService. Requests and
// responses travel as google.protobuf.Struct messages.
type DungeonServiceServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Repopulate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDungeon(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterDungeonServiceServer registers srv on s
func RegisterDungeonServiceServer(s grpc.ServiceRegistrar, srv DungeonServiceServer) {
	s.RegisterService(&DungeonServiceDesc, srv)
}

// DungeonServiceDesc is the grpc.ServiceDesc for DungeonService
var DungeonServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DungeonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    unaryHandler(GenerateMethod, DungeonServiceServer.Generate),
		},
		{
			MethodName: "Repopulate",
			Handler:    unaryHandler(RepopulateMethod, DungeonServiceServer.Repopulate),
		},
		{
			MethodName: "GetDungeon",
			Handler:    unaryHandler(GetDungeonMethod, DungeonServiceServer.GetDungeon),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dungeon/api/v1alpha1/dungeon.proto",
}

// unaryMethod is a DungeonServiceServer method expression
type unaryMethod func(DungeonServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, method unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}

		server := srv.(DungeonServiceServer)
		if interceptor == nil {
			return method(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return method(server, ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// DungeonServiceClient is the client API for DungeonService
type DungeonServiceClient interface {
	Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Repopulate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type dungeonServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDungeonServiceClient creates a client over cc
func NewDungeonServiceClient(cc grpc.ClientConnInterface) DungeonServiceClient {
	return &dungeonServiceClient{cc: cc}
}

func (c *dungeonServiceClient) Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GenerateMethod, in, opts...)
}

func (c *dungeonServiceClient) Repopulate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, RepopulateMethod, in, opts...)
}

func (c *dungeonServiceClient) GetDungeon(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetDungeonMethod, in, opts...)
}

func (c *dungeonServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
