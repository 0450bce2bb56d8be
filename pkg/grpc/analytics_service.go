package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Messages are protobuf well-known types, so the service is described by hand instead of
// being generated from a .proto file.

const AnalyticsServiceName = "farm.analytics.AnalyticsService"

const (
	AnalyticsService_GetReport_FullMethodName       = "/" + AnalyticsServiceName + "/GetReport"
	AnalyticsService_GetZoneReport_FullMethodName   = "/" + AnalyticsServiceName + "/GetZoneReport"
	AnalyticsService_RecordDetection_FullMethodName = "/" + AnalyticsServiceName + "/RecordDetection"
	AnalyticsService_RecordSpray_FullMethodName     = "/" + AnalyticsServiceName + "/RecordSpray"
	AnalyticsService_SetLimiter_FullMethodName      = "/" + AnalyticsServiceName + "/SetLimiter"
)

type AnalyticsServiceClient interface {
	GetReport(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetZoneReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RecordDetection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RecordSpray(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type analyticsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAnalyticsServiceClient(cc grpc.ClientConnInterface) AnalyticsServiceClient {
	return &analyticsServiceClient{cc}
}

func (c *analyticsServiceClient) invoke(ctx context.Context, method string, in any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analyticsServiceClient) GetReport(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AnalyticsService_GetReport_FullMethodName, in, opts...)
}

func (c *analyticsServiceClient) GetZoneReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AnalyticsService_GetZoneReport_FullMethodName, in, opts...)
}

func (c *analyticsServiceClient) RecordDetection(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AnalyticsService_RecordDetection_FullMethodName, in, opts...)
}

func (c *analyticsServiceClient) RecordSpray(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AnalyticsService_RecordSpray_FullMethodName, in, opts...)
}

func (c *analyticsServiceClient) SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, AnalyticsService_SetLimiter_FullMethodName, in, opts...)
}

type AnalyticsServiceServer interface {
	GetReport(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetZoneReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordDetection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordSpray(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedAnalyticsServiceServer can be embedded to have forward compatible implementations.
type UnimplementedAnalyticsServiceServer struct{}

func (UnimplementedAnalyticsServiceServer) GetReport(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReport not implemented")
}

func (UnimplementedAnalyticsServiceServer) GetZoneReport(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetZoneReport not implemented")
}

func (UnimplementedAnalyticsServiceServer) RecordDetection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordDetection not implemented")
}

func (UnimplementedAnalyticsServiceServer) RecordSpray(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordSpray not implemented")
}

func (UnimplementedAnalyticsServiceServer) SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetLimiter not implemented")
}

func RegisterAnalyticsServiceServer(s grpc.ServiceRegistrar, srv AnalyticsServiceServer) {
	s.RegisterService(&AnalyticsService_ServiceDesc, srv)
}

func _AnalyticsService_GetReport_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalyticsServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalyticsService_GetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AnalyticsServiceServer).GetReport(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// structHandler builds the method handler for every Struct in, Struct out method.
func structHandler(fullMethod string, call func(AnalyticsServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AnalyticsServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AnalyticsServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var AnalyticsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AnalyticsServiceName,
	HandlerType: (*AnalyticsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetReport",
			Handler:    _AnalyticsService_GetReport_Handler,
		},
		{
			MethodName: "GetZoneReport",
			Handler:    structHandler(AnalyticsService_GetZoneReport_FullMethodName, AnalyticsServiceServer.GetZoneReport),
		},
		{
			MethodName: "RecordDetection",
			Handler:    structHandler(AnalyticsService_RecordDetection_FullMethodName, AnalyticsServiceServer.RecordDetection),
		},
		{
			MethodName: "RecordSpray",
			Handler:    structHandler(AnalyticsService_RecordSpray_FullMethodName, AnalyticsServiceServer.RecordSpray),
		},
		{
			MethodName: "SetLimiter",
			Handler:    structHandler(AnalyticsService_SetLimiter_FullMethodName, AnalyticsServiceServer.SetLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "farm/analytics.proto",
}
