package grpc

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
)

func zoneIDOf(req any) (string, bool) {
	r, ok := req.(*structpb.Struct)
	if !ok {
		return "", false
	}
	v, ok := r.GetFields()["zone_id"]
	if !ok {
		return "", false
	}
	return v.GetStringValue(), true
}

func (s *AnalyticsServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			if zoneID, ok := zoneIDOf(req); ok && !s.CheckZoneLimiter(zoneID) {
				common.GetLoggerWith(common.LoggerNameGrpcServer).
					Warn("Rate limit exceeded", zap.String("method", info.FullMethod), zap.String("zone_id", zoneID))
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		return handler(ctx, req)
	}
}
