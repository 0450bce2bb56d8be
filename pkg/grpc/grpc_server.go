package grpc

import (
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm"
)

// ZoneScopedMethods are the RPCs that pass through the per-zone limiter.
var ZoneScopedMethods = []string{
	AnalyticsService_GetZoneReport_FullMethodName,
	AnalyticsService_RecordDetection_FullMethodName,
	AnalyticsService_RecordSpray_FullMethodName,
}

type AnalyticsServer struct {
	Farm             *farm.Farm
	RateLimiterStore *farm.RateLimiterStore
	UnimplementedAnalyticsServiceServer
}

func (s *AnalyticsServer) GetLimiter(zoneID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	}
	return s.RateLimiterStore.GetLimiter(zoneID)
}

func (s *AnalyticsServer) CheckZoneLimiter(zoneID string) bool {
	limiter := s.GetLimiter(zoneID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// NewServer returns a grpc.Server with the analytics service registered behind the rate
// limit interceptor.
func (s *AnalyticsServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.UnaryInterceptor(s.CreateRateLimitInterceptor(ZoneScopedMethods)))
	server := grpc.NewServer(opts...)
	RegisterAnalyticsServiceServer(server, s)
	return server
}
