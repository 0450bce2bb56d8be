package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/metrics"
)

type RestfulServer struct {
	Server           *gin.Engine
	Farm             *farm.Farm
	RateLimiterStore *farm.RateLimiterStore
	Metrics          *metrics.Collector
}

func (rs *RestfulServer) GetLimiter(zoneID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(zoneID)
}

func (rs *RestfulServer) CheckZoneLimiter(zoneID string) bool {
	limiter := rs.GetLimiter(zoneID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(zoneID string, zoneRate float64, zoneBurst int) bool {
	if rs.RateLimiterStore == nil {
		return false
	}
	rs.RateLimiterStore.SetLimiter(zoneID, rate.Limit(zoneRate), zoneBurst)
	return true
}

func (rs *RestfulServer) ResetLimiter(zoneID string) bool {
	if rs.RateLimiterStore == nil {
		return false
	}
	rs.RateLimiterStore.ResetLimiter(zoneID)
	return true
}

func (rs *RestfulServer) Setup() {
	if rs.Metrics != nil {
		rs.Server.Use(rs.Metrics.Middleware())
		rs.Server.GET("/metrics", gin.WrapH(rs.Metrics.Handler()))
	}

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/zones", rs.ListZones)

	zones := rs.Server.Group("/zones/:zone_id")
	{
		zones.PUT("", rs.UpsertZone)
		zones.POST("/detections", rs.zoneLimited(rs.PostDetection))
		zones.GET("/detections", rs.zoneLimited(rs.GetDetections))
		zones.POST("/sprays", rs.zoneLimited(rs.PostSpray))
		zones.GET("/sprays", rs.zoneLimited(rs.GetSprays))
		zones.POST("/limiter", rs.PostLimiter)
		zones.DELETE("/limiter", rs.DeleteLimiter)
	}

	analytics := rs.Server.Group("/analytics")
	{
		analytics.GET("", rs.GetReport)
		analytics.GET("/zones/:zone_id", rs.zoneLimited(rs.GetZoneReport))
		analytics.POST("/snapshots", rs.PostSnapshot)
		analytics.GET("/snapshots", rs.GetSnapshots)
	}
}

func (rs *RestfulServer) zoneLimited(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckZoneLimiter(c.Param("zone_id")) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		next(c)
	}
}
