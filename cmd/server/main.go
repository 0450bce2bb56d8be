package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/db"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm"
	farmGrpc "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/grpc"
	farmHttp "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/http"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/metrics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/scheduler"
)

const limiterIdle = 30 * time.Minute

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	farmDbType := os.Getenv(common.EnvKeyFarmDBType)
	switch farmDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown FARM_DB_TYPE: " + farmDbType)
	}

	grpcHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFarmGrpcHostPort))
	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyFarmHttpHostPort))
	snapshotSchedule := strings.TrimSpace(os.Getenv(common.EnvKeyFarmSnapshotSchedule))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFarmDefaultRate), 64); err != nil {
		log.Fatal("Invalid FARM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFarmDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid FARM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	policy := analytics.DefaultPolicy()
	waterPerSpray, err := common.GetEnvFloat64Or(common.EnvKeyFarmWaterPerSprayLiter, policy.WaterPerSprayLiters)
	if err != nil || waterPerSpray < 0 {
		log.Fatal("Invalid FARM_WATER_PER_SPRAY_LITERS, should be a non negative float64 value")
	}
	policy = policy.WithWaterPerSpray(waterPerSpray)

	logger := common.GetLogger()

	collector, err := metrics.NewCollector()
	if err != nil {
		log.Fatalf("failed to create metrics collector: %v", err)
	}

	farmCore := (&farm.Farm{
		Db:       *dbInstance,
		Policy:   &policy,
		Observer: collector,
	}).WithDefaultServices()

	limiterDesc := fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)
	grpcLimiterStore := farm.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))
	httpLimiterStore := farm.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst))

	if grpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + grpcHostPort)
		go func() {
			farmGrpcServer := farmGrpc.AnalyticsServer{
				Farm:             farmCore,
				RateLimiterStore: grpcLimiterStore,
			}
			s := farmGrpcServer.NewServer()
			logger.Info("gRPC server created with:", zap.String("default_limiter", limiterDesc))

			listener, err := net.Listen("tcp", grpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	if snapshotSchedule != "" {
		snapshots := scheduler.New(farmCore.Snapshot)
		if err := snapshots.AddLimiterPrune("@every 10m", limiterIdle, httpLimiterStore, grpcLimiterStore); err != nil {
			log.Fatalf("failed to schedule limiter prune: %v", err)
		}
		if err := snapshots.Start(snapshotSchedule); err != nil {
			log.Fatalf("Invalid FARM_SNAPSHOT_SCHEDULE %q: %v", snapshotSchedule, err)
		}
		defer snapshots.Stop()
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &farmHttp.RestfulServer{
		Server:           gin.Default(),
		Farm:             farmCore,
		RateLimiterStore: httpLimiterStore,
		Metrics:          collector,
	}
	rs.Setup()

	logger.Info("http server created with:", zap.String("default_limiter", limiterDesc))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
