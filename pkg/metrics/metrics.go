package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
)

const namespace = "farm"

// Collector exposes Prometheus metrics for inbound HTTP requests and the latest global report.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	globalEfficiency prometheus.Gauge
	weightedRisk     prometheus.Gauge
	waterSaved       prometheus.Gauge
	reportZones      prometheus.Gauge
	reportsBuilt     prometheus.Counter
}

func NewCollector() (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution for inbound HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests.",
		}, []string{"method", "path", "status"}),
		globalEfficiency: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "global_spray_efficiency",
			Help:      "Mean zone spray efficiency of the latest global report.",
		}),
		weightedRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "weighted_risk_percent",
			Help:      "Severity weighted risk of the latest global report.",
		}),
		waterSaved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "water_saved_liters",
			Help:      "Water saved against the manual spraying baseline in the latest global report.",
		}),
		reportZones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "zones",
			Help:      "Number of zones present in the latest global report.",
		}),
		reportsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analytics",
			Name:      "reports_total",
			Help:      "Total number of global reports built.",
		}),
	}

	for _, collector := range []prometheus.Collector{
		c.requestDuration, c.requestTotal,
		c.globalEfficiency, c.weightedRisk, c.waterSaved, c.reportZones, c.reportsBuilt,
	} {
		if err := c.registry.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency labelled by the matched route, so path
// parameters do not explode the label set.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())

		c.requestTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) ObserveReport(report *analytics.Report) {
	if report == nil {
		return
	}
	c.globalEfficiency.Set(report.GlobalSprayEfficiency)
	c.weightedRisk.Set(report.SeverityBreakdown.WeightedRiskPercent)
	c.waterSaved.Set(report.WaterModel.WaterSaved)
	c.reportZones.Set(float64(len(report.ZoneAnalytics)))
	c.reportsBuilt.Inc()
}
