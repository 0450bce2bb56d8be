package http

import (
	"errors"
	"net/http"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	if errors.Is(err, farm.ErrZoneNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	common.GetLoggerWith(common.LoggerNameRestfulServer).
		Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

type ZoneRequest struct {
	Name         string  `json:"name" zog:"name"`
	Crop         string  `json:"crop" zog:"crop"`
	AreaHectares float64 `json:"area_hectares" zog:"area_hectares"`
}

var zoneRequestSchema = z.Struct(z.Shape{
	"Name":         z.String().Min(1).Required(),
	"Crop":         z.String().Optional(),
	"AreaHectares": z.Float64().GTE(0).Optional(),
})

func (rs *RestfulServer) UpsertZone(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var req ZoneRequest
	if err := zoneRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Farm.Zone.UpsertZone(zoneID, &models.Zone{
		Name:         req.Name,
		Crop:         req.Crop,
		AreaHectares: req.AreaHectares,
	}); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ListZones(c *gin.Context) {
	zones, err := rs.Farm.Zone.ListZones()
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

type DetectionRequest struct {
	Disease       string    `json:"disease" zog:"disease"`
	Confidence    float64   `json:"confidence" zog:"confidence"`
	SeverityLevel string    `json:"severity_level" zog:"severity_level"`
	Timestamp     time.Time `json:"timestamp" zog:"timestamp"`
}

var detectionRequestSchema = z.Struct(z.Shape{
	"Disease":       z.String().Optional(),
	"Confidence":    z.Float64().GTE(0).LTE(1).Required(),
	"SeverityLevel": z.String().OneOf([]string{"low", "medium", "high"}).Required(),
	"Timestamp":     z.Time().Required(),
})

func (rs *RestfulServer) PostDetection(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var req DetectionRequest
	if err := detectionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	detection, err := rs.Farm.Detection.RecordDetection(zoneID, &models.DetectionEvent{
		Disease:       req.Disease,
		Confidence:    req.Confidence,
		SeverityLevel: models.SeverityLevel(req.SeverityLevel),
		Timestamp:     req.Timestamp,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detection)
}

func (rs *RestfulServer) GetDetections(c *gin.Context) {
	detections, err := rs.Farm.Detection.ListDetections(c.Param("zone_id"))
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detections)
}

type SprayRequest struct {
	Chemical    string    `json:"chemical" zog:"chemical"`
	Dosage      float64   `json:"dosage" zog:"dosage"`
	Timestamp   time.Time `json:"timestamp" zog:"timestamp"`
	TriggeredBy string    `json:"triggered_by" zog:"triggered_by"`
}

var sprayRequestSchema = z.Struct(z.Shape{
	"Chemical":    z.String().Min(1).Required(),
	"Dosage":      z.Float64().GTE(0).Optional(),
	"Timestamp":   z.Time().Required(),
	// empty falls back to manual
	"TriggeredBy": z.String().OneOf([]string{"", "manual", "auto"}).Optional(),
})

type SprayResponse struct {
	Spray            *models.SprayEvent `json:"spray"`
	LinkedDetections int64              `json:"linkedDetections"`
}

func (rs *RestfulServer) PostSpray(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var req SprayRequest
	if err := sprayRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	spray, linked, err := rs.Farm.Spray.RecordSpray(zoneID, &models.SprayEvent{
		Chemical:    req.Chemical,
		Dosage:      req.Dosage,
		Timestamp:   req.Timestamp,
		TriggeredBy: models.SprayTrigger(req.TriggeredBy),
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SprayResponse{Spray: spray, LinkedDetections: linked})
}

func (rs *RestfulServer) GetSprays(c *gin.Context) {
	sprays, err := rs.Farm.Spray.ListSprays(c.Param("zone_id"))
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sprays)
}

func (rs *RestfulServer) GetReport(c *gin.Context) {
	report, err := rs.Farm.Report.BuildReport()
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) GetZoneReport(c *gin.Context) {
	report, err := rs.Farm.Report.BuildZoneReport(c.Param("zone_id"))
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) PostSnapshot(c *gin.Context) {
	snapshot, err := rs.Farm.Snapshot.TakeSnapshot()
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

type SnapshotQuery struct {
	Limit int `zog:"limit"`
}

var snapshotQuerySchema = z.Struct(z.Shape{
	"Limit": z.Int().GT(0).LTE(100).Optional(),
})

func (rs *RestfulServer) GetSnapshots(c *gin.Context) {
	var query SnapshotQuery
	if err := snapshotQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	snapshots, err := rs.Farm.Snapshot.ListSnapshots(query.Limit)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().GTE(0).Required(),
	"burst": z.Int().GTE(0).Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	zoneID := c.Param("zone_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.SetLimiter(zoneID, req.Rate, req.Burst) {
		c.JSON(http.StatusOK, gin.H{"status": "no limiter store configured, no effect"})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteLimiter drops the zone's override so it falls back to the default rate and burst.
func (rs *RestfulServer) DeleteLimiter(c *gin.Context) {
	if !rs.ResetLimiter(c.Param("zone_id")) {
		c.JSON(http.StatusOK, gin.H{"status": "no limiter store configured, no effect"})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
