package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

func respond(success bool, message string, fields map[string]any) (*structpb.Struct, error) {
	body := map[string]any{
		"status": map[string]any{"success": success, "message": message},
	}
	for k, v := range fields {
		body[k] = v
	}

	resp, err := structpb.NewStruct(body)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return resp, nil
}

func respondOK(fields map[string]any) (*structpb.Struct, error) {
	return respond(true, "OK", fields)
}

func respondFailed(message string) (*structpb.Struct, error) {
	return respond(false, message, nil)
}

func respondValidationFailed(issues any) (*structpb.Struct, error) {
	return respondFailed(fmt.Sprintf("validation error: %v", issues))
}

// reportFields flattens a report into the generic values a Struct can carry, keeping the
// JSON field names of the REST surface.
func reportFields(report *analytics.Report) (map[string]any, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func respondReport(report *analytics.Report) (*structpb.Struct, error) {
	fields, err := reportFields(report)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode report: %v", err)
	}
	return respondOK(fields)
}

func (s *AnalyticsServer) GetReport(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	report, err := s.Farm.Report.BuildReport()
	if err != nil {
		return respondFailed(err.Error())
	}
	return respondReport(report)
}

type zoneRequest struct {
	ZoneID string `zog:"zone_id"`
}

var zoneRequestSchema = z.Struct(z.Shape{
	"ZoneID": z.String().Min(1).Required(),
})

func (s *AnalyticsServer) GetZoneReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r zoneRequest
	if issues := zoneRequestSchema.Parse(req.AsMap(), &r); issues != nil {
		return respondValidationFailed(issues)
	}

	report, err := s.Farm.Report.BuildZoneReport(r.ZoneID)
	if err != nil {
		return respondFailed(err.Error())
	}
	return respondReport(report)
}

type detectionRequest struct {
	ZoneID        string    `zog:"zone_id"`
	Disease       string    `zog:"disease"`
	Confidence    float64   `zog:"confidence"`
	SeverityLevel string    `zog:"severity_level"`
	Timestamp     time.Time `zog:"timestamp"`
}

var detectionRequestSchema = z.Struct(z.Shape{
	"ZoneID":        z.String().Min(1).Required(),
	"Disease":       z.String().Optional(),
	"Confidence":    z.Float64().GTE(0).LTE(1).Required(),
	"SeverityLevel": z.String().OneOf([]string{"low", "medium", "high"}).Required(),
	// RFC3339 string
	"Timestamp": z.Time().Required(),
})

func (s *AnalyticsServer) RecordDetection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r detectionRequest
	if issues := detectionRequestSchema.Parse(req.AsMap(), &r); issues != nil {
		return respondValidationFailed(issues)
	}

	detection, err := s.Farm.Detection.RecordDetection(r.ZoneID, &models.DetectionEvent{
		Disease:       r.Disease,
		Confidence:    r.Confidence,
		SeverityLevel: models.SeverityLevel(r.SeverityLevel),
		Timestamp:     r.Timestamp,
	})
	if err != nil {
		return respondFailed(err.Error())
	}

	return respondOK(map[string]any{"id": detection.ID})
}

type sprayRequest struct {
	ZoneID      string    `zog:"zone_id"`
	Chemical    string    `zog:"chemical"`
	Dosage      float64   `zog:"dosage"`
	Timestamp   time.Time `zog:"timestamp"`
	TriggeredBy string    `zog:"triggered_by"`
}

var sprayRequestSchema = z.Struct(z.Shape{
	"ZoneID":      z.String().Min(1).Required(),
	"Chemical":    z.String().Min(1).Required(),
	"Dosage":      z.Float64().GTE(0).Optional(),
	"Timestamp":   z.Time().Required(),
	// empty falls back to manual
	"TriggeredBy": z.String().OneOf([]string{"", "manual", "auto"}).Optional(),
})

func (s *AnalyticsServer) RecordSpray(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r sprayRequest
	if issues := sprayRequestSchema.Parse(req.AsMap(), &r); issues != nil {
		return respondValidationFailed(issues)
	}

	spray, linked, err := s.Farm.Spray.RecordSpray(r.ZoneID, &models.SprayEvent{
		Chemical:    r.Chemical,
		Dosage:      r.Dosage,
		Timestamp:   r.Timestamp,
		TriggeredBy: models.SprayTrigger(r.TriggeredBy),
	})
	if err != nil {
		return respondFailed(err.Error())
	}

	return respondOK(map[string]any{"id": spray.ID, "linked": linked})
}

type limiterRequest struct {
	ZoneID string  `zog:"zone_id"`
	Rate   float64 `zog:"rate"`
	// Struct numbers are always doubles
	Burst float64 `zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"ZoneID": z.String().Min(1).Required(),
	"Rate":   z.Float64().GTE(0).Required(),
	"Burst":  z.Float64().GTE(0).Required(),
})

func (s *AnalyticsServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var r limiterRequest
	if issues := limiterRequestSchema.Parse(req.AsMap(), &r); issues != nil {
		return respondValidationFailed(issues)
	}
	if r.Burst != math.Trunc(r.Burst) {
		return respondValidationFailed("burst must be a whole number")
	}

	if s.RateLimiterStore == nil {
		return respondFailed("RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(r.ZoneID, rate.Limit(r.Rate), int(r.Burst))
	return respondOK(nil)
}
