package farm

import (
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/db"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

//go:generate mockgen -source=farm.go -destination=mocks/mock_farm.go -package=mocks

type IZone interface {
	UpsertZone(zoneID string, input *models.Zone) error
	GetZone(zoneID string) (*models.Zone, error)
	ListZones() ([]models.Zone, error)
}

type IDetection interface {
	RecordDetection(zoneID string, input *models.DetectionEvent) (*models.DetectionEvent, error)
	ListDetections(zoneID string) ([]models.DetectionEvent, error)
}

type ISpray interface {
	// RecordSpray also returns how many pending detections the spray treated.
	RecordSpray(zoneID string, input *models.SprayEvent) (*models.SprayEvent, int64, error)
	ListSprays(zoneID string) ([]models.SprayEvent, error)
}

type IReport interface {
	BuildReport() (*analytics.Report, error)
	BuildZoneReport(zoneID string) (*analytics.Report, error)
}

type ISnapshot interface {
	TakeSnapshot() (*models.ReportSnapshot, error)
	ListSnapshots(limit int) ([]models.ReportSnapshot, error)
}

// EventRepository is the load/save contract over the two append-only event logs.
type EventRepository interface {
	// LoadEvents reads both logs in one consistent read, restricted to zoneID unless it is empty.
	LoadEvents(zoneID string) ([]models.DetectionEvent, []models.SprayEvent, error)
	SaveDetection(detection *models.DetectionEvent) error
	// SaveSpray stores the spray and links the zone's pending detections it treats.
	SaveSpray(spray *models.SprayEvent) (int64, error)
}

// ReportObserver is notified with every global report that was built.
type ReportObserver interface {
	ObserveReport(report *analytics.Report)
}

type Farm struct {
	Db       db.DB
	Policy   *analytics.Policy
	Observer ReportObserver

	Events    EventRepository
	Zone      IZone
	Detection IDetection
	Spray     ISpray
	Report    IReport
	Snapshot  ISnapshot
}

type ServiceOpts struct {
	Events    EventRepository
	Zone      IZone
	Detection IDetection
	Spray     ISpray
	Report    IReport
	Snapshot  ISnapshot
}

func (f *Farm) WithServices(opts ServiceOpts) *Farm {
	if opts.Events != nil {
		f.Events = opts.Events
	}
	if opts.Zone != nil {
		f.Zone = opts.Zone
	}
	if opts.Detection != nil {
		f.Detection = opts.Detection
	}
	if opts.Spray != nil {
		f.Spray = opts.Spray
	}
	if opts.Report != nil {
		f.Report = opts.Report
	}
	if opts.Snapshot != nil {
		f.Snapshot = opts.Snapshot
	}
	return f
}

// WithDefaultServices wires every service to its gorm backed implementation.
func (f *Farm) WithDefaultServices() *Farm {
	return f.WithServices(ServiceOpts{
		Events:    f.GetEventRepository(),
		Zone:      f.GetIZone(),
		Detection: f.GetIDetection(),
		Spray:     f.GetISpray(),
		Report:    f.GetIReport(),
		Snapshot:  f.GetISnapshot(),
	})
}

func (f *Farm) policy() analytics.Policy {
	if f.Policy == nil {
		return analytics.DefaultPolicy()
	}
	return *f.Policy
}
