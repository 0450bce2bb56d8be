package models

import "time"

type SeverityLevel string

const (
	SeverityLow    SeverityLevel = "low"
	SeverityMedium SeverityLevel = "medium"
	SeverityHigh   SeverityLevel = "high"
)

func (s SeverityLevel) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

type DetectionStatus string

const (
	DetectionStatusPending DetectionStatus = "pending"
	DetectionStatusTreated DetectionStatus = "treated"
)

type SprayTrigger string

const (
	SprayTriggerManual SprayTrigger = "manual"
	SprayTriggerAuto   SprayTrigger = "auto"
)

// Zone is one grid cell of the monitored farm, e.g. "A1".
type Zone struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Crop         string    `json:"crop"`
	AreaHectares float64   `json:"areaHectares"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Detections []DetectionEvent `gorm:"foreignKey:ZoneID;references:ID" json:"-"`
	Sprays     []SprayEvent     `gorm:"foreignKey:ZoneID;references:ID" json:"-"`
}

// DetectionEvent is append-only; only Status, TreatedAt and LinkedSprayID change after insert.
type DetectionEvent struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	ZoneID        string          `gorm:"index" json:"zoneId"`
	Disease       string          `json:"disease"`
	Confidence    float64         `json:"confidence"`
	SeverityLevel SeverityLevel   `gorm:"type:varchar(10);check:severity_level IN ('low','medium','high')" json:"severityLevel"`
	Timestamp     time.Time       `gorm:"index" json:"timestamp"`
	Status        DetectionStatus `gorm:"type:varchar(10);default:pending" json:"status"`
	TreatedAt     *time.Time      `json:"treatedAt,omitempty"`
	LinkedSprayID string          `json:"linkedSprayId,omitempty"`
}

// SprayEvent is never mutated once written.
type SprayEvent struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	ZoneID      string       `gorm:"index" json:"zoneId"`
	Chemical    string       `json:"chemical"`
	Dosage      float64      `json:"dosage"`
	Timestamp   time.Time    `gorm:"index" json:"timestamp"`
	TriggeredBy SprayTrigger `gorm:"type:varchar(10)" json:"triggeredBy"`
}

// ReportSnapshot keeps a serialized analytics report taken at CreatedAt.
type ReportSnapshot struct {
	ID                    string    `gorm:"primaryKey" json:"id"`
	CreatedAt             time.Time `gorm:"index" json:"createdAt"`
	TotalDetections       int       `json:"totalDetections"`
	TotalSprays           int       `json:"totalSprays"`
	GlobalSprayEfficiency float64   `json:"globalSprayEfficiency"`
	Payload               string    `gorm:"type:text" json:"payload"`
}
