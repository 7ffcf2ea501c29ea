package incident

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen          = "open"
	StatusInvestigating = "investigating"
	StatusResolved      = "resolved"
	StatusClosed        = "closed"
)

// SecurityIncident is filed by gate staff from the station or the
// security portal. Resolution is tracked on the row itself.
type SecurityIncident struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EventID         *uuid.UUID `gorm:"type:uuid;index" json:"event_id"`
	ReportedBy      uuid.UUID  `gorm:"type:uuid;not null" json:"reported_by"`
	IncidentType    string     `gorm:"type:varchar(50);not null" json:"incident_type"`
	Severity        string     `gorm:"type:varchar(20);not null" json:"severity"`
	Location        string     `gorm:"type:varchar(200)" json:"location"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	InvolvedPersons string     `gorm:"type:text" json:"involved_persons"`
	ActionTaken     string     `gorm:"type:text" json:"action_taken"`
	Status          string     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ResolvedBy      *uuid.UUID `gorm:"type:uuid" json:"resolved_by"`
	ResolvedAt      *time.Time `json:"resolved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (SecurityIncident) TableName() string {
	return "security_incidents"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusOpen, StatusInvestigating, StatusResolved, StatusClosed:
		return true
	}
	return false
}
