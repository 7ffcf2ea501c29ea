package booth

import (
	"time"

	"github.com/google/uuid"
)

const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotCompleted = "completed"
	SlotCancelled = "cancelled"
)

// Booth is an employer's stand at a summit event. The booth number is
// unique within the event.
type Booth struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployerID          uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	EventID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_booth_event_number" json:"event_id"`
	BoothNumber         string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_booth_event_number" json:"booth_number"`
	Location            string    `gorm:"type:varchar(100)" json:"location"`
	Size                string    `gorm:"type:varchar(20);default:'standard'" json:"size"`
	Equipment           string    `gorm:"type:text" json:"equipment"`
	SpecialRequirements string    `gorm:"type:text" json:"special_requirements"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (Booth) TableName() string {
	return "booths"
}

// InterviewSlot is a bookable time window at a booth. JobSeekerID is
// nil while the slot is open.
type InterviewSlot struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BoothID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"booth_id"`
	JobSeekerID     *uuid.UUID `gorm:"type:uuid;index" json:"job_seeker_id"`
	StartTime       time.Time  `gorm:"not null" json:"start_time"`
	EndTime         time.Time  `gorm:"not null" json:"end_time"`
	Status          string     `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	InterviewerName string     `gorm:"type:varchar(100)" json:"interviewer_name"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (InterviewSlot) TableName() string {
	return "interview_slots"
}
