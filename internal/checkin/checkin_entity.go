package checkin

import (
	"time"

	"github.com/google/uuid"
)

const (
	MethodPin    = "pin"
	MethodTicket = "ticket_number"

	StatusCheckedIn = "checked_in"

	// DuplicateNote is stamped on records created for an attendee who
	// had already checked in to the same event. The record is still
	// written so the audit trail shows every gate interaction.
	DuplicateNote = "Duplicate check-in attempt"
)

// AttendanceRecord is an append-only audit row. Records are never
// updated or deleted; duplicates get their own row with DuplicateNote.
type AttendanceRecord struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	JobSeekerID        uuid.UUID `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	EventID            uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	CheckedInBy        uuid.UUID `gorm:"type:uuid;not null" json:"checked_in_by"`
	CheckInTime        time.Time `gorm:"not null" json:"check_in_time"`
	VerificationMethod string    `gorm:"type:varchar(20);not null" json:"verification_method"`
	VerificationData   string    `gorm:"type:varchar(50)" json:"verification_data"`
	Status             string    `gorm:"type:varchar(20);not null;default:'checked_in'" json:"status"`
	Notes              string    `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
