package attendee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// JobSeeker holds the career summit profile for a registered user,
// including the PIN and ticket number used at the check-in gate.
type JobSeeker struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_job_seeker_user" json:"user_id"`
	Bio                string     `gorm:"type:text" json:"bio"`
	CVURL              string     `gorm:"column:cv_url;type:text" json:"cv_url"`
	Skills             string     `gorm:"type:text" json:"skills"`
	Experience         string     `gorm:"type:text" json:"experience"`
	Education          string     `gorm:"type:text" json:"education"`
	InterestCategories string     `gorm:"type:text" json:"interest_categories"`
	LinkedinURL        string     `gorm:"type:text" json:"linkedin_url"`
	PortfolioURL       string     `gorm:"type:text" json:"portfolio_url"`
	ExpectedSalary     string     `gorm:"type:varchar(100)" json:"expected_salary"`
	AvailableFrom      *time.Time `json:"available_from"`
	Pin                string     `gorm:"type:varchar(6);uniqueIndex:uq_job_seeker_pin" json:"-"`
	PinGeneratedAt     *time.Time `json:"pin_generated_at"`
	PinExpiresAt       *time.Time `json:"pin_expires_at"`
	TicketNumber       string     `gorm:"type:varchar(20);uniqueIndex:uq_job_seeker_ticket" json:"ticket_number"`
	RegistrationStatus string     `gorm:"type:varchar(20);not null;default:'pending'" json:"registration_status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (JobSeeker) TableName() string {
	return "job_seekers"
}

func ValidRegistrationStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
