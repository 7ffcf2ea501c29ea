package employer

import (
	"time"

	"github.com/google/uuid"
)

// Employer is a company exhibiting at the summit. One user account owns
// one employer profile; booths hang off the employer.
type Employer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employer_user" json:"user_id"`
	CompanyName  string    `gorm:"type:varchar(200);not null" json:"company_name"`
	Industry     string    `gorm:"type:varchar(100)" json:"industry"`
	Description  string    `gorm:"type:text" json:"description"`
	Website      string    `gorm:"type:text" json:"website"`
	LogoURL      string    `gorm:"column:logo_url;type:text" json:"logo_url"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone string    `gorm:"type:varchar(20)" json:"contact_phone"`
	IsVerified   bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Employer) TableName() string {
	return "employers"
}
