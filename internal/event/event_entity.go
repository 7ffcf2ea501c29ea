package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single summit edition. At most one event is active at a
// time; gate verification refuses check-ins when none is.
type Event struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                 string     `gorm:"type:varchar(200);not null" json:"name"`
	Description          string     `gorm:"type:text" json:"description"`
	Venue                string     `gorm:"type:varchar(200);not null" json:"venue"`
	Address              string     `gorm:"type:text" json:"address"`
	EventType            string     `gorm:"type:varchar(50);default:'career_fair'" json:"event_type"`
	StartDate            time.Time  `gorm:"not null" json:"start_date"`
	EndDate              time.Time  `gorm:"not null" json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	MaxAttendees         int        `gorm:"default:0" json:"max_attendees"`
	IsActive             bool       `gorm:"not null;default:false" json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}
