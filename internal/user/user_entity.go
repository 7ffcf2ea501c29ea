package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"column:name;type:varchar(255)"`
	Role        string         `gorm:"column:role;type:varchar(30);default:job_seeker"`
	Email       string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	PhoneNumber string         `gorm:"column:phone_number;type:varchar(30)"`
	Password    string         `gorm:"column:password;type:text;not null"`
	IsActive    bool           `gorm:"column:is_active;default:true"`
	LastActive  time.Time      `gorm:"column:last_active"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

// SecurityPersonnel extends a user with the fields the check-in desks need:
// badge, clearance, duty window. One row per security-role user.
type SecurityPersonnel struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	BadgeNumber    string     `gorm:"column:badge_number;type:varchar(50);uniqueIndex"`
	Department     string     `gorm:"column:department;type:varchar(100)"`
	ClearanceLevel string     `gorm:"column:clearance_level;type:varchar(20);default:basic"`
	IsOnDuty       bool       `gorm:"column:is_on_duty;default:false"`
	ShiftStart     *time.Time `gorm:"column:shift_start;type:timestamptz"`
	ShiftEnd       *time.Time `gorm:"column:shift_end;type:timestamptz"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (SecurityPersonnel) TableName() string {
	return "security_personnel"
}
