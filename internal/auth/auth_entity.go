package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber string    `gorm:"type:varchar(30)"`
	Password    string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(30);not null;default:'job_seeker'"`
	IsActive    bool      `gorm:"default:true"`
	LastActive  time.Time `gorm:"autoUpdateTime"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
