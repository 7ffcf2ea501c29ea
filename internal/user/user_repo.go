package user

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error

	FindSecurityProfileByUser(ctx context.Context, userID string) (*SecurityPersonnel, error)
	SaveSecurityProfile(ctx context.Context, p *SecurityPersonnel) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) FindSecurityProfileByUser(ctx context.Context, userID string) (*SecurityPersonnel, error) {
	var p SecurityPersonnel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	return &p, err
}

func (r *repository) SaveSecurityProfile(ctx context.Context, p *SecurityPersonnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}
