package employer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	employerErrors "github.com/IdrisKulubi/huaweievent/internal/employer/errors"
)

type Repository interface {
	Create(ctx context.Context, e *Employer) error
	Update(ctx context.Context, e *Employer) error
	FindByID(ctx context.Context, id string) (*Employer, error)
	FindByUser(ctx context.Context, userID string) (*Employer, error)
	FindAll(ctx context.Context) ([]Employer, error)
	SetVerified(ctx context.Context, id string, verified bool) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, e *Employer) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *gormRepository) Update(ctx context.Context, e *Employer) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Employer, error) {
	var e Employer
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employerErrors.ErrEmployerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository) FindByUser(ctx context.Context, userID string) (*Employer, error) {
	var e Employer
	err := r.db.WithContext(ctx).First(&e, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, employerErrors.ErrEmployerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Employer, error) {
	var list []Employer
	if err := r.db.WithContext(ctx).Order("company_name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	res := r.db.WithContext(ctx).Model(&Employer{}).
		Where("id = ?", id).
		Update("is_verified", verified)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return employerErrors.ErrEmployerNotFound
	}
	return nil
}
