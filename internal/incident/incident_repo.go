package incident

import (
	"context"
	"errors"

	"gorm.io/gorm"

	incidentErrors "github.com/IdrisKulubi/huaweievent/internal/incident/errors"
)

type Filter struct {
	Status   string
	Severity string
	EventID  string
}

type Repository interface {
	Create(ctx context.Context, i *SecurityIncident) error
	Update(ctx context.Context, i *SecurityIncident) error
	FindByID(ctx context.Context, id string) (*SecurityIncident, error)
	FindAll(ctx context.Context, filter Filter) ([]SecurityIncident, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, i *SecurityIncident) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *gormRepository) Update(ctx context.Context, i *SecurityIncident) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*SecurityIncident, error) {
	var i SecurityIncident
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, incidentErrors.ErrIncidentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *gormRepository) FindAll(ctx context.Context, filter Filter) ([]SecurityIncident, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Severity != "" {
		q = q.Where("severity = ?", filter.Severity)
	}
	if filter.EventID != "" {
		q = q.Where("event_id = ?", filter.EventID)
	}

	var list []SecurityIncident
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
