package event

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	eventErrors "github.com/IdrisKulubi/huaweievent/internal/event/errors"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	FindAll(ctx context.Context) ([]Event, error)
	FindActive(ctx context.Context) ([]Event, error)
	DeactivateAll(ctx context.Context) error
	SetActive(ctx context.Context, id string, active bool) error
}

type gormRepository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *sql.Tx) Repository {
	return &gormRepository{db: r.db, tx: tx}
}

func (r *gormRepository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *gormRepository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, eventErrors.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Event, error) {
	var list []Event
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindActive returns every event flagged active. The service treats more
// than one row as a data problem worth logging.
func (r *gormRepository) FindActive(ctx context.Context) ([]Event, error) {
	var list []Event
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) DeactivateAll(ctx context.Context) error {
	const query = `UPDATE events SET is_active = false, updated_at = now() WHERE is_active = true`
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, query)
		return err
	}
	return r.db.WithContext(ctx).Exec(query).Error
}

func (r *gormRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE events SET is_active = $1, updated_at = now() WHERE id = $2`
	if r.tx != nil {
		res, err := r.tx.ExecContext(ctx, query, active, id)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return eventErrors.ErrEventNotFound
		}
		return nil
	}
	res := r.db.WithContext(ctx).Exec(query, active, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return eventErrors.ErrEventNotFound
	}
	return nil
}
