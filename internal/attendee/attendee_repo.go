package attendee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	attendeeErrors "github.com/IdrisKulubi/huaweievent/internal/attendee/errors"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, js *JobSeeker) error
	UpdateUserOnRegistration(ctx context.Context, userID, name, phoneNumber string) error
	FindByID(ctx context.Context, id string) (*JobSeeker, error)
	FindByUser(ctx context.Context, userID string) (*JobSeeker, error)
	FindByPin(ctx context.Context, pin string) (*JobSeeker, error)
	FindByTicket(ctx context.Context, ticketNumber string) (*JobSeeker, error)
	FindAll(ctx context.Context, status string) ([]JobSeeker, error)
	FindUserEmail(ctx context.Context, userID string) (string, error)
	UpdatePin(ctx context.Context, id, pin string, generatedAt, expiresAt time.Time) error
	UpdateStatus(ctx context.Context, id, status string) error
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

const insertJobSeekerSQL = `
INSERT INTO job_seekers (
	id, user_id, bio, cv_url, skills, experience, education,
	interest_categories, linkedin_url, portfolio_url, expected_salary,
	available_from, pin, pin_generated_at, pin_expires_at, ticket_number,
	registration_status, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`

func (r *gormRepository) Create(ctx context.Context, js *JobSeeker) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, insertJobSeekerSQL,
			js.ID, js.UserID, js.Bio, js.CVURL, js.Skills, js.Experience,
			js.Education, js.InterestCategories, js.LinkedinURL, js.PortfolioURL,
			js.ExpectedSalary, js.AvailableFrom, js.Pin, js.PinGeneratedAt,
			js.PinExpiresAt, js.TicketNumber, js.RegistrationStatus,
			js.CreatedAt, js.UpdatedAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(js).Error
}

func (r *gormRepository) UpdateUserOnRegistration(ctx context.Context, userID, name, phoneNumber string) error {
	const query = `UPDATE users SET name = $1, phone_number = $2, updated_at = now() WHERE id = $3`
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, query, name, phoneNumber, userID)
		return err
	}
	return r.db.WithContext(ctx).Exec(query, name, phoneNumber, userID).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*JobSeeker, error) {
	var js JobSeeker
	err := r.db.WithContext(ctx).First(&js, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendeeErrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &js, nil
}

func (r *gormRepository) FindByUser(ctx context.Context, userID string) (*JobSeeker, error) {
	var js JobSeeker
	err := r.db.WithContext(ctx).First(&js, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendeeErrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &js, nil
}

func (r *gormRepository) FindByPin(ctx context.Context, pin string) (*JobSeeker, error) {
	var js JobSeeker
	err := r.db.WithContext(ctx).First(&js, "pin = ?", pin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendeeErrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &js, nil
}

func (r *gormRepository) FindByTicket(ctx context.Context, ticketNumber string) (*JobSeeker, error) {
	var js JobSeeker
	err := r.db.WithContext(ctx).First(&js, "ticket_number = ?", ticketNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, attendeeErrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &js, nil
}

func (r *gormRepository) FindAll(ctx context.Context, status string) ([]JobSeeker, error) {
	var list []JobSeeker
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("registration_status = ?", status)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) FindUserEmail(ctx context.Context, userID string) (string, error) {
	var email string
	err := r.db.WithContext(ctx).
		Raw("SELECT email FROM users WHERE id = ? AND deleted_at IS NULL", userID).
		Scan(&email).Error
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", attendeeErrors.ErrAccountNotFound
	}
	return email, nil
}

func (r *gormRepository) UpdatePin(ctx context.Context, id, pin string, generatedAt, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&JobSeeker{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"pin":              pin,
			"pin_generated_at": generatedAt,
			"pin_expires_at":   expiresAt,
		}).Error
}

func (r *gormRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&JobSeeker{}).
		Where("id = ?", id).
		Update("registration_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return attendeeErrors.ErrProfileNotFound
	}
	return nil
}
