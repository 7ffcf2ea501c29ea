package checkin

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *AttendanceRecord) error
	FindLatestForEvent(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error)
	FindByEvent(ctx context.Context, eventID string) ([]AttendanceRecord, error)
	FindByAttendee(ctx context.Context, jobSeekerID string) ([]AttendanceRecord, error)
	FindAttendeeContact(ctx context.Context, userID string) (*AttendeeContact, error)
}

// AttendeeContact is the identity slice of the users table shown on the
// gate screen alongside the verification result.
type AttendeeContact struct {
	Name  string
	Email string
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

const insertRecordSQL = `
INSERT INTO attendance_records (
	id, job_seeker_id, event_id, checked_in_by, check_in_time,
	verification_method, verification_data, status, notes, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

func (r *gormRepository) Create(ctx context.Context, record *AttendanceRecord) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx, insertRecordSQL,
			record.ID, record.JobSeekerID, record.EventID, record.CheckedInBy,
			record.CheckInTime, record.VerificationMethod, record.VerificationData,
			record.Status, record.Notes, record.CreatedAt,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// FindLatestForEvent returns the most recent record for the attendee at
// the event, or nil when they have not checked in yet.
func (r *gormRepository) FindLatestForEvent(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("job_seeker_id = ? AND event_id = ?", jobSeekerID, eventID).
		Order("check_in_time DESC").
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *gormRepository) FindByEvent(ctx context.Context, eventID string) ([]AttendanceRecord, error) {
	var list []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("check_in_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) FindByAttendee(ctx context.Context, jobSeekerID string) ([]AttendanceRecord, error) {
	var list []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("job_seeker_id = ?", jobSeekerID).
		Order("check_in_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) FindAttendeeContact(ctx context.Context, userID string) (*AttendeeContact, error) {
	var contact AttendeeContact
	err := r.db.WithContext(ctx).
		Raw("SELECT name, email FROM users WHERE id = ? AND deleted_at IS NULL", userID).
		Scan(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
