package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	CountRegistered(ctx context.Context) (int64, error)
	CountApproved(ctx context.Context) (int64, error)
	CountCheckedIn(ctx context.Context, eventID string) (int64, error)
	CountDuplicates(ctx context.Context, eventID string) (int64, error)
	CountCheckInsSince(ctx context.Context, eventID string, since time.Time) (int64, error)
	CountOpenIncidents(ctx context.Context, eventID string) (int64, error)
	CountCriticalIncidents(ctx context.Context, eventID string) (int64, error)
	UsersByRole(ctx context.Context) ([]RoleCount, error)
	AttendeesByStatus(ctx context.Context) ([]StatusCount, error)
	DailyCheckIns(ctx context.Context, eventID string, since time.Time) ([]DayCount, error)
	MethodBreakdown(ctx context.Context, eventID string) ([]MethodBreakdown, error)
	ScanWindow(ctx context.Context, eventID string) (first, last *time.Time, err error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&n).Error
	return n, err
}

func (r *gormRepository) CountRegistered(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM job_seekers`)
}

func (r *gormRepository) CountApproved(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM job_seekers WHERE registration_status = 'approved'`)
}

// CountCheckedIn counts distinct attendees, not rows, so duplicate
// attempts do not inflate attendance.
func (r *gormRepository) CountCheckedIn(ctx context.Context, eventID string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(DISTINCT job_seeker_id) FROM attendance_records WHERE event_id = ?`, eventID)
}

func (r *gormRepository) CountDuplicates(ctx context.Context, eventID string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE event_id = ? AND notes <> ''`, eventID)
}

func (r *gormRepository) CountCheckInsSince(ctx context.Context, eventID string, since time.Time) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM attendance_records WHERE event_id = ? AND check_in_time >= ?`, eventID, since)
}

func (r *gormRepository) CountOpenIncidents(ctx context.Context, eventID string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM security_incidents WHERE event_id = ? AND status IN ('open', 'investigating')`, eventID)
}

func (r *gormRepository) CountCriticalIncidents(ctx context.Context, eventID string) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM security_incidents WHERE event_id = ? AND severity = 'critical' AND status IN ('open', 'investigating')`, eventID)
}

func (r *gormRepository) UsersByRole(ctx context.Context) ([]RoleCount, error) {
	var rows []RoleCount
	err := r.db.WithContext(ctx).
		Raw(`SELECT role, COUNT(*) AS count FROM users GROUP BY role ORDER BY role`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) AttendeesByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Raw(`SELECT registration_status AS status, COUNT(*) AS count
			FROM job_seekers GROUP BY registration_status ORDER BY registration_status`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyCheckIns buckets by calendar day in UTC; days without records
// produce no row.
func (r *gormRepository) DailyCheckIns(ctx context.Context, eventID string, since time.Time) ([]DayCount, error) {
	var rows []DayCount
	err := r.db.WithContext(ctx).
		Raw(`SELECT TO_CHAR(check_in_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*) AS count
			FROM attendance_records
			WHERE event_id = ? AND check_in_time >= ?
			GROUP BY day ORDER BY day`, eventID, since).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) MethodBreakdown(ctx context.Context, eventID string) ([]MethodBreakdown, error) {
	var rows []MethodBreakdown
	err := r.db.WithContext(ctx).
		Raw(`SELECT verification_method AS method, COUNT(*) AS count
			FROM attendance_records
			WHERE event_id = ?
			GROUP BY verification_method
			ORDER BY count DESC`, eventID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormRepository) ScanWindow(ctx context.Context, eventID string) (*time.Time, *time.Time, error) {
	var window struct {
		First *time.Time
		Last  *time.Time
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT MIN(check_in_time) AS first, MAX(check_in_time) AS last
			FROM attendance_records WHERE event_id = ?`, eventID).
		Scan(&window).Error
	if err != nil {
		return nil, nil, err
	}
	return window.First, window.Last, nil
}
