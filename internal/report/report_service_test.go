package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	registered int64
	approved   int64
	checkedIn  int64
	duplicates int64
	lastHour   int64
	open       int64
	critical   int64
	calls      int
}

func (f *fakeRepo) CountRegistered(ctx context.Context) (int64, error) {
	f.calls++
	return f.registered, nil
}
func (f *fakeRepo) CountApproved(ctx context.Context) (int64, error)   { return f.approved, nil }
func (f *fakeRepo) CountCheckedIn(ctx context.Context, eventID string) (int64, error) {
	return f.checkedIn, nil
}
func (f *fakeRepo) CountDuplicates(ctx context.Context, eventID string) (int64, error) {
	return f.duplicates, nil
}
func (f *fakeRepo) CountCheckInsSince(ctx context.Context, eventID string, since time.Time) (int64, error) {
	return f.lastHour, nil
}
func (f *fakeRepo) CountOpenIncidents(ctx context.Context, eventID string) (int64, error) {
	return f.open, nil
}
func (f *fakeRepo) CountCriticalIncidents(ctx context.Context, eventID string) (int64, error) {
	return f.critical, nil
}
func (f *fakeRepo) MethodBreakdown(ctx context.Context, eventID string) ([]MethodBreakdown, error) {
	return []MethodBreakdown{{Method: "pin", Count: f.checkedIn}}, nil
}
func (f *fakeRepo) ScanWindow(ctx context.Context, eventID string) (*time.Time, *time.Time, error) {
	return nil, nil, nil
}
func (f *fakeRepo) UsersByRole(ctx context.Context) ([]RoleCount, error) {
	return []RoleCount{{Role: "job_seeker", Count: f.registered}, {Role: "security", Count: 6}}, nil
}
func (f *fakeRepo) AttendeesByStatus(ctx context.Context) ([]StatusCount, error) {
	return []StatusCount{{Status: "approved", Count: f.approved}}, nil
}
func (f *fakeRepo) DailyCheckIns(ctx context.Context, eventID string, since time.Time) ([]DayCount, error) {
	return []DayCount{{Day: "2026-09-14", Count: f.checkedIn}}, nil
}

func TestDashboard(t *testing.T) {
	eventID := uuid.NewString()

	t.Run("aggregates counters", func(t *testing.T) {
		repo := &fakeRepo{
			registered: 1200,
			approved:   950,
			checkedIn:  400,
			duplicates: 12,
			lastHour:   85,
			open:       2,
			critical:   1,
		}

		svc := NewService(repo, nil)
		stats, err := svc.Dashboard(context.Background(), eventID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1200), stats.TotalRegistered)
		assert.Equal(t, int64(950), stats.TotalApproved)
		assert.Equal(t, int64(400), stats.TotalCheckedIn)
		assert.Equal(t, int64(12), stats.DuplicateAttempts)
		assert.Equal(t, int64(85), stats.CheckInsLastHour)
		assert.Equal(t, int64(2), stats.OpenIncidents)
		assert.Equal(t, int64(1), stats.CriticalIncidents)
		assert.Len(t, stats.UsersByRole, 2)
		assert.Len(t, stats.CheckInsPerDay, 1)
		assert.False(t, stats.GeneratedAt.IsZero())
	})

	t.Run("rejects a malformed event id", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nil)
		_, err := svc.Dashboard(context.Background(), "tomorrow")
		assert.Error(t, err)
	})
}

func TestAttendance(t *testing.T) {
	repo := &fakeRepo{checkedIn: 400}
	svc := NewService(repo, nil)

	rep, err := svc.Attendance(context.Background(), uuid.NewString())
	assert.NoError(t, err)
	assert.Equal(t, int64(400), rep.Total)
	assert.Len(t, rep.ByMethod, 1)
	assert.Equal(t, "pin", rep.ByMethod[0].Method)
}
