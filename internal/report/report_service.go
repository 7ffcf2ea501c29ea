package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	eventErrors "github.com/IdrisKulubi/huaweievent/internal/event/errors"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

const (
	dashboardCacheTTL  = 30 * time.Second
	attendanceCacheTTL = 5 * time.Minute
)

type Service interface {
	Dashboard(ctx context.Context, eventID string) (*DashboardStats, error)
	Attendance(ctx context.Context, eventID string) (*AttendanceReport, error)
}

type service struct {
	repo  Repository
	rdb   *redis.Client
	group singleflight.Group
	now   func() time.Time
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, now: time.Now}
}

// Dashboard aggregates the live security overview. The redis cache and
// singleflight keep a dashboard full of polling clients down to one
// query burst per TTL window.
func (s *service) Dashboard(ctx context.Context, eventID string) (*DashboardStats, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}

	cacheKey := "report:dashboard:" + eventID
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var stats DashboardStats
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		return s.buildDashboard(ctx, eventID)
	})
	if err != nil {
		return nil, err
	}
	stats := v.(*DashboardStats)

	if s.rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				contextutil.GetLogger(ctx).Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *service) buildDashboard(ctx context.Context, eventID string) (*DashboardStats, error) {
	now := s.now().UTC()
	stats := &DashboardStats{EventID: eventID, GeneratedAt: now}

	var err error
	if stats.TotalRegistered, err = s.repo.CountRegistered(ctx); err != nil {
		return nil, err
	}
	if stats.TotalApproved, err = s.repo.CountApproved(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCheckedIn, err = s.repo.CountCheckedIn(ctx, eventID); err != nil {
		return nil, err
	}
	if stats.DuplicateAttempts, err = s.repo.CountDuplicates(ctx, eventID); err != nil {
		return nil, err
	}
	if stats.CheckInsLastHour, err = s.repo.CountCheckInsSince(ctx, eventID, now.Add(-time.Hour)); err != nil {
		return nil, err
	}
	if stats.OpenIncidents, err = s.repo.CountOpenIncidents(ctx, eventID); err != nil {
		return nil, err
	}
	if stats.CriticalIncidents, err = s.repo.CountCriticalIncidents(ctx, eventID); err != nil {
		return nil, err
	}
	if stats.UsersByRole, err = s.repo.UsersByRole(ctx); err != nil {
		return nil, err
	}
	if stats.AttendeesByStatus, err = s.repo.AttendeesByStatus(ctx); err != nil {
		return nil, err
	}
	if stats.CheckInsPerDay, err = s.repo.DailyCheckIns(ctx, eventID, now.AddDate(0, 0, -14)); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *service) Attendance(ctx context.Context, eventID string) (*AttendanceReport, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}

	cacheKey := "report:attendance:" + eventID
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var rep AttendanceReport
			if json.Unmarshal(cached, &rep) == nil {
				return &rep, nil
			}
		}
	}

	v, err, _ := s.group.Do(cacheKey, func() (any, error) {
		rep := &AttendanceReport{EventID: eventID}
		var err error
		if rep.Total, err = s.repo.CountCheckedIn(ctx, eventID); err != nil {
			return nil, err
		}
		if rep.ByMethod, err = s.repo.MethodBreakdown(ctx, eventID); err != nil {
			return nil, err
		}
		if rep.FirstScan, rep.LastScan, err = s.repo.ScanWindow(ctx, eventID); err != nil {
			return nil, err
		}
		return rep, nil
	})
	if err != nil {
		return nil, err
	}
	rep := v.(*AttendanceReport)

	if s.rdb != nil {
		if payload, err := json.Marshal(rep); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, attendanceCacheTTL).Err(); err != nil {
				contextutil.GetLogger(ctx).Warn("attendance cache write failed", zap.Error(err))
			}
		}
	}
	return rep, nil
}
