package offline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/checkin"
	checkinErrors "github.com/IdrisKulubi/huaweievent/internal/checkin/errors"
)

// Verifier is the upstream API surface the station forwards to. The
// attempt ID doubles as the server-side idempotency key.
type Verifier interface {
	Verify(ctx context.Context, method, value, attemptID string) (*APIResponse, error)
}

// Outcome tells the gate screen what happened to a verification:
// either it was forwarded and the API answered, or it was queued
// locally for manual reconciliation.
type Outcome struct {
	Forwarded    bool         `json:"forwarded"`
	Queued       bool         `json:"queued"`
	PendingCount int          `json:"pending_count"`
	Response     *APIResponse `json:"response,omitempty"`
	Record       *Record      `json:"record,omitempty"`
}

type StatusInfo struct {
	Online       bool   `json:"online"`
	BadgeNumber  string `json:"badge_number"`
	PendingCount int    `json:"pending_count"`
}

type ExportResult struct {
	Path        string `json:"path"`
	RecordCount int    `json:"record_count"`
}

// Service glues the queue, the connectivity monitor, and the forwarder
// into the station's verification flow.
type Service struct {
	store      *Store
	monitor    *Monitor
	forwarder  Verifier
	badge      string
	verifiedBy string
	exportDir  string
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(store *Store, monitor *Monitor, forwarder Verifier, badge, verifiedBy, exportDir string, logger *zap.Logger) *Service {
	return &Service{
		store:      store,
		monitor:    monitor,
		forwarder:  forwarder,
		badge:      badge,
		verifiedBy: verifiedBy,
		exportDir:  exportDir,
		logger:     logger,
		now:        time.Now,
	}
}

// Verify forwards when the station believes it is online, and falls
// back to the local queue the moment the API proves unreachable. A
// queued record is never replayed automatically. Format checks run
// regardless of connectivity; the queue only ever holds well-formed
// input.
func (s *Service) Verify(ctx context.Context, method, value string) (*Outcome, error) {
	switch method {
	case MethodPin:
		value = checkin.NormalizePin(value)
		if !checkin.ValidatePinFormat(value) {
			return nil, checkinErrors.ErrInvalidPinFormat
		}
	case MethodTicket:
		value = checkin.NormalizeTicket(value)
		if !checkin.ValidateTicketFormat(value) {
			return nil, checkinErrors.ErrInvalidTicketFormat
		}
	default:
		return nil, fmt.Errorf("unknown verification method %q", method)
	}

	// One ID per attempt: it is the idempotency key when forwarding and
	// the record ID when the attempt lands in the local queue instead.
	attemptID := uuid.NewString()

	if s.monitor.Online() {
		resp, err := s.forwarder.Verify(ctx, method, value, attemptID)
		if err == nil {
			s.monitor.Observe(true)
			pending, _ := s.store.Count(s.badge)
			return &Outcome{Forwarded: true, PendingCount: pending, Response: resp}, nil
		}
		if !errors.Is(err, ErrUnreachable) {
			return nil, err
		}
		s.monitor.Observe(false)
	}

	return s.enqueue(attemptID, method, value)
}

func (s *Service) enqueue(attemptID, method, value string) (*Outcome, error) {
	record := Record{
		ID:          attemptID,
		BadgeNumber: s.badge,
		Method:      method,
		Value:       value,
		VerifiedBy:  s.verifiedBy,
		CapturedAt:  s.now().UTC(),
		Status:      StatusPendingSync,
	}
	if err := s.store.Append(record); err != nil {
		return nil, err
	}

	pending, err := s.store.Count(s.badge)
	if err != nil {
		return nil, err
	}

	s.logger.Info("verification queued offline",
		zap.String("record_id", record.ID),
		zap.String("method", method),
		zap.Int("pending", pending),
	)
	return &Outcome{Queued: true, PendingCount: pending, Record: &record}, nil
}

func (s *Service) Pending() ([]Record, error) {
	return s.store.List(s.badge)
}

func (s *Service) Status() (*StatusInfo, error) {
	pending, err := s.store.Count(s.badge)
	if err != nil {
		return nil, err
	}
	return &StatusInfo{
		Online:       s.monitor.Online(),
		BadgeNumber:  s.badge,
		PendingCount: pending,
	}, nil
}

// Export writes the queue to a JSON file for the registration desk.
// The queue is left intact; Clear is a separate, deliberate step.
func (s *Service) Export() (*ExportResult, error) {
	records, err := s.store.List(s.badge)
	if err != nil {
		return nil, err
	}
	path, err := WriteExport(s.exportDir, s.badge, records, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("offline queue exported",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return &ExportResult{Path: path, RecordCount: len(records)}, nil
}

func (s *Service) Clear() (int, error) {
	removed, err := s.store.Clear(s.badge)
	if err != nil {
		return 0, err
	}
	s.logger.Info("offline queue cleared", zap.Int("removed", removed))
	return removed, nil
}
