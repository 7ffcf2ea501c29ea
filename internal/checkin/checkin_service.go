package checkin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/attendee"
	attendeeErrors "github.com/IdrisKulubi/huaweievent/internal/attendee/errors"
	checkinErrors "github.com/IdrisKulubi/huaweievent/internal/checkin/errors"
	"github.com/IdrisKulubi/huaweievent/internal/event"
	eventErrors "github.com/IdrisKulubi/huaweievent/internal/event/errors"
	"github.com/IdrisKulubi/huaweievent/internal/events"
	"github.com/IdrisKulubi/huaweievent/internal/messaging/kafka"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

// AttendeeDirectory is the slice of the attendee repository the gate
// needs. Malformed input is rejected before any of these are called.
type AttendeeDirectory interface {
	FindByPin(ctx context.Context, pin string) (*attendee.JobSeeker, error)
	FindByTicket(ctx context.Context, ticketNumber string) (*attendee.JobSeeker, error)
}

// ActiveEventSource resolves the event a check-in counts against.
type ActiveEventSource interface {
	GetActive(ctx context.Context) (*event.EventResponse, error)
}

type Service interface {
	VerifyByPin(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error)
	VerifyByTicket(ctx context.Context, ticketNumber, verifiedBy string) (*VerificationResult, error)
	GetByEvent(ctx context.Context, eventID string) ([]AttendanceRecordResponse, error)
	GetByAttendee(ctx context.Context, jobSeekerID string) ([]AttendanceRecordResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	attendees AttendeeDirectory
	activeSrc ActiveEventSource
	outbox    kafka.OutboxRepository
	now       func() time.Time
}

func NewService(db *sql.DB, repo Repository, attendees AttendeeDirectory, activeSrc ActiveEventSource, outbox kafka.OutboxRepository) Service {
	return &service{
		db:        db,
		repo:      repo,
		attendees: attendees,
		activeSrc: activeSrc,
		outbox:    outbox,
		now:       time.Now,
	}
}

// VerifyByPin checks an attendee in by their 6 digit PIN. Format is
// checked before any lookup so garbage input never touches the database.
func (s *service) VerifyByPin(ctx context.Context, pin, verifiedBy string) (*VerificationResult, error) {
	pin = NormalizePin(pin)
	if !ValidatePinFormat(pin) {
		return nil, checkinErrors.ErrInvalidPinFormat
	}

	js, err := s.attendees.FindByPin(ctx, pin)
	if errors.Is(err, attendeeErrors.ErrProfileNotFound) {
		return nil, checkinErrors.ErrPinNotFound
	}
	if err != nil {
		return nil, err
	}

	if js.PinExpiresAt != nil && js.PinExpiresAt.Before(s.now()) {
		return nil, checkinErrors.ErrPinExpired
	}

	return s.recordCheckIn(ctx, js, verifiedBy, MethodPin, pin)
}

// VerifyByTicket checks an attendee in by their printed ticket number.
// Matching is case-insensitive.
func (s *service) VerifyByTicket(ctx context.Context, ticketNumber, verifiedBy string) (*VerificationResult, error) {
	ticketNumber = NormalizeTicket(ticketNumber)
	if !ValidateTicketFormat(ticketNumber) {
		return nil, checkinErrors.ErrInvalidTicketFormat
	}

	js, err := s.attendees.FindByTicket(ctx, ticketNumber)
	if errors.Is(err, attendeeErrors.ErrProfileNotFound) {
		return nil, checkinErrors.ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.recordCheckIn(ctx, js, verifiedBy, MethodTicket, ticketNumber)
}

// recordCheckIn runs the shared tail of both verification paths:
// approval gate, active event gate, duplicate detection, and the
// append-only record insert. A duplicate is still a success; the extra
// row is flagged rather than suppressed.
func (s *service) recordCheckIn(ctx context.Context, js *attendee.JobSeeker, verifiedBy, method, data string) (*VerificationResult, error) {
	logger := contextutil.GetLogger(ctx)

	verifier, err := uuid.Parse(verifiedBy)
	if err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}

	if js.RegistrationStatus != attendee.StatusApproved {
		return nil, checkinErrors.NotApproved(js.RegistrationStatus)
	}

	active, err := s.activeSrc.GetActive(ctx)
	if err != nil {
		if errors.Is(err, eventErrors.ErrNoActiveEvent) {
			return nil, checkinErrors.ErrNoActiveEvent
		}
		return nil, err
	}

	activeID, err := uuid.Parse(active.ID)
	if err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}

	prior, err := s.repo.FindLatestForEvent(ctx, js.ID.String(), active.ID)
	if err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}
	already := prior != nil

	contact, err := s.repo.FindAttendeeContact(ctx, js.UserID.String())
	if err != nil {
		logger.Error("attendee contact lookup failed",
			zap.String("user_id", js.UserID.String()),
			zap.Error(err),
		)
		return nil, checkinErrors.ErrVerificationFailed
	}

	now := s.now().UTC()
	record := &AttendanceRecord{
		ID:                 uuid.New(),
		JobSeekerID:        js.ID,
		EventID:            activeID,
		CheckedInBy:        verifier,
		CheckInTime:        now,
		VerificationMethod: method,
		VerificationData:   data,
		Status:             StatusCheckedIn,
		CreatedAt:          now,
	}
	if already {
		record.Notes = DuplicateNote
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
		logger.Error("attendance record insert failed",
			zap.String("job_seeker_id", js.ID.String()),
			zap.Error(err),
		)
		return nil, checkinErrors.ErrVerificationFailed
	}

	payload, err := json.Marshal(events.CheckInRecordedEvent{
		EventType:          "checkin.recorded",
		AttendanceRecordID: record.ID.String(),
		AttendeeID:         js.ID.String(),
		EventID:            active.ID,
		VerifiedBy:         verifiedBy,
		Method:             method,
		AlreadyCheckedIn:   already,
		OccurredAt:         now,
	})
	if err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "checkin",
		AggregateID:   record.ID.String(),
		EventType:     "checkin.recorded",
		Topic:         events.CheckInRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}

	if err := tx.Commit(); err != nil {
		return nil, checkinErrors.ErrVerificationFailed
	}

	message := "Check-in successful"
	if already {
		message = "Attendee already checked in. The attempt was logged."
	}

	logger.Info("check-in recorded",
		zap.String("record_id", record.ID.String()),
		zap.String("job_seeker_id", js.ID.String()),
		zap.String("event_id", active.ID),
		zap.String("method", method),
		zap.Bool("already_checked_in", already),
	)

	result := &VerificationResult{
		Success:          true,
		AlreadyCheckedIn: already,
		Message:          message,
		Attendee: AttendeeSummary{
			ID:                 js.ID.String(),
			Name:               contact.Name,
			Email:              contact.Email,
			Pin:                js.Pin,
			TicketNumber:       js.TicketNumber,
			RegistrationStatus: js.RegistrationStatus,
		},
		Record: RecordSummary{
			ID:                 record.ID.String(),
			EventID:            active.ID,
			CheckInTime:        record.CheckInTime,
			VerificationMethod: method,
			Notes:              record.Notes,
		},
	}
	if already {
		result.PreviousCheckInTime = &prior.CheckInTime
	}
	return result, nil
}

func (s *service) GetByEvent(ctx context.Context, eventID string) ([]AttendanceRecordResponse, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}
	list, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]AttendanceRecordResponse, 0, len(list))
	for i := range list {
		out = append(out, toRecordResponse(&list[i]))
	}
	return out, nil
}

func (s *service) GetByAttendee(ctx context.Context, jobSeekerID string) ([]AttendanceRecordResponse, error) {
	if _, err := uuid.Parse(jobSeekerID); err != nil {
		return nil, attendeeErrors.ErrInvalidAttendeeID
	}
	list, err := s.repo.FindByAttendee(ctx, jobSeekerID)
	if err != nil {
		return nil, err
	}
	out := make([]AttendanceRecordResponse, 0, len(list))
	for i := range list {
		out = append(out, toRecordResponse(&list[i]))
	}
	return out, nil
}
