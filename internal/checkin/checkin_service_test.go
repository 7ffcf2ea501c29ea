package checkin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/IdrisKulubi/huaweievent/internal/attendee"
	attendeeErrors "github.com/IdrisKulubi/huaweievent/internal/attendee/errors"
	checkinErrors "github.com/IdrisKulubi/huaweievent/internal/checkin/errors"
	"github.com/IdrisKulubi/huaweievent/internal/event"
	eventErrors "github.com/IdrisKulubi/huaweievent/internal/event/errors"
	"github.com/IdrisKulubi/huaweievent/internal/events"
	"github.com/IdrisKulubi/huaweievent/internal/messaging/kafka"
)

type fakeRepo struct {
	createFn         func(ctx context.Context, record *AttendanceRecord) error
	latestFn         func(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error)
	findByEventFn    func(ctx context.Context, eventID string) ([]AttendanceRecord, error)
	findByAttendeeFn func(ctx context.Context, jobSeekerID string) ([]AttendanceRecord, error)
	contactFn        func(ctx context.Context, userID string) (*AttendeeContact, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, record *AttendanceRecord) error {
	return f.createFn(ctx, record)
}
func (f *fakeRepo) FindLatestForEvent(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error) {
	return f.latestFn(ctx, jobSeekerID, eventID)
}
func (f *fakeRepo) FindByEvent(ctx context.Context, eventID string) ([]AttendanceRecord, error) {
	return f.findByEventFn(ctx, eventID)
}
func (f *fakeRepo) FindByAttendee(ctx context.Context, jobSeekerID string) ([]AttendanceRecord, error) {
	return f.findByAttendeeFn(ctx, jobSeekerID)
}
func (f *fakeRepo) FindAttendeeContact(ctx context.Context, userID string) (*AttendeeContact, error) {
	if f.contactFn == nil {
		return &AttendeeContact{Name: "Amina Wanjiru", Email: "amina.wanjiru@example.com"}, nil
	}
	return f.contactFn(ctx, userID)
}

type fakeDirectory struct {
	byPin    func(ctx context.Context, pin string) (*attendee.JobSeeker, error)
	byTicket func(ctx context.Context, ticket string) (*attendee.JobSeeker, error)
}

func (f *fakeDirectory) FindByPin(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
	return f.byPin(ctx, pin)
}
func (f *fakeDirectory) FindByTicket(ctx context.Context, ticket string) (*attendee.JobSeeker, error) {
	return f.byTicket(ctx, ticket)
}

type fakeActiveSource struct {
	fn func(ctx context.Context) (*event.EventResponse, error)
}

func (f *fakeActiveSource) GetActive(ctx context.Context) (*event.EventResponse, error) {
	return f.fn(ctx)
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func approvedSeeker() *attendee.JobSeeker {
	return &attendee.JobSeeker{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Pin:                "123456",
		TicketNumber:       "HCS-2026-K7M2P9QA",
		RegistrationStatus: attendee.StatusApproved,
	}
}

func activeEvent() *event.EventResponse {
	return &event.EventResponse{ID: uuid.NewString(), Name: "Huawei Career Summit", IsActive: true}
}

func TestVerifyByPin(t *testing.T) {
	verifier := uuid.NewString()

	t.Run("rejects a malformed pin before any lookup", func(t *testing.T) {
		// nil function fields would panic if the service touched the
		// directory or repository
		svc := NewService(nil, &fakeRepo{}, &fakeDirectory{}, &fakeActiveSource{}, &fakeOutbox{})

		for _, pin := range []string{"", "12345", "abcdef", "1234567"} {
			_, err := svc.VerifyByPin(context.Background(), pin, verifier)
			assert.ErrorIs(t, err, checkinErrors.ErrInvalidPinFormat, "pin %q", pin)
		}
	})

	t.Run("reports an unknown pin as not found", func(t *testing.T) {
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				return nil, attendeeErrors.ErrProfileNotFound
			},
		}
		svc := NewService(nil, &fakeRepo{}, dir, &fakeActiveSource{}, &fakeOutbox{})

		_, err := svc.VerifyByPin(context.Background(), "123456", verifier)
		assert.ErrorIs(t, err, checkinErrors.ErrPinNotFound)
	})

	t.Run("refuses an unapproved attendee and names the status", func(t *testing.T) {
		js := approvedSeeker()
		js.RegistrationStatus = attendee.StatusPending
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				return js, nil
			},
		}
		svc := NewService(nil, &fakeRepo{}, dir, &fakeActiveSource{}, &fakeOutbox{})

		_, err := svc.VerifyByPin(context.Background(), "123456", verifier)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pending")
	})

	t.Run("refuses an expired pin", func(t *testing.T) {
		js := approvedSeeker()
		expired := time.Now().Add(-time.Hour)
		js.PinExpiresAt = &expired
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				return js, nil
			},
		}
		svc := NewService(nil, &fakeRepo{}, dir, &fakeActiveSource{}, &fakeOutbox{})

		_, err := svc.VerifyByPin(context.Background(), "123456", verifier)
		assert.ErrorIs(t, err, checkinErrors.ErrPinExpired)
	})

	t.Run("refuses check-in when no event is active", func(t *testing.T) {
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				return approvedSeeker(), nil
			},
		}
		src := &fakeActiveSource{
			fn: func(ctx context.Context) (*event.EventResponse, error) {
				return nil, eventErrors.ErrNoActiveEvent
			},
		}
		svc := NewService(nil, &fakeRepo{}, dir, src, &fakeOutbox{})

		_, err := svc.VerifyByPin(context.Background(), "123456", verifier)
		assert.ErrorIs(t, err, checkinErrors.ErrNoActiveEvent)
	})

	t.Run("records a first check-in", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		js := approvedSeeker()
		var created *AttendanceRecord
		repo := &fakeRepo{
			latestFn: func(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, record *AttendanceRecord) error {
				created = record
				return nil
			},
		}
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				assert.Equal(t, "123456", pin)
				return js, nil
			},
		}
		src := &fakeActiveSource{
			fn: func(ctx context.Context) (*event.EventResponse, error) { return activeEvent(), nil },
		}
		outbox := &fakeOutbox{}

		svc := NewService(db, repo, dir, src, outbox)
		result, err := svc.VerifyByPin(context.Background(), " 123456 ", verifier)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.AlreadyCheckedIn)
		assert.Equal(t, "Amina Wanjiru", result.Attendee.Name)
		assert.Equal(t, "amina.wanjiru@example.com", result.Attendee.Email)
		assert.Equal(t, "123456", result.Attendee.Pin)
		assert.Equal(t, MethodPin, created.VerificationMethod)
		assert.Equal(t, StatusCheckedIn, created.Status)
		assert.Empty(t, created.Notes)

		assert.Len(t, outbox.created, 1)
		assert.Equal(t, events.CheckInRecordedTopic, outbox.created[0].Topic)
		var evt events.CheckInRecordedEvent
		assert.NoError(t, json.Unmarshal(outbox.created[0].Payload, &evt))
		assert.False(t, evt.AlreadyCheckedIn)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fails verification when the contact lookup fails", func(t *testing.T) {
		repo := &fakeRepo{
			latestFn: func(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error) {
				return nil, nil
			},
			contactFn: func(ctx context.Context, userID string) (*AttendeeContact, error) {
				return nil, errors.New("users table unavailable")
			},
			createFn: func(ctx context.Context, record *AttendanceRecord) error {
				t.Fatal("no record may be written without the attendee identity")
				return nil
			},
		}
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				return approvedSeeker(), nil
			},
		}
		src := &fakeActiveSource{
			fn: func(ctx context.Context) (*event.EventResponse, error) { return activeEvent(), nil },
		}

		svc := NewService(nil, repo, dir, src, &fakeOutbox{})
		_, err := svc.VerifyByPin(context.Background(), "123456", verifier)
		assert.ErrorIs(t, err, checkinErrors.ErrVerificationFailed)
	})

	t.Run("logs a duplicate as a flagged success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		firstTime := time.Date(2026, 9, 15, 9, 12, 0, 0, time.UTC)
		var created *AttendanceRecord
		repo := &fakeRepo{
			latestFn: func(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error) {
				return &AttendanceRecord{ID: uuid.New(), CheckInTime: firstTime}, nil
			},
			createFn: func(ctx context.Context, record *AttendanceRecord) error {
				created = record
				return nil
			},
		}
		dir := &fakeDirectory{
			byPin: func(ctx context.Context, pin string) (*attendee.JobSeeker, error) {
				return approvedSeeker(), nil
			},
		}
		src := &fakeActiveSource{
			fn: func(ctx context.Context) (*event.EventResponse, error) { return activeEvent(), nil },
		}

		svc := NewService(db, repo, dir, src, &fakeOutbox{})
		result, err := svc.VerifyByPin(context.Background(), "123456", verifier)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.AlreadyCheckedIn)
		if assert.NotNil(t, result.PreviousCheckInTime) {
			assert.Equal(t, firstTime, *result.PreviousCheckInTime)
		}
		assert.NotNil(t, created, "duplicates still append a record")
		assert.Equal(t, DuplicateNote, created.Notes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVerifyByTicket(t *testing.T) {
	verifier := uuid.NewString()

	t.Run("rejects a malformed ticket before any lookup", func(t *testing.T) {
		svc := NewService(nil, &fakeRepo{}, &fakeDirectory{}, &fakeActiveSource{}, &fakeOutbox{})

		for _, ticket := range []string{"", "HCS-26-K7M2P9QA", "HCS-2026", "K7M2P9QA"} {
			_, err := svc.VerifyByTicket(context.Background(), ticket, verifier)
			assert.ErrorIs(t, err, checkinErrors.ErrInvalidTicketFormat, "ticket %q", ticket)
		}
	})

	t.Run("matches tickets case-insensitively", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeRepo{
			latestFn: func(ctx context.Context, jobSeekerID, eventID string) (*AttendanceRecord, error) {
				return nil, nil
			},
			createFn: func(ctx context.Context, record *AttendanceRecord) error { return nil },
		}
		var lookedUp string
		dir := &fakeDirectory{
			byTicket: func(ctx context.Context, ticket string) (*attendee.JobSeeker, error) {
				lookedUp = ticket
				return approvedSeeker(), nil
			},
		}
		src := &fakeActiveSource{
			fn: func(ctx context.Context) (*event.EventResponse, error) { return activeEvent(), nil },
		}

		svc := NewService(db, repo, dir, src, &fakeOutbox{})
		result, err := svc.VerifyByTicket(context.Background(), "hcs-2026-k7m2p9qa", verifier)

		assert.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "HCS-2026-K7M2P9QA", lookedUp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports an unknown ticket as not found", func(t *testing.T) {
		dir := &fakeDirectory{
			byTicket: func(ctx context.Context, ticket string) (*attendee.JobSeeker, error) {
				return nil, attendeeErrors.ErrProfileNotFound
			},
		}
		svc := NewService(nil, &fakeRepo{}, dir, &fakeActiveSource{}, &fakeOutbox{})

		_, err := svc.VerifyByTicket(context.Background(), "HCS-2026-K7M2P9QA", verifier)
		assert.ErrorIs(t, err, checkinErrors.ErrTicketNotFound)
	})
}
