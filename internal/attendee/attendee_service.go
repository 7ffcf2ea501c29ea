package attendee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	attendeeErrors "github.com/IdrisKulubi/huaweievent/internal/attendee/errors"
	"github.com/IdrisKulubi/huaweievent/internal/events"
	"github.com/IdrisKulubi/huaweievent/internal/messaging/kafka"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

type Service interface {
	CreateProfile(ctx context.Context, userID string, req CreateProfileRequest) (*CredentialsResponse, error)
	GetMyProfile(ctx context.Context, userID string) (*ProfileResponse, error)
	GetByID(ctx context.Context, id string) (*ProfileResponse, error)
	GetAll(ctx context.Context, status string) ([]ProfileResponse, error)
	RegeneratePin(ctx context.Context, userID string) (*CredentialsResponse, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox, now: time.Now}
}

// CreateProfile registers a summit profile for a logged-in job seeker.
// The user row update, the profile insert, and the welcome event all
// commit in one transaction so credentials are never announced for a
// profile that failed to persist.
func (s *service) CreateProfile(ctx context.Context, userID string, req CreateProfileRequest) (*CredentialsResponse, error) {
	logger := contextutil.GetLogger(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, attendeeErrors.ErrInvalidAttendeeID
	}

	existing, err := s.repo.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, attendeeErrors.ErrProfileNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, attendeeErrors.ErrProfileAlreadyExists
	}

	email, err := s.repo.FindUserEmail(ctx, userID)
	if err != nil {
		return nil, err
	}

	pin, err := GeneratePin()
	if err != nil {
		return nil, attendeeErrors.ErrCredentialGeneration
	}
	now := s.now().UTC()
	ticket, err := GenerateTicketNumber(now)
	if err != nil {
		return nil, attendeeErrors.ErrCredentialGeneration
	}

	expiresAt := now.Add(PinValidity)
	js := &JobSeeker{
		ID:                 uuid.New(),
		UserID:             uid,
		Bio:                req.Bio,
		CVURL:              req.CVURL,
		Skills:             req.Skills,
		Experience:         req.Experience,
		Education:          req.Education,
		InterestCategories: req.InterestCategories,
		LinkedinURL:        req.LinkedinURL,
		PortfolioURL:       req.PortfolioURL,
		ExpectedSalary:     req.ExpectedSalary,
		AvailableFrom:      req.AvailableFrom,
		Pin:                pin,
		PinGeneratedAt:     &now,
		PinExpiresAt:       &expiresAt,
		TicketNumber:       ticket,
		RegistrationStatus: StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.UpdateUserOnRegistration(ctx, userID, req.Name, req.PhoneNumber); err != nil {
		return nil, err
	}
	if err := qtx.Create(ctx, js); err != nil {
		return nil, mapUniqueViolation(err)
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.AttendeeRegisteredEvent{
		EventType:    "attendee.registered",
		AttendeeID:   js.ID.String(),
		UserID:       userID,
		Name:         req.Name,
		Email:        email,
		PhoneNumber:  req.PhoneNumber,
		Pin:          pin,
		TicketNumber: ticket,
		OccurredAt:   now,
	})
	if err != nil {
		return nil, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "attendee",
		AggregateID:   js.ID.String(),
		EventType:     "attendee.registered",
		Topic:         events.AttendeeRegisteredTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	logger.Info("attendee profile created",
		zap.String("attendee_id", js.ID.String()),
		zap.String("user_id", userID),
		zap.String("ticket_number", ticket),
		zap.String("request_id", rid),
	)

	profile := toProfileResponse(js)
	return &CredentialsResponse{Profile: profile, Pin: pin, PinExpiresAt: &expiresAt}, nil
}

func (s *service) GetMyProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	js, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(js)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ProfileResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, attendeeErrors.ErrInvalidAttendeeID
	}
	js, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(js)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]ProfileResponse, error) {
	if status != "" && !ValidRegistrationStatus(status) {
		return nil, attendeeErrors.ErrInvalidRegistrationStatus
	}
	list, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]ProfileResponse, 0, len(list))
	for i := range list {
		out = append(out, toProfileResponse(&list[i]))
	}
	return out, nil
}

// RegeneratePin mints a fresh PIN for the caller's profile. The old PIN
// stops working immediately because lookups go through the stored value.
func (s *service) RegeneratePin(ctx context.Context, userID string) (*CredentialsResponse, error) {
	logger := contextutil.GetLogger(ctx)

	js, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	pin, err := GeneratePin()
	if err != nil {
		return nil, attendeeErrors.ErrCredentialGeneration
	}
	now := s.now().UTC()
	expiresAt := now.Add(PinValidity)

	if err := s.repo.UpdatePin(ctx, js.ID.String(), pin, now, expiresAt); err != nil {
		return nil, mapUniqueViolation(err)
	}

	logger.Info("attendee pin regenerated",
		zap.String("attendee_id", js.ID.String()),
		zap.Time("pin_expires_at", expiresAt),
	)

	js.Pin = pin
	js.PinGeneratedAt = &now
	js.PinExpiresAt = &expiresAt
	profile := toProfileResponse(js)
	return &CredentialsResponse{Profile: profile, Pin: pin, PinExpiresAt: &expiresAt}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) error {
	logger := contextutil.GetLogger(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return attendeeErrors.ErrInvalidAttendeeID
	}
	if !ValidRegistrationStatus(status) {
		return attendeeErrors.ErrInvalidRegistrationStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	logger.Info("attendee registration status updated",
		zap.String("attendee_id", id),
		zap.String("status", status),
	)
	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "pin") {
			return attendeeErrors.ErrPinCollision
		}
		return attendeeErrors.ErrProfileAlreadyExists
	}
	return err
}
