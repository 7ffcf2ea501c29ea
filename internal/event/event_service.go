package event

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	eventErrors "github.com/IdrisKulubi/huaweievent/internal/event/errors"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

type Service interface {
	Create(ctx context.Context, req CreateEventRequest) (*EventResponse, error)
	Update(ctx context.Context, id string, req UpdateEventRequest) (*EventResponse, error)
	GetAll(ctx context.Context) ([]EventResponse, error)
	GetByID(ctx context.Context, id string) (*EventResponse, error)
	GetActive(ctx context.Context) (*EventResponse, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, eventErrors.ErrInvalidDateRange
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "career_fair"
	}

	now := time.Now().UTC()
	e := &Event{
		ID:                   uuid.New(),
		Name:                 req.Name,
		Description:          req.Description,
		Venue:                req.Venue,
		Address:              req.Address,
		EventType:            eventType,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		MaxAttendees:         req.MaxAttendees,
		IsActive:             false,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx).Info("event created",
		zap.String("event_id", e.ID.String()),
		zap.String("name", e.Name),
	)

	resp := toEventResponse(e)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEventRequest) (*EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Venue != nil {
		e.Venue = *req.Venue
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.StartDate != nil {
		e.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		e.EndDate = *req.EndDate
	}
	if req.RegistrationDeadline != nil {
		e.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.MaxAttendees != nil {
		e.MaxAttendees = *req.MaxAttendees
	}
	if !e.EndDate.After(e.StartDate) {
		return nil, eventErrors.ErrInvalidDateRange
	}
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	resp := toEventResponse(e)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]EventResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EventResponse, 0, len(list))
	for i := range list {
		out = append(out, toEventResponse(&list[i]))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*EventResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEventResponse(e)
	return &resp, nil
}

// GetActive resolves the event check-ins run against. If the flag has
// drifted onto several rows the most recently updated one wins and the
// drift is logged for an operator to clean up.
func (s *service) GetActive(ctx context.Context) (*EventResponse, error) {
	active, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, eventErrors.ErrNoActiveEvent
	}
	if len(active) > 1 {
		contextutil.GetLogger(ctx).Warn("multiple events flagged active",
			zap.Int("count", len(active)),
			zap.String("chosen_event_id", active[0].ID.String()),
		)
	}
	resp := toEventResponse(&active[0])
	return &resp, nil
}

// Activate flips the active flag to the given event. The previous active
// event is cleared in the same transaction so two events are never live
// at once.
func (s *service) Activate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return eventErrors.ErrInvalidEventID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeactivateAll(ctx); err != nil {
		return err
	}
	if err := qtx.SetActive(ctx, id, true); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx).Info("event activated", zap.String("event_id", id))
	return nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return eventErrors.ErrInvalidEventID
	}
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	contextutil.GetLogger(ctx).Info("event deactivated", zap.String("event_id", id))
	return nil
}
