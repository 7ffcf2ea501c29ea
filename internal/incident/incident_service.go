package incident

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	incidentErrors "github.com/IdrisKulubi/huaweievent/internal/incident/errors"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

type Service interface {
	Report(ctx context.Context, reportedBy string, req ReportIncidentRequest) (*IncidentResponse, error)
	GetByID(ctx context.Context, id string) (*IncidentResponse, error)
	GetAll(ctx context.Context, filter Filter) ([]IncidentResponse, error)
	UpdateStatus(ctx context.Context, id, updatedBy string, req UpdateIncidentRequest) (*IncidentResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Report(ctx context.Context, reportedBy string, req ReportIncidentRequest) (*IncidentResponse, error) {
	reporter, err := uuid.Parse(reportedBy)
	if err != nil {
		return nil, incidentErrors.ErrInvalidIncidentID
	}

	now := time.Now().UTC()
	i := &SecurityIncident{
		ID:              uuid.New(),
		ReportedBy:      reporter,
		IncidentType:    req.IncidentType,
		Severity:        req.Severity,
		Location:        req.Location,
		Description:     req.Description,
		InvolvedPersons: req.InvolvedPersons,
		Status:          StatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.EventID != "" {
		eventID, err := uuid.Parse(req.EventID)
		if err != nil {
			return nil, incidentErrors.ErrInvalidIncidentID
		}
		i.EventID = &eventID
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx).Warn("security incident reported",
		zap.String("incident_id", i.ID.String()),
		zap.String("incident_type", i.IncidentType),
		zap.String("severity", i.Severity),
		zap.String("reported_by", reportedBy),
	)

	resp := toIncidentResponse(i)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*IncidentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, incidentErrors.ErrInvalidIncidentID
	}
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toIncidentResponse(i)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context, filter Filter) ([]IncidentResponse, error) {
	if filter.Status != "" && !ValidStatus(filter.Status) {
		return nil, incidentErrors.ErrInvalidIncidentStatus
	}
	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]IncidentResponse, 0, len(list))
	for i := range list {
		out = append(out, toIncidentResponse(&list[i]))
	}
	return out, nil
}

// UpdateStatus moves an incident through its lifecycle. Resolving
// stamps who closed it and when; a resolved incident stays resolved.
func (s *service) UpdateStatus(ctx context.Context, id, updatedBy string, req UpdateIncidentRequest) (*IncidentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, incidentErrors.ErrInvalidIncidentID
	}
	if !ValidStatus(req.Status) {
		return nil, incidentErrors.ErrInvalidIncidentStatus
	}

	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.Status == StatusResolved || i.Status == StatusClosed {
		return nil, incidentErrors.ErrAlreadyResolved
	}

	i.Status = req.Status
	if req.ActionTaken != "" {
		i.ActionTaken = req.ActionTaken
	}
	if req.Status == StatusResolved {
		resolver, err := uuid.Parse(updatedBy)
		if err != nil {
			return nil, incidentErrors.ErrInvalidIncidentID
		}
		now := time.Now().UTC()
		i.ResolvedBy = &resolver
		i.ResolvedAt = &now
	}
	i.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx).Info("incident status updated",
		zap.String("incident_id", id),
		zap.String("status", i.Status),
	)

	resp := toIncidentResponse(i)
	return &resp, nil
}
