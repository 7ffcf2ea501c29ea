package employer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	employerErrors "github.com/IdrisKulubi/huaweievent/internal/employer/errors"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

type Service interface {
	UpsertMine(ctx context.Context, userID string, req UpsertEmployerRequest) (*EmployerResponse, error)
	GetMine(ctx context.Context, userID string) (*EmployerResponse, error)
	GetByID(ctx context.Context, id string) (*EmployerResponse, error)
	GetAll(ctx context.Context) ([]EmployerResponse, error)
	SetVerified(ctx context.Context, id string, verified bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// UpsertMine creates the caller's employer profile on first save and
// updates it afterwards. Verification is reset on company name changes
// so a verified badge cannot be carried onto a different company.
func (s *service) UpsertMine(ctx context.Context, userID string, req UpsertEmployerRequest) (*EmployerResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, employerErrors.ErrInvalidEmployerID
	}

	now := time.Now().UTC()
	existing, err := s.repo.FindByUser(ctx, userID)
	if err != nil && !errors.Is(err, employerErrors.ErrEmployerNotFound) {
		return nil, err
	}

	if existing == nil {
		e := &Employer{
			ID:           uuid.New(),
			UserID:       uid,
			CompanyName:  req.CompanyName,
			Industry:     req.Industry,
			Description:  req.Description,
			Website:      req.Website,
			LogoURL:      req.LogoURL,
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.repo.Create(ctx, e); err != nil {
			return nil, err
		}

		contextutil.GetLogger(ctx).Info("employer profile created",
			zap.String("employer_id", e.ID.String()),
			zap.String("company_name", e.CompanyName),
		)
		resp := toEmployerResponse(e)
		return &resp, nil
	}

	if existing.CompanyName != req.CompanyName {
		existing.IsVerified = false
	}
	existing.CompanyName = req.CompanyName
	existing.Industry = req.Industry
	existing.Description = req.Description
	existing.Website = req.Website
	existing.LogoURL = req.LogoURL
	existing.ContactEmail = req.ContactEmail
	existing.ContactPhone = req.ContactPhone
	existing.UpdatedAt = now

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	resp := toEmployerResponse(existing)
	return &resp, nil
}

func (s *service) GetMine(ctx context.Context, userID string) (*EmployerResponse, error) {
	e, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toEmployerResponse(e)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*EmployerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employerErrors.ErrInvalidEmployerID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEmployerResponse(e)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployerResponse, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EmployerResponse, 0, len(list))
	for i := range list {
		out = append(out, toEmployerResponse(&list[i]))
	}
	return out, nil
}

func (s *service) SetVerified(ctx context.Context, id string, verified bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return employerErrors.ErrInvalidEmployerID
	}
	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		return err
	}
	contextutil.GetLogger(ctx).Info("employer verification updated",
		zap.String("employer_id", id),
		zap.Bool("is_verified", verified),
	)
	return nil
}
