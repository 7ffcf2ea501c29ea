package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/IdrisKulubi/huaweievent/internal/rbac"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
	usererrors "github.com/IdrisKulubi/huaweievent/internal/user/errors"
)

type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)

	UpdateRole(ctx context.Context, userID, role string) (UserResponse, error)
	ToggleStatus(ctx context.Context, userID string, isActive bool) error
	ForceResetPassword(ctx context.Context, userID, newPassword string) error

	UpsertSecurityProfile(ctx context.Context, userID string, req UpsertSecurityProfileRequest) (SecurityProfileResponse, error)
	GetSecurityProfile(ctx context.Context, userID string) (SecurityProfileResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, userID, role string) (UserResponse, error) {
	l := contextutil.GetLogger(ctx)

	switch role {
	case rbac.RoleAdmin, rbac.RoleEmployer, rbac.RoleJobSeeker, rbac.RoleSecurity:
	default:
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	previous := u.Role
	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, err
	}

	l.Info("user role updated",
		zap.String("target_user_id", userID),
		zap.String("from", previous),
		zap.String("to", role),
	)

	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, userID string, isActive bool) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	u.IsActive = isActive
	return s.repo.Update(ctx, u)
}

func (s *service) ForceResetPassword(ctx context.Context, userID, newPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

func (s *service) UpsertSecurityProfile(ctx context.Context, userID string, req UpsertSecurityProfileRequest) (SecurityProfileResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return SecurityProfileResponse{}, usererrors.ErrInvalidUserID
	}

	profile, err := s.repo.FindSecurityProfileByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SecurityProfileResponse{}, err
		}
		profile = &SecurityPersonnel{
			ID:     uuid.New(),
			UserID: uid,
		}
	}

	profile.BadgeNumber = req.BadgeNumber
	profile.Department = req.Department
	if req.ClearanceLevel != "" {
		profile.ClearanceLevel = req.ClearanceLevel
	}
	profile.IsOnDuty = req.IsOnDuty

	if err := s.repo.SaveSecurityProfile(ctx, profile); err != nil {
		return SecurityProfileResponse{}, err
	}

	return mapToSecurityResponse(*profile), nil
}

func (s *service) GetSecurityProfile(ctx context.Context, userID string) (SecurityProfileResponse, error) {
	profile, err := s.repo.FindSecurityProfileByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SecurityProfileResponse{}, usererrors.ErrSecurityProfileNotFound
		}
		return SecurityProfileResponse{}, err
	}

	return mapToSecurityResponse(*profile), nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToSecurityResponse(p SecurityPersonnel) SecurityProfileResponse {
	return SecurityProfileResponse{
		ID:             p.ID.String(),
		UserID:         p.UserID.String(),
		BadgeNumber:    p.BadgeNumber,
		Department:     p.Department,
		ClearanceLevel: p.ClearanceLevel,
		IsOnDuty:       p.IsOnDuty,
	}
}
