package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/IdrisKulubi/huaweievent/internal/rbac"
	usererrors "github.com/IdrisKulubi/huaweievent/internal/user/errors"
)

type fakeRepo struct {
	findAllFn                 func(ctx context.Context) ([]User, error)
	findByIDFn                func(ctx context.Context, id string) (*User, error)
	updateFn                  func(ctx context.Context, u *User) error
	findSecurityProfileFn     func(ctx context.Context, userID string) (*SecurityPersonnel, error)
	saveSecurityProfileFn     func(ctx context.Context, p *SecurityPersonnel) error
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]User, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }
func (f *fakeRepo) FindSecurityProfileByUser(ctx context.Context, userID string) (*SecurityPersonnel, error) {
	return f.findSecurityProfileFn(ctx, userID)
}
func (f *fakeRepo) SaveSecurityProfile(ctx context.Context, p *SecurityPersonnel) error {
	return f.saveSecurityProfileFn(ctx, p)
}

func TestService_UpdateRole(t *testing.T) {
	ctx := context.Background()
	stored := &User{ID: uuid.New(), Email: "x@mail.com", Role: rbac.RoleJobSeeker, IsActive: true}

	var updated *User
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*User, error) { return stored, nil },
		updateFn:   func(ctx context.Context, u *User) error { updated = u; return nil },
	}
	svc := NewService(repo)

	t.Run("promotes to security", func(t *testing.T) {
		resp, err := svc.UpdateRole(ctx, stored.ID.String(), rbac.RoleSecurity)
		assert.NoError(t, err)
		assert.Equal(t, rbac.RoleSecurity, resp.Role)
		assert.NotNil(t, updated)
		assert.Equal(t, rbac.RoleSecurity, updated.Role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, stored.ID.String(), "superuser")
		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("user not found", func(t *testing.T) {
		repo.findByIDFn = func(ctx context.Context, id string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		}
		_, err := svc.UpdateRole(ctx, uuid.New().String(), rbac.RoleAdmin)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestService_UpsertSecurityProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	var saved *SecurityPersonnel
	repo := &fakeRepo{
		findSecurityProfileFn: func(ctx context.Context, id string) (*SecurityPersonnel, error) {
			return nil, gorm.ErrRecordNotFound
		},
		saveSecurityProfileFn: func(ctx context.Context, p *SecurityPersonnel) error {
			saved = p
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.UpsertSecurityProfile(ctx, userID.String(), UpsertSecurityProfileRequest{
		BadgeNumber:    "SEC-042",
		ClearanceLevel: "advanced",
		IsOnDuty:       true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "SEC-042", resp.BadgeNumber)
	assert.Equal(t, "advanced", resp.ClearanceLevel)
	assert.True(t, resp.IsOnDuty)
	assert.NotNil(t, saved)
	assert.Equal(t, userID, saved.UserID)
}
