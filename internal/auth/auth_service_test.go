package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	autherrors "github.com/IdrisKulubi/huaweievent/internal/auth/errors"
	"github.com/IdrisKulubi/huaweievent/internal/rbac"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, user *User) error
	getByEmailFn func(ctx context.Context, email string) (*User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeRepo) Create(ctx context.Context, user *User) error { return f.createFn(ctx, user) }
func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.getByEmailFn(ctx, email)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &User{
		ID:       uuid.New(),
		Email:    "jane@example.com",
		Name:     "Jane Doe",
		Password: string(hashed),
		Role:     rbac.RoleSecurity,
		IsActive: true,
	}

	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo)

	t.Run("success", func(t *testing.T) {
		access, refresh, resp, err := svc.Login(ctx, "jane@example.com", "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, rbac.RoleSecurity, resp.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		stored.IsActive = false
		defer func() { stored.IsActive = true }()

		_, _, _, err := svc.Login(ctx, "jane@example.com", "secret123")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	var created *User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, user *User) error {
			created = user
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Register(ctx, RegisterRequest{
		Email:       "new@example.com",
		Name:        "New User",
		PhoneNumber: "+254700000000",
		Password:    "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, rbac.RoleJobSeeker, resp.Role)
	assert.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
}
