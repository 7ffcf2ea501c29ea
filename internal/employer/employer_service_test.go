package employer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	employerErrors "github.com/IdrisKulubi/huaweievent/internal/employer/errors"
)

type fakeRepo struct {
	createFn      func(ctx context.Context, e *Employer) error
	updateFn      func(ctx context.Context, e *Employer) error
	findByIDFn    func(ctx context.Context, id string) (*Employer, error)
	findByUserFn  func(ctx context.Context, userID string) (*Employer, error)
	findAllFn     func(ctx context.Context) ([]Employer, error)
	setVerifiedFn func(ctx context.Context, id string, verified bool) error
}

func (f *fakeRepo) Create(ctx context.Context, e *Employer) error { return f.createFn(ctx, e) }
func (f *fakeRepo) Update(ctx context.Context, e *Employer) error { return f.updateFn(ctx, e) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employer, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByUser(ctx context.Context, userID string) (*Employer, error) {
	return f.findByUserFn(ctx, userID)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employer, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	return f.setVerifiedFn(ctx, id, verified)
}

func TestUpsertMine(t *testing.T) {
	userID := uuid.NewString()

	t.Run("creates a profile on first save", func(t *testing.T) {
		var created *Employer
		repo := &fakeRepo{
			findByUserFn: func(ctx context.Context, id string) (*Employer, error) {
				return nil, employerErrors.ErrEmployerNotFound
			},
			createFn: func(ctx context.Context, e *Employer) error {
				created = e
				return nil
			},
		}

		svc := NewService(repo)
		resp, err := svc.UpsertMine(context.Background(), userID, UpsertEmployerRequest{
			CompanyName: "Safaricom PLC",
			Industry:    "Telecommunications",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.False(t, created.IsVerified)
		assert.Equal(t, "Safaricom PLC", resp.CompanyName)
	})

	t.Run("renaming the company drops verification", func(t *testing.T) {
		existing := &Employer{
			ID:          uuid.New(),
			UserID:      uuid.MustParse(userID),
			CompanyName: "Safaricom PLC",
			IsVerified:  true,
		}
		var updated *Employer
		repo := &fakeRepo{
			findByUserFn: func(ctx context.Context, id string) (*Employer, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, e *Employer) error {
				updated = e
				return nil
			},
		}

		svc := NewService(repo)
		_, err := svc.UpsertMine(context.Background(), userID, UpsertEmployerRequest{
			CompanyName: "Some Other Company Ltd",
		})

		assert.NoError(t, err)
		assert.False(t, updated.IsVerified)
	})

	t.Run("updating other fields keeps verification", func(t *testing.T) {
		existing := &Employer{
			ID:          uuid.New(),
			UserID:      uuid.MustParse(userID),
			CompanyName: "Safaricom PLC",
			IsVerified:  true,
		}
		var updated *Employer
		repo := &fakeRepo{
			findByUserFn: func(ctx context.Context, id string) (*Employer, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, e *Employer) error {
				updated = e
				return nil
			},
		}

		svc := NewService(repo)
		_, err := svc.UpsertMine(context.Background(), userID, UpsertEmployerRequest{
			CompanyName: "Safaricom PLC",
			Industry:    "Telecommunications",
		})

		assert.NoError(t, err)
		assert.True(t, updated.IsVerified)
	})
}
