package incident

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	incidentErrors "github.com/IdrisKulubi/huaweievent/internal/incident/errors"
)

type fakeRepo struct {
	createFn   func(ctx context.Context, i *SecurityIncident) error
	updateFn   func(ctx context.Context, i *SecurityIncident) error
	findByIDFn func(ctx context.Context, id string) (*SecurityIncident, error)
	findAllFn  func(ctx context.Context, filter Filter) ([]SecurityIncident, error)
}

func (f *fakeRepo) Create(ctx context.Context, i *SecurityIncident) error { return f.createFn(ctx, i) }
func (f *fakeRepo) Update(ctx context.Context, i *SecurityIncident) error { return f.updateFn(ctx, i) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*SecurityIncident, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter Filter) ([]SecurityIncident, error) {
	return f.findAllFn(ctx, filter)
}

func TestReport(t *testing.T) {
	reporter := uuid.NewString()

	t.Run("files an open incident", func(t *testing.T) {
		var created *SecurityIncident
		repo := &fakeRepo{
			createFn: func(ctx context.Context, i *SecurityIncident) error {
				created = i
				return nil
			},
		}

		svc := NewService(repo)
		resp, err := svc.Report(context.Background(), reporter, ReportIncidentRequest{
			IncidentType: "suspicious_activity",
			Severity:     "medium",
			Location:     "Main gate",
			Description:  "Attendee repeatedly trying PINs at the entrance queue",
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusOpen, created.Status)
		assert.Equal(t, reporter, resp.ReportedBy)
		assert.Nil(t, created.ResolvedAt)
	})

	t.Run("rejects a malformed reporter id", func(t *testing.T) {
		svc := NewService(&fakeRepo{})
		_, err := svc.Report(context.Background(), "guard-7", ReportIncidentRequest{
			IncidentType: "other",
			Severity:     "low",
			Description:  "Lost badge reported at the info desk",
		})
		assert.Error(t, err)
	})
}

func TestUpdateIncidentStatus(t *testing.T) {
	id := uuid.New()
	admin := uuid.NewString()

	t.Run("resolving stamps resolver and time", func(t *testing.T) {
		var updated *SecurityIncident
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, _ string) (*SecurityIncident, error) {
				return &SecurityIncident{ID: id, Status: StatusInvestigating}, nil
			},
			updateFn: func(ctx context.Context, i *SecurityIncident) error {
				updated = i
				return nil
			},
		}

		svc := NewService(repo)
		resp, err := svc.UpdateStatus(context.Background(), id.String(), admin, UpdateIncidentRequest{
			Status:      StatusResolved,
			ActionTaken: "Escorted both parties out, statements taken",
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusResolved, updated.Status)
		assert.NotNil(t, updated.ResolvedAt)
		assert.Equal(t, admin, resp.ResolvedBy)
	})

	t.Run("a resolved incident cannot be reopened", func(t *testing.T) {
		resolvedAt := time.Now()
		repo := &fakeRepo{
			findByIDFn: func(ctx context.Context, _ string) (*SecurityIncident, error) {
				return &SecurityIncident{ID: id, Status: StatusResolved, ResolvedAt: &resolvedAt}, nil
			},
		}

		svc := NewService(repo)
		_, err := svc.UpdateStatus(context.Background(), id.String(), admin, UpdateIncidentRequest{
			Status: StatusOpen,
		})
		assert.ErrorIs(t, err, incidentErrors.ErrAlreadyResolved)
	})
}
