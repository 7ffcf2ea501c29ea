package booth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/IdrisKulubi/huaweievent/internal/attendee"
	boothErrors "github.com/IdrisKulubi/huaweievent/internal/booth/errors"
	"github.com/IdrisKulubi/huaweievent/internal/employer"
)

type fakeRepo struct {
	createBoothFn    func(ctx context.Context, b *Booth) error
	updateBoothFn    func(ctx context.Context, b *Booth) error
	findBoothByIDFn  func(ctx context.Context, id string) (*Booth, error)
	findByEmpEventFn func(ctx context.Context, employerID, eventID string) (*Booth, error)
	findByEventFn    func(ctx context.Context, eventID string) ([]Booth, error)
	createSlotsFn    func(ctx context.Context, slots []InterviewSlot) error
	findSlotByIDFn   func(ctx context.Context, id string) (*InterviewSlot, error)
	findSlotsBoothFn func(ctx context.Context, boothID string) ([]InterviewSlot, error)
	findSlotsJSFn    func(ctx context.Context, jobSeekerID string) ([]InterviewSlot, error)
	bookSlotFn       func(ctx context.Context, slotID, jobSeekerID string) (bool, error)
	releaseSlotFn    func(ctx context.Context, slotID string) error
}

func (f *fakeRepo) CreateBooth(ctx context.Context, b *Booth) error { return f.createBoothFn(ctx, b) }
func (f *fakeRepo) UpdateBooth(ctx context.Context, b *Booth) error { return f.updateBoothFn(ctx, b) }
func (f *fakeRepo) FindBoothByID(ctx context.Context, id string) (*Booth, error) {
	return f.findBoothByIDFn(ctx, id)
}
func (f *fakeRepo) FindBoothByEmployerAndEvent(ctx context.Context, employerID, eventID string) (*Booth, error) {
	return f.findByEmpEventFn(ctx, employerID, eventID)
}
func (f *fakeRepo) FindBoothsByEvent(ctx context.Context, eventID string) ([]Booth, error) {
	return f.findByEventFn(ctx, eventID)
}
func (f *fakeRepo) CreateSlots(ctx context.Context, slots []InterviewSlot) error {
	return f.createSlotsFn(ctx, slots)
}
func (f *fakeRepo) FindSlotByID(ctx context.Context, id string) (*InterviewSlot, error) {
	return f.findSlotByIDFn(ctx, id)
}
func (f *fakeRepo) FindSlotsByBooth(ctx context.Context, boothID string) ([]InterviewSlot, error) {
	return f.findSlotsBoothFn(ctx, boothID)
}
func (f *fakeRepo) FindSlotsByJobSeeker(ctx context.Context, jobSeekerID string) ([]InterviewSlot, error) {
	return f.findSlotsJSFn(ctx, jobSeekerID)
}
func (f *fakeRepo) BookSlot(ctx context.Context, slotID, jobSeekerID string) (bool, error) {
	return f.bookSlotFn(ctx, slotID, jobSeekerID)
}
func (f *fakeRepo) ReleaseSlot(ctx context.Context, slotID string) error {
	return f.releaseSlotFn(ctx, slotID)
}

type fakeEmployers struct {
	fn func(ctx context.Context, userID string) (*employer.Employer, error)
}

func (f *fakeEmployers) FindByUser(ctx context.Context, userID string) (*employer.Employer, error) {
	return f.fn(ctx, userID)
}

type fakeSeekers struct {
	fn func(ctx context.Context, userID string) (*attendee.JobSeeker, error)
}

func (f *fakeSeekers) FindByUser(ctx context.Context, userID string) (*attendee.JobSeeker, error) {
	return f.fn(ctx, userID)
}

func TestUpsertMyBooth(t *testing.T) {
	userID := uuid.NewString()
	eventID := uuid.NewString()
	emp := &employer.Employer{ID: uuid.New(), CompanyName: "Safaricom PLC"}
	employers := &fakeEmployers{
		fn: func(ctx context.Context, id string) (*employer.Employer, error) { return emp, nil },
	}

	t.Run("creates a booth on first save", func(t *testing.T) {
		var created *Booth
		repo := &fakeRepo{
			findByEmpEventFn: func(ctx context.Context, employerID, evID string) (*Booth, error) {
				return nil, boothErrors.ErrBoothNotFound
			},
			createBoothFn: func(ctx context.Context, b *Booth) error {
				created = b
				return nil
			},
		}

		svc := NewService(repo, employers, &fakeSeekers{})
		resp, err := svc.UpsertMyBooth(context.Background(), userID, UpsertBoothRequest{
			EventID:     eventID,
			BoothNumber: "B12",
		})

		assert.NoError(t, err)
		assert.Equal(t, emp.ID, created.EmployerID)
		assert.Equal(t, "standard", created.Size)
		assert.Equal(t, "B12", resp.BoothNumber)
	})

	t.Run("updates the existing booth on later saves", func(t *testing.T) {
		existing := &Booth{ID: uuid.New(), EmployerID: emp.ID, BoothNumber: "B12"}
		var updated *Booth
		repo := &fakeRepo{
			findByEmpEventFn: func(ctx context.Context, employerID, evID string) (*Booth, error) {
				return existing, nil
			},
			updateBoothFn: func(ctx context.Context, b *Booth) error {
				updated = b
				return nil
			},
		}

		svc := NewService(repo, employers, &fakeSeekers{})
		_, err := svc.UpsertMyBooth(context.Background(), userID, UpsertBoothRequest{
			EventID:     eventID,
			BoothNumber: "B14",
			Location:    "Hall A",
		})

		assert.NoError(t, err)
		assert.Equal(t, existing.ID, updated.ID)
		assert.Equal(t, "B14", updated.BoothNumber)
		assert.Equal(t, "Hall A", updated.Location)
	})
}

func TestCreateSlots(t *testing.T) {
	userID := uuid.NewString()
	emp := &employer.Employer{ID: uuid.New()}
	booth := &Booth{ID: uuid.New(), EmployerID: emp.ID}
	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	t.Run("publishes slots on own booth", func(t *testing.T) {
		var created []InterviewSlot
		repo := &fakeRepo{
			findBoothByIDFn: func(ctx context.Context, id string) (*Booth, error) { return booth, nil },
			createSlotsFn: func(ctx context.Context, slots []InterviewSlot) error {
				created = slots
				return nil
			},
		}
		employers := &fakeEmployers{
			fn: func(ctx context.Context, id string) (*employer.Employer, error) { return emp, nil },
		}

		svc := NewService(repo, employers, &fakeSeekers{})
		resp, err := svc.CreateSlots(context.Background(), userID, booth.ID.String(), CreateSlotsRequest{
			Slots: []SlotInput{
				{StartTime: start, EndTime: start.Add(30 * time.Minute)},
				{StartTime: start.Add(30 * time.Minute), EndTime: start.Add(time.Hour)},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, created, 2)
		assert.Len(t, resp, 2)
		assert.Equal(t, SlotAvailable, created[0].Status)
	})

	t.Run("refuses another employer's booth", func(t *testing.T) {
		repo := &fakeRepo{
			findBoothByIDFn: func(ctx context.Context, id string) (*Booth, error) { return booth, nil },
		}
		employers := &fakeEmployers{
			fn: func(ctx context.Context, id string) (*employer.Employer, error) {
				return &employer.Employer{ID: uuid.New()}, nil
			},
		}

		svc := NewService(repo, employers, &fakeSeekers{})
		_, err := svc.CreateSlots(context.Background(), userID, booth.ID.String(), CreateSlotsRequest{
			Slots: []SlotInput{{StartTime: start, EndTime: start.Add(30 * time.Minute)}},
		})
		assert.ErrorIs(t, err, boothErrors.ErrNotBoothOwner)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		repo := &fakeRepo{
			findBoothByIDFn: func(ctx context.Context, id string) (*Booth, error) { return booth, nil },
		}
		employers := &fakeEmployers{
			fn: func(ctx context.Context, id string) (*employer.Employer, error) { return emp, nil },
		}

		svc := NewService(repo, employers, &fakeSeekers{})
		_, err := svc.CreateSlots(context.Background(), userID, booth.ID.String(), CreateSlotsRequest{
			Slots: []SlotInput{{StartTime: start, EndTime: start.Add(-time.Minute)}},
		})
		assert.ErrorIs(t, err, boothErrors.ErrInvalidSlotWindow)
	})
}

func TestBookSlot(t *testing.T) {
	userID := uuid.NewString()
	js := &attendee.JobSeeker{ID: uuid.New()}
	seekers := &fakeSeekers{
		fn: func(ctx context.Context, id string) (*attendee.JobSeeker, error) { return js, nil },
	}
	slotID := uuid.New()

	t.Run("books an available slot", func(t *testing.T) {
		jsID := js.ID
		repo := &fakeRepo{
			findSlotByIDFn: func(ctx context.Context, id string) (*InterviewSlot, error) {
				return &InterviewSlot{ID: slotID, Status: SlotBooked, JobSeekerID: &jsID}, nil
			},
			bookSlotFn: func(ctx context.Context, id, jobSeekerID string) (bool, error) {
				assert.Equal(t, js.ID.String(), jobSeekerID)
				return true, nil
			},
		}

		svc := NewService(repo, &fakeEmployers{}, seekers)
		resp, err := svc.BookSlot(context.Background(), userID, slotID.String())
		assert.NoError(t, err)
		assert.Equal(t, SlotBooked, resp.Status)
	})

	t.Run("loses a race with a conflict", func(t *testing.T) {
		repo := &fakeRepo{
			findSlotByIDFn: func(ctx context.Context, id string) (*InterviewSlot, error) {
				return &InterviewSlot{ID: slotID, Status: SlotAvailable}, nil
			},
			bookSlotFn: func(ctx context.Context, id, jobSeekerID string) (bool, error) {
				return false, nil
			},
		}

		svc := NewService(repo, &fakeEmployers{}, seekers)
		_, err := svc.BookSlot(context.Background(), userID, slotID.String())
		assert.ErrorIs(t, err, boothErrors.ErrSlotAlreadyBooked)
	})

	t.Run("only the booker can cancel", func(t *testing.T) {
		otherID := uuid.New()
		repo := &fakeRepo{
			findSlotByIDFn: func(ctx context.Context, id string) (*InterviewSlot, error) {
				return &InterviewSlot{ID: slotID, Status: SlotBooked, JobSeekerID: &otherID}, nil
			},
		}

		svc := NewService(repo, &fakeEmployers{}, seekers)
		err := svc.CancelBooking(context.Background(), userID, slotID.String())
		assert.ErrorIs(t, err, boothErrors.ErrNotSlotOwner)
	})
}
