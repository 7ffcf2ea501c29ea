package booth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/attendee"
	boothErrors "github.com/IdrisKulubi/huaweievent/internal/booth/errors"
	"github.com/IdrisKulubi/huaweievent/internal/employer"
	employerErrors "github.com/IdrisKulubi/huaweievent/internal/employer/errors"
	eventErrors "github.com/IdrisKulubi/huaweievent/internal/event/errors"
	"github.com/IdrisKulubi/huaweievent/internal/shared/contextutil"
)

// EmployerDirectory resolves the employer profile behind a logged-in
// employer account.
type EmployerDirectory interface {
	FindByUser(ctx context.Context, userID string) (*employer.Employer, error)
}

// SeekerDirectory resolves the attendee profile behind a logged-in job
// seeker account.
type SeekerDirectory interface {
	FindByUser(ctx context.Context, userID string) (*attendee.JobSeeker, error)
}

type Service interface {
	UpsertMyBooth(ctx context.Context, userID string, req UpsertBoothRequest) (*BoothResponse, error)
	GetBoothsByEvent(ctx context.Context, eventID string) ([]BoothResponse, error)
	GetBoothByID(ctx context.Context, id string) (*BoothResponse, error)
	CreateSlots(ctx context.Context, userID, boothID string, req CreateSlotsRequest) ([]SlotResponse, error)
	GetSlotsByBooth(ctx context.Context, boothID string) ([]SlotResponse, error)
	GetMyBookings(ctx context.Context, userID string) ([]SlotResponse, error)
	BookSlot(ctx context.Context, userID, slotID string) (*SlotResponse, error)
	CancelBooking(ctx context.Context, userID, slotID string) error
}

type service struct {
	repo      Repository
	employers EmployerDirectory
	seekers   SeekerDirectory
}

func NewService(repo Repository, employers EmployerDirectory, seekers SeekerDirectory) Service {
	return &service{repo: repo, employers: employers, seekers: seekers}
}

// UpsertMyBooth creates or updates the caller's booth for the given
// event. One booth per employer per event.
func (s *service) UpsertMyBooth(ctx context.Context, userID string, req UpsertBoothRequest) (*BoothResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}
	emp, err := s.employers.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	size := req.Size
	if size == "" {
		size = "standard"
	}
	now := time.Now().UTC()

	existing, err := s.repo.FindBoothByEmployerAndEvent(ctx, emp.ID.String(), req.EventID)
	if err != nil && !errors.Is(err, boothErrors.ErrBoothNotFound) {
		return nil, err
	}

	if existing == nil {
		b := &Booth{
			ID:                  uuid.New(),
			EmployerID:          emp.ID,
			EventID:             eventID,
			BoothNumber:         req.BoothNumber,
			Location:            req.Location,
			Size:                size,
			Equipment:           req.Equipment,
			SpecialRequirements: req.SpecialRequirements,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := s.repo.CreateBooth(ctx, b); err != nil {
			return nil, mapBoothConflict(err)
		}

		contextutil.GetLogger(ctx).Info("booth created",
			zap.String("booth_id", b.ID.String()),
			zap.String("employer_id", emp.ID.String()),
			zap.String("booth_number", b.BoothNumber),
		)
		resp := toBoothResponse(b)
		return &resp, nil
	}

	existing.BoothNumber = req.BoothNumber
	existing.Location = req.Location
	existing.Size = size
	existing.Equipment = req.Equipment
	existing.SpecialRequirements = req.SpecialRequirements
	existing.UpdatedAt = now
	if err := s.repo.UpdateBooth(ctx, existing); err != nil {
		return nil, mapBoothConflict(err)
	}
	resp := toBoothResponse(existing)
	return &resp, nil
}

func (s *service) GetBoothsByEvent(ctx context.Context, eventID string) ([]BoothResponse, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return nil, eventErrors.ErrInvalidEventID
	}
	list, err := s.repo.FindBoothsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]BoothResponse, 0, len(list))
	for i := range list {
		out = append(out, toBoothResponse(&list[i]))
	}
	return out, nil
}

func (s *service) GetBoothByID(ctx context.Context, id string) (*BoothResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, boothErrors.ErrInvalidBoothID
	}
	b, err := s.repo.FindBoothByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBoothResponse(b)
	return &resp, nil
}

// CreateSlots publishes interview windows on the caller's own booth.
func (s *service) CreateSlots(ctx context.Context, userID, boothID string, req CreateSlotsRequest) ([]SlotResponse, error) {
	if _, err := uuid.Parse(boothID); err != nil {
		return nil, boothErrors.ErrInvalidBoothID
	}

	b, err := s.repo.FindBoothByID(ctx, boothID)
	if err != nil {
		return nil, err
	}
	emp, err := s.employers.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, employerErrors.ErrEmployerNotFound) {
			return nil, boothErrors.ErrNotBoothOwner
		}
		return nil, err
	}
	if b.EmployerID != emp.ID {
		return nil, boothErrors.ErrNotBoothOwner
	}

	now := time.Now().UTC()
	slots := make([]InterviewSlot, 0, len(req.Slots))
	for _, in := range req.Slots {
		if !in.EndTime.After(in.StartTime) {
			return nil, boothErrors.ErrInvalidSlotWindow
		}
		slots = append(slots, InterviewSlot{
			ID:              uuid.New(),
			BoothID:         b.ID,
			StartTime:       in.StartTime,
			EndTime:         in.EndTime,
			Status:          SlotAvailable,
			InterviewerName: in.InterviewerName,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	if err := s.repo.CreateSlots(ctx, slots); err != nil {
		return nil, err
	}

	contextutil.GetLogger(ctx).Info("interview slots created",
		zap.String("booth_id", b.ID.String()),
		zap.Int("count", len(slots)),
	)

	out := make([]SlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, toSlotResponse(&slots[i]))
	}
	return out, nil
}

func (s *service) GetSlotsByBooth(ctx context.Context, boothID string) ([]SlotResponse, error) {
	if _, err := uuid.Parse(boothID); err != nil {
		return nil, boothErrors.ErrInvalidBoothID
	}
	list, err := s.repo.FindSlotsByBooth(ctx, boothID)
	if err != nil {
		return nil, err
	}
	out := make([]SlotResponse, 0, len(list))
	for i := range list {
		out = append(out, toSlotResponse(&list[i]))
	}
	return out, nil
}

func (s *service) GetMyBookings(ctx context.Context, userID string) ([]SlotResponse, error) {
	js, err := s.seekers.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := s.repo.FindSlotsByJobSeeker(ctx, js.ID.String())
	if err != nil {
		return nil, err
	}
	out := make([]SlotResponse, 0, len(list))
	for i := range list {
		out = append(out, toSlotResponse(&list[i]))
	}
	return out, nil
}

// BookSlot claims an available slot for the caller. The conditional
// update in the repository decides races; the loser gets a conflict.
func (s *service) BookSlot(ctx context.Context, userID, slotID string) (*SlotResponse, error) {
	if _, err := uuid.Parse(slotID); err != nil {
		return nil, boothErrors.ErrInvalidSlotID
	}
	js, err := s.seekers.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindSlotByID(ctx, slotID); err != nil {
		return nil, err
	}

	booked, err := s.repo.BookSlot(ctx, slotID, js.ID.String())
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, boothErrors.ErrSlotAlreadyBooked
	}

	contextutil.GetLogger(ctx).Info("interview slot booked",
		zap.String("slot_id", slotID),
		zap.String("job_seeker_id", js.ID.String()),
	)

	slot, err := s.repo.FindSlotByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	resp := toSlotResponse(slot)
	return &resp, nil
}

func (s *service) CancelBooking(ctx context.Context, userID, slotID string) error {
	if _, err := uuid.Parse(slotID); err != nil {
		return boothErrors.ErrInvalidSlotID
	}
	js, err := s.seekers.FindByUser(ctx, userID)
	if err != nil {
		return err
	}
	slot, err := s.repo.FindSlotByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.Status != SlotBooked || slot.JobSeekerID == nil {
		return boothErrors.ErrSlotNotBooked
	}
	if *slot.JobSeekerID != js.ID {
		return boothErrors.ErrNotSlotOwner
	}

	if err := s.repo.ReleaseSlot(ctx, slotID); err != nil {
		return err
	}
	contextutil.GetLogger(ctx).Info("interview booking cancelled",
		zap.String("slot_id", slotID),
		zap.String("job_seeker_id", js.ID.String()),
	)
	return nil
}

func mapBoothConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return boothErrors.ErrBoothNumberTaken
	}
	return err
}
