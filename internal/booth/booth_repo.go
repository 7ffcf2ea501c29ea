package booth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	boothErrors "github.com/IdrisKulubi/huaweievent/internal/booth/errors"
)

type Repository interface {
	CreateBooth(ctx context.Context, b *Booth) error
	UpdateBooth(ctx context.Context, b *Booth) error
	FindBoothByID(ctx context.Context, id string) (*Booth, error)
	FindBoothByEmployerAndEvent(ctx context.Context, employerID, eventID string) (*Booth, error)
	FindBoothsByEvent(ctx context.Context, eventID string) ([]Booth, error)
	CreateSlots(ctx context.Context, slots []InterviewSlot) error
	FindSlotByID(ctx context.Context, id string) (*InterviewSlot, error)
	FindSlotsByBooth(ctx context.Context, boothID string) ([]InterviewSlot, error)
	FindSlotsByJobSeeker(ctx context.Context, jobSeekerID string) ([]InterviewSlot, error)
	// BookSlot flips an available slot to booked. The status guard in
	// the WHERE clause makes concurrent bookings lose cleanly instead
	// of double-booking.
	BookSlot(ctx context.Context, slotID, jobSeekerID string) (bool, error)
	ReleaseSlot(ctx context.Context, slotID string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateBooth(ctx context.Context, b *Booth) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *gormRepository) UpdateBooth(ctx context.Context, b *Booth) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *gormRepository) FindBoothByID(ctx context.Context, id string) (*Booth, error) {
	var b Booth
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, boothErrors.ErrBoothNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) FindBoothByEmployerAndEvent(ctx context.Context, employerID, eventID string) (*Booth, error) {
	var b Booth
	err := r.db.WithContext(ctx).
		First(&b, "employer_id = ? AND event_id = ?", employerID, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, boothErrors.ErrBoothNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) FindBoothsByEvent(ctx context.Context, eventID string) ([]Booth, error) {
	var list []Booth
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("booth_number ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) CreateSlots(ctx context.Context, slots []InterviewSlot) error {
	return r.db.WithContext(ctx).Create(&slots).Error
}

func (r *gormRepository) FindSlotByID(ctx context.Context, id string) (*InterviewSlot, error) {
	var s InterviewSlot
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, boothErrors.ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) FindSlotsByBooth(ctx context.Context, boothID string) ([]InterviewSlot, error) {
	var list []InterviewSlot
	err := r.db.WithContext(ctx).
		Where("booth_id = ?", boothID).
		Order("start_time ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) FindSlotsByJobSeeker(ctx context.Context, jobSeekerID string) ([]InterviewSlot, error) {
	var list []InterviewSlot
	err := r.db.WithContext(ctx).
		Where("job_seeker_id = ?", jobSeekerID).
		Order("start_time ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *gormRepository) BookSlot(ctx context.Context, slotID, jobSeekerID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Exec(`UPDATE interview_slots
			SET job_seeker_id = $1, status = $2, updated_at = now()
			WHERE id = $3 AND status = $4`,
			jobSeekerID, SlotBooked, slotID, SlotAvailable)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormRepository) ReleaseSlot(ctx context.Context, slotID string) error {
	return r.db.WithContext(ctx).
		Exec(`UPDATE interview_slots
			SET job_seeker_id = NULL, status = $1, updated_at = now()
			WHERE id = $2`,
			SlotAvailable, slotID).Error
}
