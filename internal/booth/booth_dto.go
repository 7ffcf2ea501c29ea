package booth

import "time"

type UpsertBoothRequest struct {
	EventID             string `json:"event_id" validate:"required,uuid"`
	BoothNumber         string `json:"booth_number" validate:"required,max=20"`
	Location            string `json:"location" validate:"max=100"`
	Size                string `json:"size" validate:"omitempty,oneof=standard large premium"`
	Equipment           string `json:"equipment" validate:"max=1000"`
	SpecialRequirements string `json:"special_requirements" validate:"max=1000"`
}

type CreateSlotsRequest struct {
	Slots []SlotInput `json:"slots" validate:"required,min=1,max=50,dive"`
}

type SlotInput struct {
	StartTime       time.Time `json:"start_time" validate:"required"`
	EndTime         time.Time `json:"end_time" validate:"required"`
	InterviewerName string    `json:"interviewer_name" validate:"max=100"`
}

type BoothResponse struct {
	ID                  string    `json:"id"`
	EmployerID          string    `json:"employer_id"`
	EventID             string    `json:"event_id"`
	BoothNumber         string    `json:"booth_number"`
	Location            string    `json:"location"`
	Size                string    `json:"size"`
	Equipment           string    `json:"equipment"`
	SpecialRequirements string    `json:"special_requirements"`
	CreatedAt           time.Time `json:"created_at"`
}

type SlotResponse struct {
	ID              string    `json:"id"`
	BoothID         string    `json:"booth_id"`
	JobSeekerID     string    `json:"job_seeker_id,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	InterviewerName string    `json:"interviewer_name"`
	Notes           string    `json:"notes"`
}

func toBoothResponse(b *Booth) BoothResponse {
	return BoothResponse{
		ID:                  b.ID.String(),
		EmployerID:          b.EmployerID.String(),
		EventID:             b.EventID.String(),
		BoothNumber:         b.BoothNumber,
		Location:            b.Location,
		Size:                b.Size,
		Equipment:           b.Equipment,
		SpecialRequirements: b.SpecialRequirements,
		CreatedAt:           b.CreatedAt,
	}
}

func toSlotResponse(s *InterviewSlot) SlotResponse {
	resp := SlotResponse{
		ID:              s.ID.String(),
		BoothID:         s.BoothID.String(),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Status:          s.Status,
		InterviewerName: s.InterviewerName,
		Notes:           s.Notes,
	}
	if s.JobSeekerID != nil {
		resp.JobSeekerID = s.JobSeekerID.String()
	}
	return resp
}
