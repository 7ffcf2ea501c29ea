package attendee

import "time"

type CreateProfileRequest struct {
	Name               string     `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber        string     `json:"phone_number" validate:"required,min=7,max=20"`
	Bio                string     `json:"bio" validate:"max=2000"`
	CVURL              string     `json:"cv_url" validate:"omitempty,url"`
	Skills             string     `json:"skills" validate:"max=1000"`
	Experience         string     `json:"experience" validate:"max=2000"`
	Education          string     `json:"education" validate:"max=2000"`
	InterestCategories string     `json:"interest_categories" validate:"max=500"`
	LinkedinURL        string     `json:"linkedin_url" validate:"omitempty,url"`
	PortfolioURL       string     `json:"portfolio_url" validate:"omitempty,url"`
	ExpectedSalary     string     `json:"expected_salary" validate:"max=100"`
	AvailableFrom      *time.Time `json:"available_from"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ProfileResponse is the attendee's own view. The PIN is only returned
// from the operations that mint it.
type ProfileResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Bio                string     `json:"bio"`
	CVURL              string     `json:"cv_url"`
	Skills             string     `json:"skills"`
	Experience         string     `json:"experience"`
	Education          string     `json:"education"`
	InterestCategories string     `json:"interest_categories"`
	LinkedinURL        string     `json:"linkedin_url"`
	PortfolioURL       string     `json:"portfolio_url"`
	ExpectedSalary     string     `json:"expected_salary"`
	AvailableFrom      *time.Time `json:"available_from"`
	TicketNumber       string     `json:"ticket_number"`
	RegistrationStatus string     `json:"registration_status"`
	PinExpiresAt       *time.Time `json:"pin_expires_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

type CredentialsResponse struct {
	Profile      ProfileResponse `json:"profile"`
	Pin          string          `json:"pin"`
	PinExpiresAt *time.Time      `json:"pin_expires_at"`
}

func toProfileResponse(js *JobSeeker) ProfileResponse {
	return ProfileResponse{
		ID:                 js.ID.String(),
		UserID:             js.UserID.String(),
		Bio:                js.Bio,
		CVURL:              js.CVURL,
		Skills:             js.Skills,
		Experience:         js.Experience,
		Education:          js.Education,
		InterestCategories: js.InterestCategories,
		LinkedinURL:        js.LinkedinURL,
		PortfolioURL:       js.PortfolioURL,
		ExpectedSalary:     js.ExpectedSalary,
		AvailableFrom:      js.AvailableFrom,
		TicketNumber:       js.TicketNumber,
		RegistrationStatus: js.RegistrationStatus,
		PinExpiresAt:       js.PinExpiresAt,
		CreatedAt:          js.CreatedAt,
	}
}
