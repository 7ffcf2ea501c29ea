package employer

import "time"

type UpsertEmployerRequest struct {
	CompanyName  string `json:"company_name" validate:"required,min=2,max=200"`
	Industry     string `json:"industry" validate:"max=100"`
	Description  string `json:"description" validate:"max=5000"`
	Website      string `json:"website" validate:"omitempty,url"`
	LogoURL      string `json:"logo_url" validate:"omitempty,url"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"max=20"`
}

type EmployerResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CompanyName  string    `json:"company_name"`
	Industry     string    `json:"industry"`
	Description  string    `json:"description"`
	Website      string    `json:"website"`
	LogoURL      string    `json:"logo_url"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

func toEmployerResponse(e *Employer) EmployerResponse {
	return EmployerResponse{
		ID:           e.ID.String(),
		UserID:       e.UserID.String(),
		CompanyName:  e.CompanyName,
		Industry:     e.Industry,
		Description:  e.Description,
		Website:      e.Website,
		LogoURL:      e.LogoURL,
		ContactEmail: e.ContactEmail,
		ContactPhone: e.ContactPhone,
		IsVerified:   e.IsVerified,
		CreatedAt:    e.CreatedAt,
	}
}
