package event

import "time"

type CreateEventRequest struct {
	Name                 string     `json:"name" validate:"required,min=3,max=200"`
	Description          string     `json:"description" validate:"max=5000"`
	Venue                string     `json:"venue" validate:"required,max=200"`
	Address              string     `json:"address" validate:"max=500"`
	EventType            string     `json:"event_type" validate:"omitempty,oneof=career_fair job_expo networking"`
	StartDate            time.Time  `json:"start_date" validate:"required"`
	EndDate              time.Time  `json:"end_date" validate:"required"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	MaxAttendees         int        `json:"max_attendees" validate:"min=0"`
}

type UpdateEventRequest struct {
	Name                 *string    `json:"name" validate:"omitempty,min=3,max=200"`
	Description          *string    `json:"description"`
	Venue                *string    `json:"venue" validate:"omitempty,max=200"`
	Address              *string    `json:"address"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	MaxAttendees         *int       `json:"max_attendees" validate:"omitempty,min=0"`
}

type EventResponse struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Venue                string     `json:"venue"`
	Address              string     `json:"address"`
	EventType            string     `json:"event_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	MaxAttendees         int        `json:"max_attendees"`
	IsActive             bool       `json:"is_active"`
	CreatedAt            time.Time  `json:"created_at"`
}

func toEventResponse(e *Event) EventResponse {
	return EventResponse{
		ID:                   e.ID.String(),
		Name:                 e.Name,
		Description:          e.Description,
		Venue:                e.Venue,
		Address:              e.Address,
		EventType:            e.EventType,
		StartDate:            e.StartDate,
		EndDate:              e.EndDate,
		RegistrationDeadline: e.RegistrationDeadline,
		MaxAttendees:         e.MaxAttendees,
		IsActive:             e.IsActive,
		CreatedAt:            e.CreatedAt,
	}
}
