package events

import "time"

const AttendeeRegisteredTopic = "summit.attendee.registered.v1"

// AttendeeRegisteredEvent fans out to the welcome email/SMS consumer. It
// carries the check-in credentials so delivery needs no extra lookup.
type AttendeeRegisteredEvent struct {
	EventType    string    `json:"event_type"`
	AttendeeID   string    `json:"attendee_id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Pin          string    `json:"pin"`
	TicketNumber string    `json:"ticket_number"`
	OccurredAt   time.Time `json:"occurred_at"`
}
