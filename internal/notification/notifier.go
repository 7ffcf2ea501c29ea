package notification

import "context"

// EventDetails is embedded into welcome messages so attendees know where
// their PIN and ticket are valid.
type EventDetails struct {
	Name  string
	Date  string
	Venue string
}

type WelcomeEmail struct {
	Email        string
	Name         string
	Pin          string
	TicketNumber string
	Event        EventDetails
}

type WelcomeSMS struct {
	PhoneNumber  string
	Name         string
	Pin          string
	TicketNumber string
}

// Notifier delivers transactional messages. Provider integrations (email/SMS
// gateways) are external collaborators; implementations here stop at the
// delivery boundary.
type Notifier interface {
	SendWelcomeEmail(ctx context.Context, msg WelcomeEmail) error
	SendWelcomeSMS(ctx context.Context, msg WelcomeSMS) error
}
