package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeEmailBody(t *testing.T) {
	body := welcomeEmailBody(WelcomeEmail{
		Email:        "jane@example.com",
		Name:         "Jane Doe",
		Pin:          "123456",
		TicketNumber: "HCS-2024-ABCDEFGH",
		Event: EventDetails{
			Name:  "Spring Fair",
			Date:  "December 15-16, 2024",
			Venue: "KICC, Nairobi",
		},
	})

	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "HCS-2024-ABCDEFGH")
	assert.Contains(t, body, "Spring Fair")
	assert.Contains(t, body, "KICC, Nairobi")
}

func TestWelcomeSMSBody(t *testing.T) {
	body := welcomeSMSBody(WelcomeSMS{
		PhoneNumber:  "+254700000000",
		Name:         "Jane",
		Pin:          "654321",
		TicketNumber: "HCS-2025-11112222",
	})

	assert.Contains(t, body, "654321")
	assert.Contains(t, body, "HCS-2025-11112222")
}
