package attendee

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePin(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		pin, err := GeneratePin()
		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), pin)
		seen[pin] = true
	}
	// 50 draws from a million values collide with negligible probability
	assert.Greater(t, len(seen), 45)
}

func TestGenerateTicketNumber(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	ticket, err := GenerateTicketNumber(now)
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^HCS-2026-[A-Z0-9]{8}$`), ticket)
}
