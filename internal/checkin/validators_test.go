package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePinFormat(t *testing.T) {
	tests := []struct {
		name  string
		pin   string
		valid bool
	}{
		{"six digits", "123456", true},
		{"leading zeros", "000042", true},
		{"too short", "12345", false},
		{"too long", "1234567", false},
		{"contains letter", "12345a", false},
		{"inner space", "123 56", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePinFormat(tt.pin))
		})
	}
}

func TestNormalizePin(t *testing.T) {
	assert.True(t, ValidatePinFormat(NormalizePin("  123456  ")))
}

func TestValidateTicketFormat(t *testing.T) {
	tests := []struct {
		name   string
		ticket string
		valid  bool
	}{
		{"issued shape", "HCS-2026-K7M2P9QA", true},
		{"longer prefix", "SUMMIT-2026-ABCD1234", true},
		{"two digit year", "HCS-26-K7M2P9QA", false},
		{"short suffix", "HCS-2026-K7M2P9Q", false},
		{"long suffix", "HCS-2026-K7M2P9QAB", false},
		{"digit prefix", "123-2026-ABCDEFGH", false},
		{"lowercase raw", "hcs-2026-k7m2p9qa", false},
		{"missing parts", "HCS-2026", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateTicketFormat(tt.ticket))
		})
	}
}

func TestNormalizeTicket(t *testing.T) {
	assert.Equal(t, "HCS-2026-K7M2P9QA", NormalizeTicket("  hcs-2026-k7m2p9qa "))
	assert.True(t, ValidateTicketFormat(NormalizeTicket("hcs-2026-k7m2p9qa")))
}
