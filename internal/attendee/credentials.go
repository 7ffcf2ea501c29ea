package attendee

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// TicketPrefix identifies summit tickets on printed badges and emails.
	TicketPrefix = "HCS"

	ticketSuffixLength = 8
	ticketCharset      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// PinValidity is how long a verification PIN stays usable before
	// the attendee has to regenerate it.
	PinValidity = 24 * time.Hour
)

// GeneratePin returns a 6 digit numeric PIN. Leading zeros are allowed,
// so the result is formatted rather than converted from an integer range
// that would drop them.
func GeneratePin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate pin: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateTicketNumber returns a ticket in the form HCS-2026-K7M2P9QA:
// prefix, current year, and an 8 character alphanumeric suffix.
func GenerateTicketNumber(now time.Time) (string, error) {
	suffix := make([]byte, ticketSuffixLength)
	max := big.NewInt(int64(len(ticketCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate ticket number: %w", err)
		}
		suffix[i] = ticketCharset[n.Int64()]
	}
	return fmt.Sprintf("%s-%d-%s", TicketPrefix, now.Year(), string(suffix)), nil
}
