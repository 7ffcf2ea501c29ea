package checkin

import (
	"regexp"
	"strings"
)

var (
	pinPattern    = regexp.MustCompile(`^\d{6}$`)
	ticketPattern = regexp.MustCompile(`^[A-Z]+-\d{4}-[A-Z0-9]{8}$`)
)

// NormalizePin trims surrounding whitespace. PINs are digits only, so
// there is no case to fold.
func NormalizePin(pin string) string {
	return strings.TrimSpace(pin)
}

// NormalizeTicket uppercases the input so scanned or hand-typed tickets
// compare equal regardless of case.
func NormalizeTicket(ticket string) string {
	return strings.ToUpper(strings.TrimSpace(ticket))
}

// ValidatePinFormat reports whether the value is exactly 6 digits.
func ValidatePinFormat(pin string) bool {
	return pinPattern.MatchString(pin)
}

// ValidateTicketFormat reports whether the value matches the issued
// ticket shape: alphabetic prefix, 4 digit year, 8 character suffix.
// Callers normalize first; the pattern itself is strict uppercase.
func ValidateTicketFormat(ticket string) bool {
	return ticketPattern.MatchString(ticket)
}
