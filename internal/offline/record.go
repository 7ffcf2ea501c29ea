package offline

import "time"

const (
	// StatusPendingSync marks records captured while the station had no
	// connectivity. They stay pending until staff export the queue and
	// reconcile it at the registration desk; nothing replays them
	// automatically.
	StatusPendingSync = "pending_sync"

	MethodPin    = "pin"
	MethodTicket = "ticket_number"
)

// Record is one verification captured while offline. It holds the raw
// input so the desk can re-run the verification later.
type Record struct {
	ID          string    `json:"id"`
	BadgeNumber string    `json:"badge_number"`
	Method      string    `json:"method"`
	Value       string    `json:"value"`
	VerifiedBy  string    `json:"verified_by"`
	CapturedAt  time.Time `json:"captured_at"`
	Status      string    `json:"status"`
}
