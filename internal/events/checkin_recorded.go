package events

import "time"

const CheckInRecordedTopic = "summit.checkin.recorded.v1"

type CheckInRecordedEvent struct {
	EventType          string    `json:"event_type"`
	AttendanceRecordID string    `json:"attendance_record_id"`
	AttendeeID         string    `json:"attendee_id"`
	EventID            string    `json:"event_id"`
	VerifiedBy         string    `json:"verified_by"`
	Method             string    `json:"method"`
	AlreadyCheckedIn   bool      `json:"already_checked_in"`
	OccurredAt         time.Time `json:"occurred_at"`
}
