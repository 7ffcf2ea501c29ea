package checkin

import "time"

type VerifyPinRequest struct {
	Pin string `json:"pin" validate:"required"`
}

type VerifyTicketRequest struct {
	TicketNumber string `json:"ticket_number" validate:"required"`
}

// VerificationResult is what the gate screen renders after a successful
// verification. Failures travel as errors, not as a result with
// Success=false.
type VerificationResult struct {
	Success             bool            `json:"success"`
	AlreadyCheckedIn    bool            `json:"already_checked_in"`
	PreviousCheckInTime *time.Time      `json:"previous_check_in_time,omitempty"`
	Message             string          `json:"message"`
	Attendee            AttendeeSummary `json:"attendee"`
	Record              RecordSummary   `json:"record"`
}

type AttendeeSummary struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Pin                string `json:"pin"`
	TicketNumber       string `json:"ticket_number"`
	RegistrationStatus string `json:"registration_status"`
}

type RecordSummary struct {
	ID                 string    `json:"id"`
	EventID            string    `json:"event_id"`
	CheckInTime        time.Time `json:"check_in_time"`
	VerificationMethod string    `json:"verification_method"`
	Notes              string    `json:"notes,omitempty"`
}

type AttendanceRecordResponse struct {
	ID                 string    `json:"id"`
	JobSeekerID        string    `json:"job_seeker_id"`
	EventID            string    `json:"event_id"`
	CheckedInBy        string    `json:"checked_in_by"`
	CheckInTime        time.Time `json:"check_in_time"`
	VerificationMethod string    `json:"verification_method"`
	Status             string    `json:"status"`
	Notes              string    `json:"notes"`
}

func toRecordResponse(r *AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:                 r.ID.String(),
		JobSeekerID:        r.JobSeekerID.String(),
		EventID:            r.EventID.String(),
		CheckedInBy:        r.CheckedInBy.String(),
		CheckInTime:        r.CheckInTime,
		VerificationMethod: r.VerificationMethod,
		Status:             r.Status,
		Notes:              r.Notes,
	}
}
