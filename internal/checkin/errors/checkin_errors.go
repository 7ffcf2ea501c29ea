package errors

import (
	"fmt"
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrInvalidPinFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid PIN format. The PIN is exactly 6 digits.",
		http.StatusBadRequest,
	)

	ErrInvalidTicketFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ticket number format. Expected something like HCS-2026-K7M2P9QA.",
		http.StatusBadRequest,
	)

	ErrPinNotFound = apperror.New(
		apperror.CodeNotFound,
		"PIN not found. Please check the PIN and try again.",
		http.StatusNotFound,
	)

	ErrTicketNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ticket number not found. Please check the ticket and try again.",
		http.StatusNotFound,
	)

	ErrPinExpired = apperror.New(
		apperror.CodeForbidden,
		"This PIN has expired. Ask the attendee to regenerate it from their profile.",
		http.StatusForbidden,
	)

	ErrNoActiveEvent = apperror.New(
		apperror.CodeConflict,
		"No active event is currently running. Check-in is unavailable.",
		http.StatusConflict,
	)

	ErrVerificationFailed = apperror.New(
		apperror.CodeInternalError,
		"Verification failed. Please try again.",
		http.StatusInternalServerError,
	)
)

// NotApproved reports the attendee's actual registration status so gate
// staff can route them to the right desk.
func NotApproved(status string) *apperror.AppError {
	return apperror.New(
		apperror.CodeForbidden,
		fmt.Sprintf("Registration status is '%s'. The attendee must be approved before check-in.", status),
		http.StatusForbidden,
	)
}
