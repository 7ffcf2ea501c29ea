package errors

import (
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendee profile not found",
		http.StatusNotFound,
	)

	ErrProfileAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An attendee profile already exists for this account",
		http.StatusConflict,
	)

	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"User account not found",
		http.StatusNotFound,
	)

	ErrInvalidAttendeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendee id",
		http.StatusBadRequest,
	)

	ErrInvalidRegistrationStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Registration status must be one of: pending, approved, rejected",
		http.StatusBadRequest,
	)

	ErrCredentialGeneration = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate attendee credentials",
		http.StatusInternalServerError,
	)

	ErrPinCollision = apperror.New(
		apperror.CodeConflict,
		"Generated PIN is already in use, please retry",
		http.StatusConflict,
	)
)
