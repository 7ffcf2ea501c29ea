package errors

import (
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrBoothNotFound = apperror.New(
		apperror.CodeNotFound,
		"Booth not found",
		http.StatusNotFound,
	)

	ErrSlotNotFound = apperror.New(
		apperror.CodeNotFound,
		"Interview slot not found",
		http.StatusNotFound,
	)

	ErrInvalidBoothID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid booth id",
		http.StatusBadRequest,
	)

	ErrInvalidSlotID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid interview slot id",
		http.StatusBadRequest,
	)

	ErrBoothNumberTaken = apperror.New(
		apperror.CodeConflict,
		"This booth number is already taken for the event",
		http.StatusConflict,
	)

	ErrSlotAlreadyBooked = apperror.New(
		apperror.CodeConflict,
		"This interview slot has already been booked",
		http.StatusConflict,
	)

	ErrSlotNotBooked = apperror.New(
		apperror.CodeConflict,
		"This interview slot is not booked",
		http.StatusConflict,
	)

	ErrNotSlotOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the attendee who booked the slot can cancel it",
		http.StatusForbidden,
	)

	ErrNotBoothOwner = apperror.New(
		apperror.CodeForbidden,
		"This booth belongs to a different employer",
		http.StatusForbidden,
	)

	ErrInvalidSlotWindow = apperror.New(
		apperror.CodeInvalidInput,
		"Interview slot end time must be after the start time",
		http.StatusBadRequest,
	)
)
