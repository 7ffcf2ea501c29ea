package errors

import (
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Event not found",
		http.StatusNotFound,
	)

	ErrNoActiveEvent = apperror.New(
		apperror.CodeNotFound,
		"No active event is currently running",
		http.StatusNotFound,
	)

	ErrInvalidEventID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid event id",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Event end date must be after the start date",
		http.StatusBadRequest,
	)
)
