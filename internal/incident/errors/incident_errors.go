package errors

import (
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrIncidentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Incident not found",
		http.StatusNotFound,
	)

	ErrInvalidIncidentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid incident id",
		http.StatusBadRequest,
	)

	ErrInvalidIncidentStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Incident status must be one of: open, investigating, resolved",
		http.StatusBadRequest,
	)

	ErrAlreadyResolved = apperror.New(
		apperror.CodeConflict,
		"This incident has already been resolved",
		http.StatusConflict,
	)
)
