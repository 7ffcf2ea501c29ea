package errors

import (
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrEmployerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employer profile not found",
		http.StatusNotFound,
	)

	ErrEmployerExists = apperror.New(
		apperror.CodeConflict,
		"An employer profile already exists for this account",
		http.StatusConflict,
	)

	ErrInvalidEmployerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employer id",
		http.StatusBadRequest,
	)
)
