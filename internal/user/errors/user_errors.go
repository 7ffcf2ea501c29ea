package usererrors

import (
	"net/http"

	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown role",
		http.StatusBadRequest,
	)

	ErrInvalidPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid password",
		http.StatusBadRequest,
	)

	ErrSecurityProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Security personnel profile not found",
		http.StatusNotFound,
	)
)
