package rbacerrors

import (
	"go-resto/internal/shared/apperror"
	"net/http"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee profile not found",
		http.StatusNotFound,
	)
)
