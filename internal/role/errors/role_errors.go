package roleerrors

import (
	"go-resto/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Role already exists",
		http.StatusConflict,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role ID",
		http.StatusBadRequest,
	)
	ErrSalaryRequired   = apperror.RequiredField("salary_per_day")
	ErrNegativeSalary   = apperror.Invalid("salary_per_day must be zero or greater")
	ErrNoFieldsToUpdate = apperror.Invalid("No valid fields to update")
)
