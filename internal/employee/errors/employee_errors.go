package employeeerrors

import (
	"go-resto/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found",
		http.StatusNotFound,
	).WithDetails("No employee profile found for this user")
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists",
		http.StatusConflict,
	).WithDetails("An employee with this email already exists")
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.ErrInvalidReference.WithDetails("Role ID or Location ID does not exist")
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeValidation,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrConstraintViolation = apperror.New(
		apperror.CodeValidation,
		"Data violates constraints",
		http.StatusBadRequest,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeValidation,
		"No valid fields to update",
		http.StatusBadRequest,
	).WithDetails("At least one field must be provided for update")
)
