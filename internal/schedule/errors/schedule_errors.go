package scheduleerrors

import (
	"go-resto/internal/shared/apperror"
	"net/http"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift does not exist for this date",
		http.StatusNotFound,
	)
	ErrShiftAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Shift already exists",
		http.StatusConflict,
	)
	ErrShiftHasAssignments = apperror.New(
		apperror.CodeConflict,
		"Shift still has assigned employees",
		http.StatusConflict,
	)
	ErrDuplicateAssignment = apperror.New(
		apperror.CodeConflict,
		"Employee is already assigned on this date",
		http.StatusConflict,
	)
	ErrInvalidLocation = apperror.New(
		apperror.CodeInvalidRef,
		"Invalid reference",
		http.StatusBadRequest,
	).WithDetails("Location ID does not exist")
	ErrInvalidEmployee = apperror.New(
		apperror.CodeInvalidRef,
		"Invalid reference",
		http.StatusBadRequest,
	).WithDetails("Employee does not exist")
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must not be after end_date",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidLocationID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid location ID",
		http.StatusBadRequest,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role ID",
		http.StatusBadRequest,
	)
	ErrLocationForbidden = apperror.New(
		apperror.CodeForbidden,
		"Not allowed to view other locations",
		http.StatusForbidden,
	)
)
