package disherrors

import (
	"go-resto/internal/shared/apperror"
	"net/http"
)

var (
	ErrDishNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dish not found",
		http.StatusNotFound,
	)
	ErrDishAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Dish already exists",
		http.StatusConflict,
	)
	ErrInvalidDishID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid dish ID",
		http.StatusBadRequest,
	)
	ErrInvalidReference = apperror.ErrInvalidReference.WithDetails("Category ID or ingredient IDs do not exist")
	ErrInvalidData      = apperror.Invalid("Invalid data")
	ErrInvalidPrice     = apperror.Invalid("Price must be zero or greater")
	ErrInvalidRating    = apperror.Invalid("Rating must be between 0 and 5")
	ErrNoFieldsToUpdate = apperror.Invalid("No valid fields to update")
)
