package ingredienterrors

import (
	"go-resto/internal/shared/apperror"
	"net/http"
)

var (
	ErrIngredientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Ingredient not found",
		http.StatusNotFound,
	)
	ErrIngredientAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Ingredient already exists",
		http.StatusConflict,
	)
	ErrIngredientInUse = apperror.New(
		apperror.CodeConflict,
		"Ingredient is used by a dish",
		http.StatusConflict,
	)
	ErrInvalidIngredientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid ingredient ID",
		http.StatusBadRequest,
	)
	ErrInvalidData      = apperror.Invalid("Invalid data")
	ErrInvalidPrice     = apperror.Invalid("Price must be zero or greater")
	ErrInvalidQuantity  = apperror.Invalid("Quantity must be zero or greater")
	ErrNoFieldsToUpdate = apperror.Invalid("No valid fields to update")
)
