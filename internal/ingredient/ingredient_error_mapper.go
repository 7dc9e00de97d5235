package ingredient

import (
	"errors"

	ingredienterrors "go-resto/internal/ingredient/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ingredienterrors.ErrIngredientNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ingredienterrors.ErrIngredientAlreadyExists
		case "23503":
			// only dish_contents references ingredients
			return ingredienterrors.ErrIngredientInUse
		case "23502", "23514":
			return ingredienterrors.ErrInvalidData
		}
	}
	return err
}
