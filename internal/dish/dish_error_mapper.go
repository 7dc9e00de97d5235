package dish

import (
	"errors"

	disherrors "go-resto/internal/dish/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return disherrors.ErrDishNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return disherrors.ErrDishAlreadyExists
		case "23503":
			return disherrors.ErrInvalidReference
		case "23502", "23514":
			return disherrors.ErrInvalidData
		}
	}
	return err
}
