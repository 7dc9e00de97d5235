package schedule

import (
	"errors"
	"strings"

	scheduleerrors "go-resto/internal/schedule/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uqShiftDate              = "shifts_pkey"
	uqAssignmentDateEmployee = "uq_employees_schedule_date_employee"
	pgUniqueViolation        = "23505"
	pgForeignKeyViolation    = "23503"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleerrors.ErrShiftNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			switch pgErr.ConstraintName {
			case uqAssignmentDateEmployee:
				return scheduleerrors.ErrDuplicateAssignment
			case uqShiftDate:
				return scheduleerrors.ErrShiftAlreadyExists
			}
		case pgForeignKeyViolation:
			return mapForeignKey(pgErr.ConstraintName, pgErr.Detail)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uqAssignmentDateEmployee) {
		return scheduleerrors.ErrDuplicateAssignment
	}

	return err
}

// mapForeignKey keys off the referencing column, which appears in both the
// constraint name and the detail ("Key (location_id)=(9) is not present").
func mapForeignKey(constraint, detail string) error {
	c := strings.ToLower(constraint + " " + detail)
	switch {
	case strings.Contains(c, "still referenced"):
		return scheduleerrors.ErrShiftHasAssignments
	case strings.Contains(c, "location_id"):
		return scheduleerrors.ErrInvalidLocation
	case strings.Contains(c, "employee_id"):
		return scheduleerrors.ErrInvalidEmployee
	case strings.Contains(c, "shift_date"):
		return scheduleerrors.ErrShiftNotFound
	}
	return scheduleerrors.ErrInvalidLocation
}
