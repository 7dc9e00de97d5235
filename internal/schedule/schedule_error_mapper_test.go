package schedule

import (
	"errors"
	"testing"

	scheduleerrors "go-resto/internal/schedule/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, scheduleerrors.ErrShiftNotFound},
		{"duplicate assignment", &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_schedule_date_employee"}, scheduleerrors.ErrDuplicateAssignment},
		{"duplicate shift", &pgconn.PgError{Code: "23505", ConstraintName: "shifts_pkey"}, scheduleerrors.ErrShiftAlreadyExists},
		{"missing location", &pgconn.PgError{Code: "23503", ConstraintName: "employees_schedule_location_id_fkey"}, scheduleerrors.ErrInvalidLocation},
		{"missing employee", &pgconn.PgError{Code: "23503", ConstraintName: "employees_schedule_employee_id_fkey"}, scheduleerrors.ErrInvalidEmployee},
		{"missing shift", &pgconn.PgError{Code: "23503", ConstraintName: "fk_schedule_shift", Detail: `Key (shift_date)=(2024-01-08) is not present in table "shifts".`}, scheduleerrors.ErrShiftNotFound},
		{"shift still referenced", &pgconn.PgError{Code: "23503", Detail: `Key (shift_Date)=(2024-01-08) is still referenced from table "employees_schedule".`}, scheduleerrors.ErrShiftHasAssignments},
		{"duplicate by message", errors.New(`ERROR: duplicate key value violates unique constraint "uq_employees_schedule_date_employee"`), scheduleerrors.ErrDuplicateAssignment},
		{"passthrough", plain, plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapRepositoryError(tt.in))
		})
	}
}
