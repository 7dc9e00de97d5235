package schedule

import (
	"context"
	"database/sql"

	"go-resto/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const shiftDateColumn = `"shift_Date"`

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListShifts(ctx context.Context, filter Filter) ([]Shift, error)
	FindShiftByDate(ctx context.Context, date string) (*Shift, error)
	CreateShift(ctx context.Context, shift *Shift) error
	UpdateShift(ctx context.Context, shift *Shift) error
	DeleteShift(ctx context.Context, date string) (*Shift, error)
	ListEmployeeSchedules(ctx context.Context, filter Filter) ([]EmployeeSchedule, error)
	ListAssignments(ctx context.Context, filter Filter) ([]AssignmentRow, error)
	FindAssignment(ctx context.Context, date, employeeID string) (*EmployeeSchedule, error)
	CreateAssignment(ctx context.Context, row *EmployeeSchedule) error
	DeleteAssignment(ctx context.Context, date string, locationID int, employeeID string) (*EmployeeSchedule, error)
	ListAssignmentsFrom(ctx context.Context, employeeID, fromDate string) ([]EmployeeSchedule, error)
	ListStaff(ctx context.Context, featuredOnly bool) ([]StaffRow, error)
	ListStaffByRole(ctx context.Context, roleID, locationID int) ([]StaffRow, error)
	ListRoles(ctx context.Context) ([]RoleRow, error)
	FindLocationAddress(ctx context.Context, locationID int) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds a fresh session to tx so every statement joins the caller's transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	if tx == nil {
		return r
	}
	conn := r.db.Session(&gorm.Session{NewDB: true})
	conn.Statement.ConnPool = tx
	return &repository{db: conn}
}

func (r *repository) ListShifts(ctx context.Context, filter Filter) ([]Shift, error) {
	var shifts []Shift
	err := r.db.WithContext(ctx).
		Scopes(
			scope.DateRange(shiftDateColumn, filter.StartDate, filter.EndDate),
			scope.Location("location_id", filter.LocationID),
		).
		Order(shiftDateColumn + " ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *repository) FindShiftByDate(ctx context.Context, date string) (*Shift, error) {
	var shift Shift
	err := r.db.WithContext(ctx).
		Where(shiftDateColumn+" = ?", date).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *repository) CreateShift(ctx context.Context, shift *Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *repository) UpdateShift(ctx context.Context, shift *Shift) error {
	return r.db.WithContext(ctx).
		Model(&Shift{}).
		Where(shiftDateColumn+" = ?", shift.ShiftDate.Format(DateLayout)).
		Updates(map[string]any{
			"admin_id":   shift.AdminID,
			"profit":     shift.Profit,
			"updated_at": shift.UpdatedAt,
		}).Error
}

func (r *repository) DeleteShift(ctx context.Context, date string) (*Shift, error) {
	var deleted []Shift
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where(shiftDateColumn+" = ?", date).
		Delete(&deleted)
	if res.Error != nil {
		return nil, res.Error
	}
	if len(deleted) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &deleted[0], nil
}

func (r *repository) ListEmployeeSchedules(ctx context.Context, filter Filter) ([]EmployeeSchedule, error) {
	var rows []EmployeeSchedule
	err := r.db.WithContext(ctx).
		Scopes(
			scope.DateRange("shift_date", filter.StartDate, filter.EndDate),
			scope.Location("location_id", filter.LocationID),
		).
		Order("shift_date ASC").
		Find(&rows).Error
	return rows, err
}

// ListAssignments joins each row with the employee's current role. The role
// filter applies to that joined value.
func (r *repository) ListAssignments(ctx context.Context, filter Filter) ([]AssignmentRow, error) {
	var rows []AssignmentRow
	q := r.db.WithContext(ctx).
		Table("employees_schedule AS es").
		Select("es.shift_date, es.location_id, es.employee_id, e.role_id").
		Joins("JOIN employees e ON e.uuid = es.employee_id").
		Scopes(
			scope.DateRange("es.shift_date", filter.StartDate, filter.EndDate),
			scope.Location("es.location_id", filter.LocationID),
		)
	if filter.RoleID > 0 {
		q = q.Where("e.role_id = ?", filter.RoleID)
	}
	err := q.Order("es.shift_date ASC").Order("es.created_at ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAssignment(ctx context.Context, date, employeeID string) (*EmployeeSchedule, error) {
	var row EmployeeSchedule
	err := r.db.WithContext(ctx).
		Where("shift_date = ? AND employee_id = ?", date, employeeID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) CreateAssignment(ctx context.Context, row *EmployeeSchedule) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// DeleteAssignment returns the removed row, or nil when nothing matched.
func (r *repository) DeleteAssignment(ctx context.Context, date string, locationID int, employeeID string) (*EmployeeSchedule, error) {
	var deleted []EmployeeSchedule
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("shift_date = ? AND location_id = ? AND employee_id = ?", date, locationID, employeeID).
		Delete(&deleted)
	if res.Error != nil {
		return nil, res.Error
	}
	if len(deleted) == 0 {
		return nil, nil
	}
	return &deleted[0], nil
}

func (r *repository) ListAssignmentsFrom(ctx context.Context, employeeID, fromDate string) ([]EmployeeSchedule, error) {
	var rows []EmployeeSchedule
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND shift_date >= ?", employeeID, fromDate).
		Order("shift_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) staffQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees AS e").
		Select("e.uuid, e.full_name, e.role_id, r.name AS role_name, e.location_id, e.is_featured").
		Joins("LEFT JOIN role r ON r.id = e.role_id")
}

func (r *repository) ListStaff(ctx context.Context, featuredOnly bool) ([]StaffRow, error) {
	var rows []StaffRow
	q := r.staffQuery(ctx)
	if featuredOnly {
		q = q.Where("e.is_featured = ?", true)
	}
	err := q.Order("e.full_name ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) ListStaffByRole(ctx context.Context, roleID, locationID int) ([]StaffRow, error) {
	var rows []StaffRow
	err := r.staffQuery(ctx).
		Where("e.role_id = ? AND e.is_featured = ?", roleID, true).
		Scopes(scope.Location("e.location_id", locationID)).
		Order("e.full_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListRoles(ctx context.Context) ([]RoleRow, error) {
	var rows []RoleRow
	err := r.db.WithContext(ctx).
		Table("role").
		Select("id, name").
		Order("id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindLocationAddress(ctx context.Context, locationID int) (string, error) {
	var address string
	err := r.db.WithContext(ctx).
		Table("restaurant_locations").
		Select("address").
		Where("id = ?", locationID).
		Limit(1).
		Scan(&address).Error
	return address, err
}
