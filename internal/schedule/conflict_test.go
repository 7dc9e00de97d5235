package schedule_test

import (
	"testing"

	"go-resto/internal/rolecatalog"
	"go-resto/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = "2024-01-08"

func TestDetectConflicts_NoneForCleanDay(t *testing.T) {
	assignments := []schedule.Assignment{
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "e2", RoleID: 2},
	}
	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, []schedule.StaffMember{alice, bob}, nil)

	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestDetectConflicts_DoubleBooking(t *testing.T) {
	assignments := []schedule.Assignment{
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1},
	}
	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, []schedule.StaffMember{alice}, nil)

	require.Len(t, conflicts, 2)
	for _, c := range conflicts {
		assert.Equal(t, schedule.ConflictDoubleBooking, c.Type)
		assert.Equal(t, "e1", c.EmployeeID)
		assert.Equal(t, day, c.ShiftDate)
		assert.Equal(t, "Employee Alice is assigned multiple times on 2024-01-08", c.Message)
	}
}

func TestDetectConflicts_DoubleBookingUnknownEmployeeUsesID(t *testing.T) {
	assignments := []schedule.Assignment{
		{ShiftDate: day, LocationID: 10, EmployeeID: "ghost", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "ghost", RoleID: 1},
	}
	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, nil, nil)

	require.Len(t, conflicts, 1)
	assert.Equal(t, "Employee ghost is assigned multiple times on 2024-01-08", conflicts[0].Message)
}

func TestDetectConflicts_RoleMismatch(t *testing.T) {
	assignments := []schedule.Assignment{{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 2}}
	roles := schedule.RoleDirectory{1: "Restaurant Manager", 2: "Line Cook"}

	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, []schedule.StaffMember{alice}, roles)

	require.Len(t, conflicts, 1)
	assert.Equal(t, schedule.ConflictRoleMismatch, conflicts[0].Type)
	assert.Equal(t, `Employee Alice has role "Restaurant Manager" but assigned to "Line Cook" role`, conflicts[0].Message)
}

func TestDetectConflicts_RoleNameFallbacks(t *testing.T) {
	c := smallCatalog(t)
	member := schedule.StaffMember{ID: "e5", FullName: "Eve", RoleID: 42, LocationID: 10}
	assignments := []schedule.Assignment{{ShiftDate: day, LocationID: 10, EmployeeID: "e5", RoleID: 2}}

	conflicts := schedule.DetectConflicts(c, day, assignments, []schedule.StaffMember{member}, schedule.RoleDirectory{})

	require.Len(t, conflicts, 1)
	assert.Equal(t, `Employee Eve has role "Unknown" but assigned to "Cook" role`, conflicts[0].Message)
}

func TestDetectConflicts_LocationMismatch(t *testing.T) {
	assignments := []schedule.Assignment{{ShiftDate: day, LocationID: 10, EmployeeID: "e3", RoleID: 3}}

	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, []schedule.StaffMember{carol}, nil)

	require.Len(t, conflicts, 1)
	assert.Equal(t, schedule.ConflictLocationMismatch, conflicts[0].Type)
	assert.Equal(t, "Employee Carol is assigned to location 10 but belongs to location 20", conflicts[0].Message)
}

func TestDetectConflicts_UnknownEmployeeSkipsMismatchPasses(t *testing.T) {
	assignments := []schedule.Assignment{{ShiftDate: day, LocationID: 99, EmployeeID: "ghost", RoleID: 1}}

	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, []schedule.StaffMember{alice}, nil)

	assert.Empty(t, conflicts)
}

func TestDetectConflicts_PassOrder(t *testing.T) {
	assignments := []schedule.Assignment{
		{ShiftDate: day, LocationID: 10, EmployeeID: "e3", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "e3", RoleID: 1},
	}

	conflicts := schedule.DetectConflicts(smallCatalog(t), day, assignments, []schedule.StaffMember{carol}, nil)

	require.Len(t, conflicts, 5)
	assert.Equal(t, schedule.ConflictDoubleBooking, conflicts[0].Type)
	assert.Equal(t, schedule.ConflictRoleMismatch, conflicts[1].Type)
	assert.Equal(t, schedule.ConflictRoleMismatch, conflicts[2].Type)
	assert.Equal(t, schedule.ConflictLocationMismatch, conflicts[3].Type)
	assert.Equal(t, schedule.ConflictLocationMismatch, conflicts[4].Type)
}

func TestValidateDay_PartialCoverage(t *testing.T) {
	assignments := []schedule.Assignment{{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1}}

	v := schedule.ValidateDay(smallCatalog(t), day, assignments, []schedule.StaffMember{alice}, nil)

	assert.False(t, v.IsComplete)
	assert.Equal(t, []int{2}, v.MissingRoles)
	assert.Empty(t, v.Conflicts)
	assert.Equal(t, 50, v.CompletenessPercentage)
}

func TestValidateDay_OptionalRolesDoNotCount(t *testing.T) {
	assignments := []schedule.Assignment{
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "e2", RoleID: 2},
	}

	v := schedule.ValidateDay(smallCatalog(t), day, assignments, []schedule.StaffMember{alice, bob}, nil)

	assert.True(t, v.IsComplete)
	assert.Empty(t, v.MissingRoles)
	assert.Equal(t, 100, v.CompletenessPercentage)
}

func TestValidateDay_ConflictsBlockCompletion(t *testing.T) {
	assignments := []schedule.Assignment{
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 1},
		{ShiftDate: day, LocationID: 10, EmployeeID: "e1", RoleID: 2},
	}

	v := schedule.ValidateDay(smallCatalog(t), day, assignments, []schedule.StaffMember{alice}, nil)

	assert.Empty(t, v.MissingRoles)
	assert.Equal(t, 100, v.CompletenessPercentage)
	assert.False(t, v.IsComplete)
	assert.NotEmpty(t, v.Conflicts)
}

func TestValidateDay_EmptyDayOnDefaultCatalog(t *testing.T) {
	c := rolecatalog.Default()

	v := schedule.ValidateDay(c, day, nil, nil, nil)

	assert.False(t, v.IsComplete)
	assert.Equal(t, 0, v.CompletenessPercentage)
	assert.Len(t, v.MissingRoles, len(c.Required()))
	assert.Equal(t, []int{1, 3, 5, 7, 8, 9, 10, 13, 14}, v.MissingRoles)
}

func TestValidateDay_RoundsHalfUp(t *testing.T) {
	c, err := rolecatalog.New([]rolecatalog.Entry{
		{RoleID: 1, Name: "A", Required: true},
		{RoleID: 2, Name: "B", Required: true},
		{RoleID: 3, Name: "C", Required: true},
	})
	require.NoError(t, err)

	one := []schedule.Assignment{{ShiftDate: day, EmployeeID: "x", RoleID: 1}}
	two := append(one, schedule.Assignment{ShiftDate: day, EmployeeID: "y", RoleID: 2})

	assert.Equal(t, 33, schedule.ValidateDay(c, day, one, nil, nil).CompletenessPercentage)
	assert.Equal(t, 67, schedule.ValidateDay(c, day, two, nil, nil).CompletenessPercentage)
}

func TestValidateDay_NoRequiredRoles(t *testing.T) {
	c, err := rolecatalog.New([]rolecatalog.Entry{{RoleID: 1, Name: "Optional", Required: false}})
	require.NoError(t, err)

	v := schedule.ValidateDay(c, day, nil, nil, nil)

	assert.True(t, v.IsComplete)
	assert.Equal(t, 100, v.CompletenessPercentage)
}
