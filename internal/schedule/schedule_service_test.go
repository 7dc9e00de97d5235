package schedule_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-resto/internal/events"
	"go-resto/internal/messaging/kafka"
	"go-resto/internal/rolecatalog"
	"go-resto/internal/schedule"
	scheduleerrors "go-resto/internal/schedule/errors"
	"go-resto/internal/shared/contextutil"

	kafkaMock "go-resto/internal/messaging/kafka/mock"
	scheduleMock "go-resto/internal/schedule/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   schedule.Service
	repo      *scheduleMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	return newServiceDeps(t, false)
}

func setupCachedServiceTest(t *testing.T) *serviceDeps {
	return newServiceDeps(t, true)
}

func newServiceDeps(t *testing.T, cached bool) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := scheduleMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	deps := &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, outbox: outboxRepo}

	var rdb *redis.Client
	if cached {
		rdb, deps.redismock = redismock.NewClientMock()
	}
	deps.service = schedule.NewService(db, repo, outboxRepo, rdb, rolecatalog.Default(), 0, nil)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestScheduleService_Assign(t *testing.T) {
	employeeID := uuid.New()
	req := schedule.AssignRequest{ShiftDate: "2024-01-08", LocationID: 3, EmployeeID: employeeID.String()}
	shift := &schedule.Shift{ShiftDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), LocationID: 3}

	t.Run("success - persists row and outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithRequestID(context.Background(), "req-assign-1")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, req.ShiftDate).Return(shift, nil)
		deps.repo.EXPECT().FindAssignment(ctx, req.ShiftDate, req.EmployeeID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, row *schedule.EmployeeSchedule) error {
				assert.Equal(t, employeeID, row.EmployeeID)
				assert.Equal(t, 3, row.LocationID)
				assert.Equal(t, "2024-01-08", row.ShiftDate.Format(schedule.DateLayout))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "req-assign-1", event.RequestID)
				assert.Equal(t, events.AssignmentCreatedEventType, event.EventType)
				assert.Equal(t, events.ScheduleAssignmentTopic, event.Topic)
				assert.Equal(t, employeeID.String(), event.AggregateID)

				var payload events.AssignmentChangedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, "2024-01-08", payload.ShiftDate)
				assert.Equal(t, 3, payload.LocationID)
				return nil
			})

		resp, err := deps.service.Assign(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-08", resp.ShiftDate)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("shift missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, req.ShiftDate).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Assign(ctx, req)

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee already scheduled that day", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, req.ShiftDate).Return(shift, nil)
		deps.repo.EXPECT().
			FindAssignment(ctx, req.ShiftDate, req.EmployeeID).
			Return(&schedule.EmployeeSchedule{EmployeeID: employeeID, LocationID: 9}, nil)

		_, err := deps.service.Assign(ctx, req)

		assert.ErrorIs(t, err, scheduleerrors.ErrDuplicateAssignment)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("concurrent insert loses on unique constraint", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, req.ShiftDate).Return(shift, nil)
		deps.repo.EXPECT().FindAssignment(ctx, req.ShiftDate, req.EmployeeID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_schedule_date_employee"})

		_, err := deps.service.Assign(ctx, req)

		assert.ErrorIs(t, err, scheduleerrors.ErrDuplicateAssignment)
	})

	t.Run("unknown location", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, req.ShiftDate).Return(shift, nil)
		deps.repo.EXPECT().FindAssignment(ctx, req.ShiftDate, req.EmployeeID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "employees_schedule_location_id_fkey"})

		_, err := deps.service.Assign(ctx, req)

		assert.Same(t, scheduleerrors.ErrInvalidLocation, err)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, req.ShiftDate).Return(shift, nil)
		deps.repo.EXPECT().FindAssignment(ctx, req.ShiftDate, req.EmployeeID).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().CreateAssignment(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Assign(ctx, req)

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects bad input before touching the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		_, err := deps.service.Assign(ctx, schedule.AssignRequest{ShiftDate: "08/01/2024", LocationID: 3, EmployeeID: req.EmployeeID})
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDate)

		_, err = deps.service.Assign(ctx, schedule.AssignRequest{ShiftDate: req.ShiftDate, LocationID: 3, EmployeeID: "nope"})
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidEmployeeID)

		_, err = deps.service.Assign(ctx, schedule.AssignRequest{ShiftDate: req.ShiftDate, LocationID: 0, EmployeeID: req.EmployeeID})
		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidLocationID)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestScheduleService_Unassign(t *testing.T) {
	employeeID := uuid.New()
	req := schedule.UnassignRequest{ShiftDate: "2024-01-08", LocationID: 3, EmployeeID: employeeID.String()}

	t.Run("removes existing assignment", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		deleted := &schedule.EmployeeSchedule{
			ShiftDate:  time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			EmployeeID: employeeID,
			LocationID: 3,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignment(ctx, req.ShiftDate, req.LocationID, req.EmployeeID).Return(deleted, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.AssignmentRemovedEventType, event.EventType)
				return nil
			})

		resp, err := deps.service.Unassign(ctx, req)

		assert.NoError(t, err)
		assert.True(t, resp.Removed)
		require.NotNil(t, resp.Assignment)
		assert.Equal(t, employeeID.String(), resp.Assignment.EmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("nothing to remove is not an error", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignment(ctx, req.ShiftDate, req.LocationID, req.EmployeeID).Return(nil, nil)

		resp, err := deps.service.Unassign(ctx, req)

		assert.NoError(t, err)
		assert.False(t, resp.Removed)
		assert.Nil(t, resp.Assignment)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestScheduleService_CreateShift(t *testing.T) {
	actor := uuid.New()

	t.Run("success - admin defaults to actor", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, "2024-01-08").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			CreateShift(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, sh *schedule.Shift) error {
				require.NotNil(t, sh.AdminID)
				assert.Equal(t, actor, *sh.AdminID)
				return nil
			})

		resp, err := deps.service.CreateShift(ctx, actor.String(), schedule.CreateShiftRequest{ShiftDate: "2024-01-08", LocationID: 1})

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-08", resp.ShiftDate)
		assert.Equal(t, actor.String(), resp.AdminID)
	})

	t.Run("conflict when date already has a shift", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindShiftByDate(ctx, "2024-01-08").Return(&schedule.Shift{}, nil)

		_, err := deps.service.CreateShift(ctx, actor.String(), schedule.CreateShiftRequest{ShiftDate: "2024-01-08", LocationID: 1})

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftAlreadyExists)
	})
}

func TestScheduleService_DeleteShift(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteShift(ctx, "2024-01-08").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.DeleteShift(ctx, "2024-01-08")

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftNotFound)
	})

	t.Run("still has assignments", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			DeleteShift(ctx, "2024-01-08").
			Return(nil, &pgconn.PgError{
				Code:           "23503",
				ConstraintName: "employees_schedule_shift_date_fkey",
				Detail:         `Key (shift_Date)=(2024-01-08) is still referenced from table "employees_schedule".`,
			})

		_, err := deps.service.DeleteShift(ctx, "2024-01-08")

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftHasAssignments)
	})
}

func TestScheduleService_Validate(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	manager := uuid.New()
	cook := uuid.New()
	jan8 := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	jan9 := jan8.AddDate(0, 0, 1)
	filter := schedule.Filter{StartDate: "2024-01-08", EndDate: "2024-01-14", LocationID: 2}

	deps.repo.EXPECT().ListAssignments(ctx, filter).Return([]schedule.AssignmentRow{
		{ShiftDate: jan8, LocationID: 2, EmployeeID: manager, RoleID: 1},
		{ShiftDate: jan9, LocationID: 2, EmployeeID: manager, RoleID: 1},
		{ShiftDate: jan9, LocationID: 2, EmployeeID: cook, RoleID: 5},
	}, nil)
	deps.repo.EXPECT().ListStaff(ctx, false).Return([]schedule.StaffRow{
		{UUID: manager, FullName: "Mia", RoleID: 1, LocationID: 2, IsFeatured: true},
		{UUID: cook, FullName: "Cal", RoleID: 5, LocationID: 4},
	}, nil)
	deps.repo.EXPECT().ListRoles(ctx).Return([]schedule.RoleRow{{ID: 1, Name: "Restaurant Manager"}, {ID: 5, Name: "Line Cook"}}, nil)

	days, err := deps.service.Validate(ctx, "2024-01-08", "2024-01-14", 2)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-08", days[0].Date)
	assert.Equal(t, 11, days[0].CompletenessPercentage)
	assert.Empty(t, days[0].Conflicts)

	assert.Equal(t, "2024-01-09", days[1].Date)
	assert.Equal(t, 22, days[1].CompletenessPercentage)
	require.Len(t, days[1].Conflicts, 1)
	assert.Equal(t, schedule.ConflictLocationMismatch, days[1].Conflicts[0].Type)
	assert.False(t, days[1].IsComplete)
}

func TestScheduleService_Validate_RequiresRange(t *testing.T) {
	deps := setupServiceTest(t)

	_, err := deps.service.Validate(context.Background(), "", "2024-01-14", 0)
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDate)

	_, err = deps.service.Validate(context.Background(), "2024-01-14", "2024-01-08", 0)
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDateRange)
}

func TestScheduleService_Week(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	manager := uuid.New()
	filter := schedule.Filter{StartDate: "2024-01-07", EndDate: "2024-01-13", LocationID: 2}
	deps.repo.EXPECT().ListAssignments(ctx, filter).Return([]schedule.AssignmentRow{
		{ShiftDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), LocationID: 2, EmployeeID: manager, RoleID: 1},
	}, nil)
	deps.repo.EXPECT().ListStaff(ctx, false).Return([]schedule.StaffRow{{UUID: manager, FullName: "Mia", RoleID: 1, LocationID: 2}}, nil)
	deps.repo.EXPECT().ListRoles(ctx).Return(nil, nil)
	deps.repo.EXPECT().FindLocationAddress(ctx, 2).Return("1 Dock Rd", nil)

	week, err := deps.service.Week(ctx, time.Date(2024, 1, 11, 18, 0, 0, 0, time.UTC), 2, false)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-07", week.StartDate)
	require.Len(t, week.Days, 7)
	assert.Equal(t, "1 Dock Rd", week.Days[0].LocationName)
	require.Len(t, week.Days[3].RoleRequirements, 1)
	assert.Equal(t, "Mia", week.Days[3].RoleRequirements[0].AssignedEmployeeName)
	// one day at 1/9 required roles, six empty days
	assert.Equal(t, 2, week.OverallCompleteness)
}

func TestScheduleService_ValidateAndWeekAgreeOnFiredStaff(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	fired := uuid.New()
	jan10 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	rows := []schedule.AssignmentRow{{ShiftDate: jan10, LocationID: 2, EmployeeID: fired, RoleID: 5}}
	staff := []schedule.StaffRow{{UUID: fired, FullName: "Cal", RoleID: 5, LocationID: 4, IsFeatured: false}}
	filter := schedule.Filter{StartDate: "2024-01-07", EndDate: "2024-01-13", LocationID: 2}

	deps.repo.EXPECT().ListAssignments(ctx, filter).Return(rows, nil).Times(2)
	deps.repo.EXPECT().ListStaff(ctx, false).Return(staff, nil).Times(2)
	deps.repo.EXPECT().ListRoles(ctx).Return(nil, nil).Times(2)
	deps.repo.EXPECT().FindLocationAddress(ctx, 2).Return("1 Dock Rd", nil)

	days, err := deps.service.Validate(ctx, "2024-01-07", "2024-01-13", 2)
	require.NoError(t, err)
	week, err := deps.service.Week(ctx, jan10, 2, true)
	require.NoError(t, err)

	require.Len(t, days, 1)
	require.Len(t, days[0].Conflicts, 1)
	assert.Equal(t, schedule.ConflictLocationMismatch, days[0].Conflicts[0].Type)
	assert.Equal(t, days[0].Conflicts, week.Days[3].Validation.Conflicts)
	assert.Equal(t, days[0].CompletenessPercentage, week.Days[3].Validation.CompletenessPercentage)
}

func TestScheduleService_CheckAssign(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	cook := uuid.New()
	jan8 := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().ListStaff(ctx, false).Return([]schedule.StaffRow{
		{UUID: cook, FullName: "Cal", RoleID: 5, LocationID: 2},
	}, nil).Times(2)
	deps.repo.EXPECT().
		ListAssignments(ctx, schedule.Filter{StartDate: "2024-01-08", EndDate: "2024-01-08"}).
		Return([]schedule.AssignmentRow{{ShiftDate: jan8, LocationID: 4, EmployeeID: cook, RoleID: 5}}, nil)

	got, err := deps.service.CheckAssign(ctx, schedule.EligibilityQuery{
		ShiftDate: "2024-01-08", LocationID: 2, EmployeeID: cook.String(), RoleID: 1,
	})
	require.NoError(t, err)
	assert.False(t, got.CanAssign)
	assert.Equal(t, []string{
		"Employee is already assigned on this date",
		"Employee role does not match the required role",
	}, got.Reasons)

	_, err = deps.service.CheckAssign(ctx, schedule.EligibilityQuery{
		ShiftDate: "2024-01-08", LocationID: 2, EmployeeID: uuid.NewString(), RoleID: 5,
	})
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidEmployee)

	_, err = deps.service.CheckAssign(ctx, schedule.EligibilityQuery{ShiftDate: "08/01/2024"})
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDate)
}

func TestScheduleService_StaffLocation(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	cook := uuid.New()
	deps.repo.EXPECT().ListStaff(ctx, false).Return([]schedule.StaffRow{
		{UUID: cook, FullName: "Cal", RoleID: 5, LocationID: 3},
	}, nil).Times(2)

	loc, err := deps.service.StaffLocation(ctx, cook.String())
	require.NoError(t, err)
	assert.Equal(t, 3, loc)

	_, err = deps.service.StaffLocation(ctx, uuid.NewString())
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidEmployee)
}

func TestScheduleService_Week_ServedFromCache(t *testing.T) {
	deps := setupCachedServiceTest(t)
	ctx := context.Background()

	cached := schedule.Week{StartDate: "2024-01-07", EndDate: "2024-01-13", OverallCompleteness: 88, Status: schedule.StatusYellow}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	deps.redismock.ExpectGet(schedule.CacheVersionKey).SetVal("4")
	deps.redismock.ExpectGet(schedule.CacheKey("week", "4", "2024-01-07", "0", "true")).SetVal(string(data))

	week, err := deps.service.Week(ctx, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), 0, true)

	require.NoError(t, err)
	assert.Equal(t, 88, week.OverallCompleteness)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestScheduleService_ListShifts_FillsCacheOnMiss(t *testing.T) {
	deps := setupCachedServiceTest(t)
	ctx := context.Background()

	filter := schedule.Filter{StartDate: "2024-01-01", EndDate: "2024-01-31"}
	started := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
	deps.repo.EXPECT().ListShifts(ctx, filter).Return([]schedule.Shift{
		{ShiftDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), LocationID: 1, StartedAt: started},
	}, nil)

	expected, err := json.Marshal([]schedule.ShiftResponse{{ShiftDate: "2024-01-02", LocationID: 1, StartedAt: started.Format(time.RFC3339)}})
	require.NoError(t, err)
	key := schedule.CacheKey("shifts", "0", "2024-01-01", "2024-01-31", "0", "0")

	deps.redismock.ExpectGet(schedule.CacheVersionKey).RedisNil()
	deps.redismock.ExpectGet(key).RedisNil()
	deps.redismock.ExpectSet(key, expected, 5*time.Minute).SetVal("OK")

	shifts, err := deps.service.ListShifts(ctx, filter)

	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, "2024-01-02", shifts[0].ShiftDate)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestScheduleService_WriteBumpsCacheVersion(t *testing.T) {
	deps := setupCachedServiceTest(t)
	ctx := context.Background()
	employeeID := uuid.New()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		DeleteAssignment(ctx, "2024-01-08", 3, employeeID.String()).
		Return(&schedule.EmployeeSchedule{EmployeeID: employeeID, LocationID: 3}, nil)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	deps.redismock.ExpectIncr(schedule.CacheVersionKey).SetVal(5)

	_, err := deps.service.Unassign(ctx, schedule.UnassignRequest{ShiftDate: "2024-01-08", LocationID: 3, EmployeeID: employeeID.String()})

	assert.NoError(t, err)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}

func TestScheduleService_ReleaseFrom(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	employeeID := uuid.New()

	rows := []schedule.EmployeeSchedule{
		{ShiftDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), EmployeeID: employeeID, LocationID: 1},
		{ShiftDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), EmployeeID: employeeID, LocationID: 2},
	}
	deps.repo.EXPECT().ListAssignmentsFrom(ctx, employeeID.String(), "2024-02-01").Return(rows, nil)

	// first row is removed, second was already gone
	expectTx(t, deps.sqlMock, true)
	expectTx(t, deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
	gomock.InOrder(
		deps.repo.EXPECT().DeleteAssignment(ctx, "2024-02-01", 1, employeeID.String()).Return(&rows[0], nil),
		deps.repo.EXPECT().DeleteAssignment(ctx, "2024-02-03", 2, employeeID.String()).Return(nil, nil),
	)
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	removed, err := deps.service.ReleaseFrom(ctx, employeeID.String(), "2024-02-01")

	assert.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestScheduleService_EmployeesByRole(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	id := uuid.New()

	deps.repo.EXPECT().ListStaffByRole(ctx, 5, 2).Return([]schedule.StaffRow{
		{UUID: id, FullName: "Cal", RoleID: 5, RoleName: "Line Cook", LocationID: 2, IsFeatured: true},
	}, nil)

	staff, err := deps.service.EmployeesByRole(ctx, 5, 2)

	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, id.String(), staff[0].UUID)
	assert.Equal(t, "Line Cook", staff[0].Role.Name)

	_, err = deps.service.EmployeesByRole(ctx, 0, 2)
	assert.ErrorIs(t, err, scheduleerrors.ErrInvalidRoleID)
}
