package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"go-resto/internal/events"
	"go-resto/internal/messaging/kafka"
	"go-resto/internal/rolecatalog"
	scheduleerrors "go-resto/internal/schedule/errors"
	"go-resto/internal/shared/contextutil"
	"go-resto/internal/shared/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const defaultCacheTTL = 5 * time.Minute

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	ListShifts(ctx context.Context, filter Filter) ([]ShiftResponse, error)
	GetShift(ctx context.Context, date string) (ShiftResponse, error)
	CreateShift(ctx context.Context, actorID string, req CreateShiftRequest) (ShiftResponse, error)
	UpdateShift(ctx context.Context, date string, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, date string) (ShiftResponse, error)
	ListEmployeeSchedules(ctx context.Context, filter Filter) ([]EmployeeScheduleResponse, error)
	ListAssignments(ctx context.Context, filter Filter) ([]Assignment, error)
	Assign(ctx context.Context, req AssignRequest) (EmployeeScheduleResponse, error)
	Unassign(ctx context.Context, req UnassignRequest) (UnassignResponse, error)
	CheckAssign(ctx context.Context, q EligibilityQuery) (Eligibility, error)
	StaffLocation(ctx context.Context, employeeID string) (int, error)
	EmployeesByRole(ctx context.Context, roleID, locationID int) ([]StaffResponse, error)
	Validate(ctx context.Context, startDate, endDate string, locationID int) ([]DayValidation, error)
	Week(ctx context.Context, ref time.Time, locationID int, admin bool) (Week, error)
	ReleaseFrom(ctx context.Context, employeeID, fromDate string) (int, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	catalog  *rolecatalog.Catalog
	cacheTTL time.Duration
	metrics  *metrics.Service
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	catalog *rolecatalog.Catalog,
	cacheTTL time.Duration,
	m *metrics.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	if catalog == nil {
		catalog = rolecatalog.Default()
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outboxRepo,
		rdb:      rdb,
		catalog:  catalog,
		cacheTTL: cacheTTL,
		metrics:  m,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func (s *service) ListShifts(ctx context.Context, filter Filter) ([]ShiftResponse, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return cachedRead(ctx, s, "shifts", filterKey(filter), func(ctx context.Context) ([]ShiftResponse, error) {
		shifts, err := s.repo.ListShifts(ctx, filter)
		if err != nil {
			s.logger.Error("list shifts failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		out := make([]ShiftResponse, len(shifts))
		for i, sh := range shifts {
			out[i] = mapShiftResponse(sh)
		}
		return out, nil
	})
}

func (s *service) GetShift(ctx context.Context, date string) (ShiftResponse, error) {
	if _, err := parseDate(date); err != nil {
		return ShiftResponse{}, err
	}
	shift, err := s.repo.FindShiftByDate(ctx, date)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}
	return mapShiftResponse(*shift), nil
}

func (s *service) CreateShift(ctx context.Context, actorID string, req CreateShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	date, err := parseDate(req.ShiftDate)
	if err != nil {
		return ShiftResponse{}, err
	}

	adminRaw := req.AdminID
	if adminRaw == "" {
		adminRaw = actorID
	}
	var adminID *uuid.UUID
	if adminRaw != "" {
		id, err := uuid.Parse(adminRaw)
		if err != nil {
			return ShiftResponse{}, scheduleerrors.ErrInvalidEmployeeID
		}
		adminID = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create shift begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindShiftByDate(ctx, req.ShiftDate); err == nil {
		return ShiftResponse{}, scheduleerrors.ErrShiftAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create shift lookup failed", zap.Error(err))
		return ShiftResponse{}, err
	}

	shift := &Shift{
		ShiftDate:  date,
		LocationID: req.LocationID,
		AdminID:    adminID,
		StartedAt:  time.Now().UTC(),
	}
	if err := qtx.CreateShift(ctx, shift); err != nil {
		s.logger.Error("create shift persist failed", zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create shift commit failed", zap.String("request_id", rid), zap.Error(err))
		return ShiftResponse{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("create shift success",
		zap.String("request_id", rid),
		zap.String("shift_date", req.ShiftDate),
		zap.Int("location_id", req.LocationID),
	)
	return mapShiftResponse(*shift), nil
}

func (s *service) UpdateShift(ctx context.Context, date string, req UpdateShiftRequest) (ShiftResponse, error) {
	if _, err := parseDate(date); err != nil {
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update shift begin tx failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	shift, err := qtx.FindShiftByDate(ctx, date)
	if err != nil {
		return ShiftResponse{}, mapRepositoryError(err)
	}

	if req.AdminID != nil {
		id, err := uuid.Parse(*req.AdminID)
		if err != nil {
			return ShiftResponse{}, scheduleerrors.ErrInvalidEmployeeID
		}
		shift.AdminID = &id
	}
	if req.Profit != nil {
		profit := *req.Profit
		shift.Profit = &profit
	}
	now := time.Now().UTC()
	shift.UpdatedAt = &now

	if err := qtx.UpdateShift(ctx, shift); err != nil {
		s.logger.Error("update shift persist failed", zap.String("shift_date", date), zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update shift commit failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("update shift success", zap.String("shift_date", date))
	return mapShiftResponse(*shift), nil
}

func (s *service) DeleteShift(ctx context.Context, date string) (ShiftResponse, error) {
	if _, err := parseDate(date); err != nil {
		return ShiftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete shift begin tx failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	deleted, err := s.repo.WithTx(tx).DeleteShift(ctx, date)
	if err != nil {
		s.logger.Warn("delete shift failed", zap.String("shift_date", date), zap.Error(err))
		return ShiftResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete shift commit failed", zap.Error(err))
		return ShiftResponse{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("delete shift success", zap.String("shift_date", date))
	return mapShiftResponse(*deleted), nil
}

func (s *service) ListEmployeeSchedules(ctx context.Context, filter Filter) ([]EmployeeScheduleResponse, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return cachedRead(ctx, s, "employee_schedules", filterKey(filter), func(ctx context.Context) ([]EmployeeScheduleResponse, error) {
		rows, err := s.repo.ListEmployeeSchedules(ctx, filter)
		if err != nil {
			s.logger.Error("list employee schedules failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		out := make([]EmployeeScheduleResponse, len(rows))
		for i, r := range rows {
			out[i] = mapEmployeeScheduleResponse(r)
		}
		return out, nil
	})
}

func (s *service) ListAssignments(ctx context.Context, filter Filter) ([]Assignment, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return cachedRead(ctx, s, "assignments", filterKey(filter), s.loadAssignments(filter))
}

func (s *service) loadAssignments(filter Filter) func(context.Context) ([]Assignment, error) {
	return func(ctx context.Context) ([]Assignment, error) {
		rows, err := s.repo.ListAssignments(ctx, filter)
		if err != nil {
			s.logger.Error("list assignments failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		return mapAssignments(rows), nil
	}
}

// Assign places an employee on a date. The shift must exist and the employee
// must not already hold an assignment that date at any location.
func (s *service) Assign(ctx context.Context, req AssignRequest) (EmployeeScheduleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign employee requested",
		zap.String("request_id", rid),
		zap.String("shift_date", req.ShiftDate),
		zap.Int("location_id", req.LocationID),
		zap.String("employee_id", req.EmployeeID),
	)

	date, err := parseDate(req.ShiftDate)
	if err != nil {
		return EmployeeScheduleResponse{}, err
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmployeeScheduleResponse{}, scheduleerrors.ErrInvalidEmployeeID
	}
	if req.LocationID < 1 {
		return EmployeeScheduleResponse{}, scheduleerrors.ErrInvalidLocationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := qtx.FindShiftByDate(ctx, req.ShiftDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeScheduleResponse{}, scheduleerrors.ErrShiftNotFound
		}
		s.logger.Error("assign shift lookup failed", zap.Error(err))
		return EmployeeScheduleResponse{}, err
	}

	existing, err := qtx.FindAssignment(ctx, req.ShiftDate, req.EmployeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("assign existing lookup failed", zap.Error(err))
		return EmployeeScheduleResponse{}, err
	}
	if err == nil && existing != nil {
		s.logger.Warn("assign rejected, employee already scheduled",
			zap.String("shift_date", req.ShiftDate),
			zap.String("employee_id", req.EmployeeID),
			zap.Int("existing_location_id", existing.LocationID),
		)
		return EmployeeScheduleResponse{}, scheduleerrors.ErrDuplicateAssignment
	}

	row := &EmployeeSchedule{
		ShiftDate:  date,
		EmployeeID: employeeID,
		LocationID: req.LocationID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := qtx.CreateAssignment(ctx, row); err != nil {
		s.logger.Error("assign persist failed", zap.Error(err))
		return EmployeeScheduleResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueAssignmentEvent(ctx, tx, events.AssignmentCreatedEventType, *row); err != nil {
		return EmployeeScheduleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("assign commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeScheduleResponse{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("assign employee success",
		zap.String("request_id", rid),
		zap.String("shift_date", req.ShiftDate),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapEmployeeScheduleResponse(*row), nil
}

// Unassign is idempotent: removing an assignment that does not exist succeeds
// with Removed false.
func (s *service) Unassign(ctx context.Context, req UnassignRequest) (UnassignResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := parseDate(req.ShiftDate); err != nil {
		return UnassignResponse{}, err
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return UnassignResponse{}, scheduleerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("unassign begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UnassignResponse{}, err
	}
	defer tx.Rollback()

	deleted, err := s.repo.WithTx(tx).DeleteAssignment(ctx, req.ShiftDate, req.LocationID, req.EmployeeID)
	if err != nil {
		s.logger.Error("unassign delete failed", zap.Error(err))
		return UnassignResponse{}, mapRepositoryError(err)
	}
	if deleted == nil {
		s.logger.Info("unassign found nothing to remove",
			zap.String("shift_date", req.ShiftDate),
			zap.Int("location_id", req.LocationID),
			zap.String("employee_id", req.EmployeeID),
		)
		return UnassignResponse{Removed: false}, nil
	}

	if err := s.enqueueAssignmentEvent(ctx, tx, events.AssignmentRemovedEventType, *deleted); err != nil {
		return UnassignResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("unassign commit failed", zap.String("request_id", rid), zap.Error(err))
		return UnassignResponse{}, err
	}
	s.invalidateCache(ctx)

	s.logger.Info("unassign employee success",
		zap.String("request_id", rid),
		zap.String("shift_date", req.ShiftDate),
		zap.String("employee_id", req.EmployeeID),
	)
	resp := mapEmployeeScheduleResponse(*deleted)
	return UnassignResponse{Removed: true, Assignment: &resp}, nil
}

func (s *service) enqueueAssignmentEvent(ctx context.Context, tx *sql.Tx, eventType string, row EmployeeSchedule) error {
	if s.outbox == nil {
		return nil
	}
	rid := contextutil.GetRequestID(ctx)
	event := events.AssignmentChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		ShiftDate:  row.ShiftDate.Format(DateLayout),
		LocationID: row.LocationID,
		EmployeeID: row.EmployeeID.String(),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal assignment event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee_schedule",
		AggregateID:   event.EmployeeID,
		EventType:     eventType,
		Topic:         events.ScheduleAssignmentTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("assignment outbox persist failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", event.EmployeeID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// CheckAssign runs the pre-assign rules for one employee against the
// assignments already held on the date, across all locations.
func (s *service) CheckAssign(ctx context.Context, q EligibilityQuery) (Eligibility, error) {
	if _, err := parseDate(q.ShiftDate); err != nil {
		return Eligibility{}, err
	}
	staff, err := s.validationStaff(ctx)
	if err != nil {
		return Eligibility{}, err
	}
	var member StaffMember
	found := false
	for _, m := range staff {
		if m.ID == q.EmployeeID {
			member, found = m, true
			break
		}
	}
	if !found {
		return Eligibility{}, scheduleerrors.ErrInvalidEmployee
	}

	existing, err := s.loadAssignments(Filter{StartDate: q.ShiftDate, EndDate: q.ShiftDate})(ctx)
	if err != nil {
		return Eligibility{}, err
	}
	return CanAssign(member, q.RoleID, q.LocationID, q.ShiftDate, existing), nil
}

// StaffLocation returns the location the employee belongs to.
func (s *service) StaffLocation(ctx context.Context, employeeID string) (int, error) {
	staff, err := s.validationStaff(ctx)
	if err != nil {
		return 0, err
	}
	for _, m := range staff {
		if m.ID == employeeID {
			return m.LocationID, nil
		}
	}
	return 0, scheduleerrors.ErrInvalidEmployee
}

func (s *service) EmployeesByRole(ctx context.Context, roleID, locationID int) ([]StaffResponse, error) {
	if roleID < 1 {
		return nil, scheduleerrors.ErrInvalidRoleID
	}
	rows, err := s.repo.ListStaffByRole(ctx, roleID, locationID)
	if err != nil {
		s.logger.Error("list employees by role failed", zap.Int("role_id", roleID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	out := make([]StaffResponse, len(rows))
	for i, r := range rows {
		out[i] = StaffResponse{
			UUID:       r.UUID.String(),
			FullName:   r.FullName,
			RoleID:     r.RoleID,
			LocationID: r.LocationID,
			IsFeatured: r.IsFeatured,
			Role:       StaffRoleResponse{Name: r.RoleName},
		}
	}
	return out, nil
}

// Validate returns one entry per date in [startDate, endDate] that has at
// least one assignment, in date order.
func (s *service) Validate(ctx context.Context, startDate, endDate string, locationID int) ([]DayValidation, error) {
	filter := Filter{StartDate: startDate, EndDate: endDate, LocationID: locationID}
	if startDate == "" || endDate == "" {
		return nil, scheduleerrors.ErrInvalidDate
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	assignments, err := s.loadAssignments(filter)(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := s.validationStaff(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.roleDirectory(ctx)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0)
	byDate := make(map[string][]Assignment)
	for _, a := range assignments {
		if _, ok := byDate[a.ShiftDate]; !ok {
			order = append(order, a.ShiftDate)
		}
		byDate[a.ShiftDate] = append(byDate[a.ShiftDate], a)
	}

	out := make([]DayValidation, 0, len(order))
	for _, date := range order {
		v := ValidateDay(s.catalog, date, byDate[date], staff, roles)
		out = append(out, DayValidation{
			Date:                   date,
			Assignments:            byDate[date],
			IsComplete:             v.IsComplete,
			MissingRoles:           v.MissingRoles,
			Conflicts:              v.Conflicts,
			CompletenessPercentage: v.CompletenessPercentage,
		})
	}
	return out, nil
}

// validationStaff is the staff set behind every conflict check. Fired
// employees stay in it so their remaining assignments are still resolved.
func (s *service) validationStaff(ctx context.Context) ([]StaffMember, error) {
	rows, err := s.repo.ListStaff(ctx, false)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapStaff(rows), nil
}

func (s *service) Week(ctx context.Context, ref time.Time, locationID int, admin bool) (Week, error) {
	if locationID < 0 {
		return Week{}, scheduleerrors.ErrInvalidLocationID
	}
	start := WeekStart(ref)
	parts := []string{start.Format(DateLayout), strconv.Itoa(locationID), strconv.FormatBool(admin)}

	return cachedRead(ctx, s, "week", parts, func(ctx context.Context) (Week, error) {
		filter := Filter{
			StartDate:  start.Format(DateLayout),
			EndDate:    start.AddDate(0, 0, daysInWeek-1).Format(DateLayout),
			LocationID: locationID,
		}
		assignments, err := s.loadAssignments(filter)(ctx)
		if err != nil {
			return Week{}, err
		}
		staff, err := s.validationStaff(ctx)
		if err != nil {
			return Week{}, err
		}
		roles, err := s.roleDirectory(ctx)
		if err != nil {
			return Week{}, err
		}

		var locationName string
		if locationID > 0 {
			locationName, err = s.repo.FindLocationAddress(ctx, locationID)
			if err != nil {
				s.logger.Error("week location lookup failed", zap.Int("location_id", locationID), zap.Error(err))
				return Week{}, mapRepositoryError(err)
			}
		}

		return BuildWeek(s.catalog, WeekInput{
			Reference:    start,
			Assignments:  assignments,
			Staff:        staff,
			Roles:        roles,
			LocationID:   locationID,
			LocationName: locationName,
			Admin:        admin,
		}), nil
	})
}

// ReleaseFrom removes every assignment the employee holds on or after
// fromDate, one transaction per row, and reports how many were removed.
func (s *service) ReleaseFrom(ctx context.Context, employeeID, fromDate string) (int, error) {
	if _, err := parseDate(fromDate); err != nil {
		return 0, err
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, scheduleerrors.ErrInvalidEmployeeID
	}

	rows, err := s.repo.ListAssignmentsFrom(ctx, employeeID, fromDate)
	if err != nil {
		s.logger.Error("release list assignments failed", zap.String("employee_id", employeeID), zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	removed := 0
	for _, r := range rows {
		res, err := s.Unassign(ctx, UnassignRequest{
			ShiftDate:  r.ShiftDate.Format(DateLayout),
			LocationID: r.LocationID,
			EmployeeID: employeeID,
		})
		if err != nil {
			return removed, err
		}
		if res.Removed {
			removed++
		}
	}

	s.logger.Info("released employee assignments",
		zap.String("employee_id", employeeID),
		zap.String("from_date", fromDate),
		zap.Int("removed", removed),
	)
	return removed, nil
}

func (s *service) roleDirectory(ctx context.Context) (RoleDirectory, error) {
	rows, err := s.repo.ListRoles(ctx)
	if err != nil {
		s.logger.Error("list roles failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	dir := make(RoleDirectory, len(rows))
	for _, r := range rows {
		dir[r.ID] = r.Name
	}
	return dir, nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, scheduleerrors.ErrInvalidDate
	}
	return t, nil
}

func validateFilter(f Filter) error {
	var start, end time.Time
	var err error
	if f.StartDate != "" {
		if start, err = parseDate(f.StartDate); err != nil {
			return err
		}
	}
	if f.EndDate != "" {
		if end, err = parseDate(f.EndDate); err != nil {
			return err
		}
	}
	if f.StartDate != "" && f.EndDate != "" && start.After(end) {
		return scheduleerrors.ErrInvalidDateRange
	}
	if f.LocationID < 0 {
		return scheduleerrors.ErrInvalidLocationID
	}
	if f.RoleID < 0 {
		return scheduleerrors.ErrInvalidRoleID
	}
	return nil
}

func filterKey(f Filter) []string {
	return []string{f.StartDate, f.EndDate, strconv.Itoa(f.LocationID), strconv.Itoa(f.RoleID)}
}

func mapShiftResponse(sh Shift) ShiftResponse {
	resp := ShiftResponse{
		ShiftDate:  sh.ShiftDate.Format(DateLayout),
		LocationID: sh.LocationID,
		Profit:     sh.Profit,
		StartedAt:  sh.StartedAt.UTC().Format(time.RFC3339),
	}
	if sh.AdminID != nil {
		resp.AdminID = sh.AdminID.String()
	}
	if sh.UpdatedAt != nil {
		resp.UpdatedAt = sh.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapEmployeeScheduleResponse(r EmployeeSchedule) EmployeeScheduleResponse {
	return EmployeeScheduleResponse{
		ShiftDate:  r.ShiftDate.Format(DateLayout),
		LocationID: r.LocationID,
		EmployeeID: r.EmployeeID.String(),
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapAssignments(rows []AssignmentRow) []Assignment {
	out := make([]Assignment, len(rows))
	for i, r := range rows {
		out[i] = Assignment{
			ShiftDate:  r.ShiftDate.Format(DateLayout),
			LocationID: r.LocationID,
			EmployeeID: r.EmployeeID.String(),
			RoleID:     r.RoleID,
		}
	}
	return out
}

func mapStaff(rows []StaffRow) []StaffMember {
	out := make([]StaffMember, len(rows))
	for i, r := range rows {
		out[i] = StaffMember{
			ID:         r.UUID.String(),
			FullName:   r.FullName,
			RoleID:     r.RoleID,
			LocationID: r.LocationID,
		}
	}
	return out
}
