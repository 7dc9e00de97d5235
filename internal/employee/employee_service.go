package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "go-resto/internal/employee/errors"
	"go-resto/internal/events"
	"go-resto/internal/messaging/kafka"
	"go-resto/internal/schedule"
	"go-resto/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id int) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Fire(ctx context.Context, id int) (EmployeeResponse, error)
	GetProfile(ctx context.Context, subject string) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, subject string, req UpdateProfileRequest) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error) {
	s.logger.Debug("list employees requested",
		zap.String("q", filter.Query),
		zap.Int("page", filter.Page),
		zap.Int("page_size", filter.PageSize),
	)
	empls, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	return mapToListResponse(empls), total, nil
}

func (s *service) GetByID(ctx context.Context, id int) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	email := normalizeEmail(req.Email)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", email),
		zap.Int("role_id", req.RoleID),
		zap.Int("location_id", req.LocationID),
	)

	hashed, err := hashPassword(req.Password)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		UUID:           uuid.New(),
		FullName:       strings.TrimSpace(req.FullName),
		Age:            req.Age,
		Email:          email,
		PasswordHashed: hashed,
		IsFeatured:     req.IsFeatured,
		RoleID:         req.RoleID,
		LocationID:     req.LocationID,
	}
	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Warn("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateSchedule(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if req.empty() {
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}
	s.logger.Debug("update employee requested", zap.Int("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if err := applyUpdate(empl, req); err != nil {
		s.logger.Error("update employee hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.UpdatedAt = ptrTime(s.now().UTC())

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Warn("update employee persist failed", zap.Int("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateSchedule(ctx)
	s.logger.Info("update employee success", zap.Int("employee_id", id))
	return mapToResponse(*empl), nil
}

// Fire takes the employee off the active roster and queues an
// employee_fired event in the same transaction. Firing an employee who is
// already off the roster changes nothing.
func (s *service) Fire(ctx context.Context, id int) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("fire employee requested", zap.String("request_id", rid), zap.Int("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("fire employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if !empl.IsFeatured {
		s.logger.Info("fire employee noop", zap.Int("employee_id", id))
		return mapToResponse(*empl), nil
	}

	now := s.now().UTC()
	empl.IsFeatured = false
	empl.UpdatedAt = ptrTime(now)
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("fire employee persist failed", zap.Int("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	event := events.EmployeeFiredEvent{
		EventType:     events.EmployeeFiredEventType,
		RequestID:     rid,
		EmployeeID:    empl.UUID.String(),
		EffectiveDate: now.Format(dateLayout),
		OccurredAt:    now,
	}
	if s.outbox != nil {
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   event.EmployeeID,
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("fire employee outbox persist failed",
				zap.String("employee_uuid", event.EmployeeID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateSchedule(ctx)
	s.logger.Info("fire employee success",
		zap.String("request_id", rid),
		zap.Int("employee_id", id),
		zap.String("effective_date", event.EffectiveDate),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetProfile(ctx context.Context, subject string) (EmployeeResponse, error) {
	empl, err := s.findProfile(ctx, subject)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) UpdateProfile(ctx context.Context, subject string, req UpdateProfileRequest) (EmployeeResponse, error) {
	if req.empty() {
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}
	empl, err := s.findProfile(ctx, subject)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if err := applyUpdate(empl, req.asUpdate()); err != nil {
		s.logger.Error("update profile hash password failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	empl.UpdatedAt = ptrTime(s.now().UTC())

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Warn("update profile persist failed", zap.String("subject", subject), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateSchedule(ctx)
	s.logger.Info("update profile success", zap.String("subject", subject))
	return mapToResponse(*empl), nil
}

func (s *service) findProfile(ctx context.Context, subject string) (*Employee, error) {
	if _, err := uuid.Parse(subject); err != nil {
		return nil, employeeerrors.ErrProfileNotFound
	}
	empl, err := s.repo.FindByUUID(ctx, subject)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped == employeeerrors.ErrEmployeeNotFound {
			return nil, employeeerrors.ErrProfileNotFound
		}
		return nil, mapped
	}
	return empl, nil
}

// invalidateSchedule bumps the schedule cache version; cached week and
// validation reads embed employee names, roles and locations.
func (s *service) invalidateSchedule(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(ctx, schedule.CacheVersionKey).Err(); err != nil {
		s.logger.Error("failed to invalidate schedule cache",
			zap.String("key", schedule.CacheVersionKey),
			zap.Error(err),
		)
	}
}

func applyUpdate(empl *Employee, req UpdateEmployeeRequest) error {
	if req.FullName != nil {
		empl.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Age != nil {
		empl.Age = req.Age
	}
	if req.Email != nil {
		empl.Email = normalizeEmail(*req.Email)
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		empl.PasswordHashed = hashed
	}
	if req.IsFeatured != nil {
		empl.IsFeatured = *req.IsFeatured
	}
	if req.RoleID != nil {
		empl.RoleID = *req.RoleID
	}
	if req.LocationID != nil {
		empl.LocationID = *req.LocationID
	}
	return nil
}

func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         empl.ID,
		UUID:       empl.UUID.String(),
		FullName:   empl.FullName,
		Age:        empl.Age,
		Email:      empl.Email,
		IsFeatured: empl.IsFeatured,
		RoleID:     empl.RoleID,
		LocationID: empl.LocationID,
		CreatedAt:  empl.CreatedAt.Format(time.RFC3339),
	}
	if empl.UpdatedAt != nil {
		v := empl.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
