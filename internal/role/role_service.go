package role

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	roleerrors "go-resto/internal/role/errors"
	"go-resto/internal/schedule"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	RoleAllKey  = "roles:all"
	roleListTTL = 30 * time.Minute
)

type Service interface {
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id int) (RoleResponse, error)
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	Update(ctx context.Context, id int, req UpdateRoleRequest) (RoleResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, RoleAllKey).Result(); err == nil {
			var resp []RoleResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(RoleAllKey, func() (interface{}, error) {
		roles, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("list roles failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		resp := mapToListResponse(roles)
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, RoleAllKey, data, roleListTTL).Err(); err != nil {
					s.logger.Warn("role cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]RoleResponse), nil
}

func (s *service) GetByID(ctx context.Context, id int) (RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*role), nil
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	if req.SalaryPerDay == nil {
		return RoleResponse{}, roleerrors.ErrSalaryRequired
	}
	if req.SalaryPerDay.IsNegative() {
		return RoleResponse{}, roleerrors.ErrNegativeSalary
	}
	s.logger.Debug("create role requested", zap.String("name", req.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	role := &Role{
		Name:         strings.TrimSpace(req.Name),
		SalaryPerDay: *req.SalaryPerDay,
	}
	if err := s.repo.WithTx(tx).Create(ctx, role); err != nil {
		s.logger.Warn("create role persist failed", zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create role commit failed", zap.Error(err))
		return RoleResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create role success", zap.Int("role_id", role.ID))
	return mapToResponse(*role), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRoleRequest) (RoleResponse, error) {
	if req.Name == nil && req.SalaryPerDay == nil {
		return RoleResponse{}, roleerrors.ErrNoFieldsToUpdate
	}
	if req.SalaryPerDay != nil && req.SalaryPerDay.IsNegative() {
		return RoleResponse{}, roleerrors.ErrNegativeSalary
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update role begin tx failed", zap.Error(err))
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	role, err := qtx.FindByID(ctx, id)
	if err != nil {
		return RoleResponse{}, mapRepositoryError(err)
	}
	if req.Name != nil {
		role.Name = strings.TrimSpace(*req.Name)
	}
	if req.SalaryPerDay != nil {
		role.SalaryPerDay = *req.SalaryPerDay
	}
	now := time.Now().UTC()
	role.UpdatedAt = &now

	if err := qtx.Update(ctx, role); err != nil {
		s.logger.Warn("update role persist failed", zap.Int("role_id", id), zap.Error(err))
		return RoleResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update role commit failed", zap.Error(err))
		return RoleResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("update role success", zap.Int("role_id", id))
	return mapToResponse(*role), nil
}

// invalidate drops the role list and bumps the schedule cache version,
// since cached schedule reads carry role names.
func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, RoleAllKey).Err(); err != nil {
		s.logger.Error("failed to invalidate role cache", zap.String("key", RoleAllKey), zap.Error(err))
	}
	if err := s.rdb.Incr(ctx, schedule.CacheVersionKey).Err(); err != nil {
		s.logger.Error("failed to invalidate schedule cache", zap.String("key", schedule.CacheVersionKey), zap.Error(err))
	}
}

func mapToResponse(role Role) RoleResponse {
	resp := RoleResponse{
		ID:           role.ID,
		Name:         role.Name,
		SalaryPerDay: role.SalaryPerDay.Round(2),
	}
	if !role.CreatedAt.IsZero() {
		resp.CreatedAt = role.CreatedAt.Format(time.RFC3339)
	}
	if role.UpdatedAt != nil {
		resp.UpdatedAt = role.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(roles []Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, r := range roles {
		res[i] = mapToResponse(r)
	}
	return res
}

