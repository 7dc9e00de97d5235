package rbac

import (
	"context"
	"errors"
	"sync"

	"go-resto/internal/domain"
	rbacerrors "go-resto/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	Me(ctx context.Context, employeeID string) (MeResponse, error)
	ListPermissions() []domain.PermissionResponse
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService expects an enforcer already seeded by LoadPolicy.
func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// Enforce resolves the employee's role and checks it against the policy. An
// unknown or malformed employee id is denied without error.
func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	role, err := s.roleOf(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, rbacerrors.ErrProfileNotFound) {
			return false, nil
		}
		return false, err
	}

	allowed, err := s.allowed(role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Me(ctx context.Context, employeeID string) (MeResponse, error) {
	role, err := s.roleOf(ctx, employeeID)
	if err != nil {
		return MeResponse{}, err
	}

	flags := make(map[string]bool, len(Permissions))
	for _, p := range Permissions {
		ok, err := s.allowed(role, p.Resource, p.Action)
		if err != nil {
			return MeResponse{}, err
		}
		flags[p.Flag] = ok
	}

	return MeResponse{
		Role:        role,
		IsAdmin:     flags["canEditSchedule"],
		Permissions: flags,
	}, nil
}

func (s *service) ListPermissions() []domain.PermissionResponse {
	out := make([]domain.PermissionResponse, len(Permissions))
	for i, p := range Permissions {
		out[i] = domain.PermissionResponse{
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		}
	}
	return out
}

func (s *service) roleOf(ctx context.Context, employeeID string) (string, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return "", rbacerrors.ErrProfileNotFound
	}
	role, err := s.repo.FindRoleName(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", rbacerrors.ErrProfileNotFound
	}
	if err != nil {
		s.logger.Error("rbac role lookup failed", zap.String("user_id", employeeID), zap.Error(err))
		return "", err
	}
	return role, nil
}

func (s *service) allowed(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enforcer.Enforce(role, resource, action)
}
