package rbac_test

import (
	"context"
	"errors"
	"testing"

	"go-resto/internal/domain"
	"go-resto/internal/rbac"
	rbacerrors "go-resto/internal/rbac/errors"
	"go-resto/internal/rbac/infra"
	rbacMock "go-resto/internal/rbac/mock"
	"go-resto/internal/rolecatalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newService(t *testing.T) (rbac.Service, *rbacMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := rbacMock.NewMockRepository(ctrl)

	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	require.NoError(t, rbac.LoadPolicy(enforcer, rolecatalog.Default()))

	return rbac.NewService(repo, enforcer), repo
}

func TestRBACService_Enforce(t *testing.T) {
	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{"Restaurant Manager", "shift", "delete", true},
		{"Restaurant Manager", "schedule", "assign", true},
		{"Restaurant Manager", "schedule", "view", true},
		{"Restaurant Manager", "role", "manage", true},
		{"Assistant Manager", "schedule", "edit", true},
		{"Assistant Manager", "shift", "create", true},
		{"Assistant Manager", "shift", "delete", false},
		{"Assistant Manager", "role", "manage", false},
		{"Line Cook", "schedule", "view", true},
		{"Line Cook", "schedule", "edit", false},
		{"Line Cook", "dish", "manage", false},
		{"Janitor", "schedule", "view", false},
	}
	for _, tt := range tests {
		t.Run(tt.role+" "+tt.resource+":"+tt.action, func(t *testing.T) {
			svc, repo := newService(t)
			ctx := context.Background()
			userID := uuid.New().String()

			repo.EXPECT().FindRoleName(ctx, userID).Return(tt.role, nil)

			allowed, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: userID, Resource: tt.resource, Action: tt.action})

			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_Enforce_UnknownEmployee(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	repo.EXPECT().FindRoleName(ctx, userID).Return("", gorm.ErrRecordNotFound)

	allowed, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: userID, Resource: "schedule", Action: "view"})

	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_Enforce_MalformedIDSkipsLookup(t *testing.T) {
	svc, _ := newService(t)

	allowed, err := svc.Enforce(context.Background(), domain.EnforceRequest{UserID: "not-a-uuid", Resource: "schedule", Action: "view"})

	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_Enforce_RepoError(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()
	userID := uuid.New().String()

	repo.EXPECT().FindRoleName(ctx, userID).Return("", errors.New("db down"))

	_, err := svc.Enforce(ctx, domain.EnforceRequest{UserID: userID, Resource: "schedule", Action: "view"})

	assert.EqualError(t, err, "db down")
}

func TestRBACService_Me(t *testing.T) {
	t.Run("assistant manager", func(t *testing.T) {
		svc, repo := newService(t)
		ctx := context.Background()
		userID := uuid.New().String()
		repo.EXPECT().FindRoleName(ctx, userID).Return("Assistant Manager", nil)

		me, err := svc.Me(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "Assistant Manager", me.Role)
		assert.True(t, me.IsAdmin)
		assert.True(t, me.Permissions["canViewSchedule"])
		assert.True(t, me.Permissions["canAssignEmployees"])
		assert.False(t, me.Permissions["canDeleteShifts"])
		assert.False(t, me.Permissions["canManageRoles"])
		assert.Len(t, me.Permissions, len(rbac.Permissions))
	})

	t.Run("dishwasher", func(t *testing.T) {
		svc, repo := newService(t)
		ctx := context.Background()
		userID := uuid.New().String()
		repo.EXPECT().FindRoleName(ctx, userID).Return("Dishwasher", nil)

		me, err := svc.Me(ctx, userID)

		require.NoError(t, err)
		assert.False(t, me.IsAdmin)
		assert.True(t, me.Permissions["canViewSchedule"])
		assert.False(t, me.Permissions["canEditSchedule"])
	})

	t.Run("no profile", func(t *testing.T) {
		svc, repo := newService(t)
		ctx := context.Background()
		userID := uuid.New().String()
		repo.EXPECT().FindRoleName(ctx, userID).Return("", gorm.ErrRecordNotFound)

		_, err := svc.Me(ctx, userID)

		assert.ErrorIs(t, err, rbacerrors.ErrProfileNotFound)
	})
}

func TestRBACService_ListPermissions(t *testing.T) {
	svc, _ := newService(t)

	perms := svc.ListPermissions()

	require.Len(t, perms, len(rbac.Permissions))
	assert.Equal(t, domain.PermissionResponse{Resource: "schedule", Action: "view", Label: "View schedule", Category: "Schedule"}, perms[0])
}
