package role_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-resto/internal/role"
	roleerrors "go-resto/internal/role/errors"
	roleMock "go-resto/internal/role/mock"
	"go-resto/internal/schedule"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   role.Service
	repo      *roleMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := roleMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   role.NewService(db, repo, rdb),
		repo:      repo,
		redismock: redisMock,
	}
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

func salary(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestRoleService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached, _ := json.Marshal([]role.RoleResponse{{ID: 1, Name: "Manager", SalaryPerDay: decimal.NewFromInt(200)}})
		deps.redismock.ExpectGet(role.RoleAllKey).SetVal(string(cached))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "Manager", resp[0].Name)
		assert.True(t, decimal.NewFromInt(200).Equal(resp[0].SalaryPerDay))
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		roles := []role.Role{
			{ID: 1, Name: "Manager", SalaryPerDay: decimal.RequireFromString("180.5")},
			{ID: 2, Name: "Cook", SalaryPerDay: decimal.NewFromInt(120)},
		}
		deps.redismock.ExpectGet(role.RoleAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(roles, nil)
		data, _ := json.Marshal([]role.RoleResponse{
			{ID: 1, Name: "Manager", SalaryPerDay: decimal.RequireFromString("180.5")},
			{ID: 2, Name: "Cook", SalaryPerDay: decimal.NewFromInt(120)},
		})
		deps.redismock.ExpectSet(role.RoleAllKey, data, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(role.RoleAllKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestRoleService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *role.Role) error {
				assert.Equal(t, "Sommelier", r.Name)
				assert.True(t, decimal.RequireFromString("150.25").Equal(r.SalaryPerDay))
				r.ID = 20
				return nil
			})
		deps.redismock.ExpectDel(role.RoleAllKey).SetVal(1)
		deps.redismock.ExpectIncr(schedule.CacheVersionKey).SetVal(5)

		resp, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: " Sommelier ", SalaryPerDay: salary("150.25")})

		assert.NoError(t, err)
		assert.Equal(t, 20, resp.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("salary is required", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "Sommelier"})

		assert.ErrorIs(t, err, roleerrors.ErrSalaryRequired)
	})

	t.Run("negative salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "Sommelier", SalaryPerDay: salary("-1")})

		assert.ErrorIs(t, err, roleerrors.ErrNegativeSalary)
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Create(ctx, role.CreateRoleRequest{Name: "Cook", SalaryPerDay: salary("0")})

		assert.ErrorIs(t, err, roleerrors.ErrRoleAlreadyExists)
	})
}

func TestRoleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 2).Return(&role.Role{ID: 2, Name: "Cook", SalaryPerDay: decimal.NewFromInt(120)}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *role.Role) error {
				assert.Equal(t, "Line Cook", r.Name)
				assert.True(t, decimal.NewFromInt(120).Equal(r.SalaryPerDay))
				return nil
			})
		deps.redismock.ExpectDel(role.RoleAllKey).SetVal(1)
		deps.redismock.ExpectIncr(schedule.CacheVersionKey).SetVal(6)

		name := "Line Cook"
		resp, err := deps.service.Update(ctx, 2, role.UpdateRoleRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Line Cook", resp.Name)
		assert.NotEmpty(t, resp.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 99).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, role.UpdateRoleRequest{SalaryPerDay: salary("10")})

		assert.ErrorIs(t, err, roleerrors.ErrRoleNotFound)
	})

	t.Run("empty patch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, 2, role.UpdateRoleRequest{})

		assert.ErrorIs(t, err, roleerrors.ErrNoFieldsToUpdate)
	})
}
