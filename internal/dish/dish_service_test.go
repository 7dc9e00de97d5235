package dish_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-resto/internal/dish"
	disherrors "go-resto/internal/dish/errors"
	dishMock "go-resto/internal/dish/mock"

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
	service   dish.Service
	repo      *dishMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	repo := dishMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   dish.NewService(db, repo, rdb),
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

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func storedDish(id int) *dish.Dish {
	cat := 2
	return &dish.Dish{
		ID:         id,
		Name:       "Risotto",
		Price:      decimal.RequireFromString("14.50"),
		Rating:     dec("4.5"),
		CategoryID: &cat,
		Category:   &dish.Category{ID: 2, Name: "Mains"},
		Ingredients: []dish.DishIngredient{
			{ID: 2, Name: "Rice", Quantity: decimal.NewFromInt(40)},
			{ID: 3, Name: "Parmesan", Quantity: decimal.NewFromInt(8)},
		},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDishService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - links unique ingredients in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *dish.Dish) error {
				assert.Equal(t, "Risotto", d.Name)
				assert.True(t, decimal.RequireFromString("14.50").Equal(d.Price))
				d.ID = 11
				return nil
			})
		deps.repo.EXPECT().ReplaceIngredients(ctx, 11, []int{2, 3}).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, 11).Return(storedDish(11), nil)

		cat := 2
		resp, err := deps.service.Create(ctx, dish.CreateDishRequest{
			Name:        " Risotto",
			Price:       dec("14.50"),
			Rating:      dec("4.5"),
			CategoryID:  &cat,
			Ingredients: []int{3, 2, 3},
		})

		assert.NoError(t, err)
		assert.Equal(t, 11, resp.ID)
		assert.Equal(t, "Mains", resp.Category.Name)
		assert.Len(t, resp.Ingredients, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - price defaults to zero and no ingredients", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *dish.Dish) error {
				assert.True(t, d.Price.IsZero())
				d.ID = 12
				return nil
			})
		deps.repo.EXPECT().FindByID(ctx, 12).Return(&dish.Dish{ID: 12, Name: "Bread"}, nil)

		resp, err := deps.service.Create(ctx, dish.CreateDishRequest{Name: "Bread"})

		assert.NoError(t, err)
		assert.Empty(t, resp.Ingredients)
		assert.NotNil(t, resp.Ingredients)
	})

	t.Run("validation - negative price", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, dish.CreateDishRequest{Name: "Bread", Price: dec("-0.01")})

		assert.ErrorIs(t, err, disherrors.ErrInvalidPrice)
	})

	t.Run("validation - rating above five", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, dish.CreateDishRequest{Name: "Bread", Rating: dec("5.1")})

		assert.ErrorIs(t, err, disherrors.ErrInvalidRating)
	})

	t.Run("error - unknown ingredient rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *dish.Dish) error {
				d.ID = 13
				return nil
			})
		deps.repo.EXPECT().
			ReplaceIngredients(ctx, 13, []int{999}).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "dish_contents_ingredient_id_fkey"})

		_, err := deps.service.Create(ctx, dish.CreateDishRequest{Name: "Mystery", Ingredients: []int{999}})

		assert.Same(t, disherrors.ErrInvalidReference, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDishService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty ingredient list clears links", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 11).Return(storedDish(11), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().ReplaceIngredients(ctx, 11, []int{}).Return(nil)
		deps.repo.EXPECT().FindByID(ctx, 11).Return(&dish.Dish{ID: 11, Name: "Risotto"}, nil)

		empty := []int{}
		resp, err := deps.service.Update(ctx, 11, dish.UpdateDishRequest{Ingredients: &empty})

		assert.NoError(t, err)
		assert.Empty(t, resp.Ingredients)
	})

	t.Run("field update leaves ingredients alone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 11).Return(storedDish(11), nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *dish.Dish) error {
				assert.True(t, decimal.NewFromInt(16).Equal(d.Price))
				assert.Equal(t, "Risotto", d.Name)
				assert.NotNil(t, d.UpdatedAt)
				return nil
			})
		deps.repo.EXPECT().FindByID(ctx, 11).Return(storedDish(11), nil)

		_, err := deps.service.Update(ctx, 11, dish.UpdateDishRequest{Price: dec("16")})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, 77).Return(nil, gorm.ErrRecordNotFound)

		name := "Soup"
		_, err := deps.service.Update(ctx, 77, dish.UpdateDishRequest{Name: &name})

		assert.ErrorIs(t, err, disherrors.ErrDishNotFound)
	})

	t.Run("empty patch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, 11, dish.UpdateDishRequest{})

		assert.ErrorIs(t, err, disherrors.ErrNoFieldsToUpdate)
	})
}

func TestDishService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	gomock.InOrder(
		deps.repo.EXPECT().FindByID(ctx, 11).Return(storedDish(11), nil),
		deps.repo.EXPECT().ReplaceIngredients(ctx, 11, gomock.Nil()).Return(nil),
		deps.repo.EXPECT().Delete(ctx, 11).Return(nil),
	)

	resp, err := deps.service.Delete(ctx, 11)

	assert.NoError(t, err)
	assert.Equal(t, "Risotto", resp.Name)
	assert.Equal(t, "2024-03-01T12:00:00Z", resp.CreatedAt)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDishService_Categories(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.redismock.ExpectGet(dish.CategoriesKey).RedisNil()
	deps.repo.EXPECT().ListCategories(ctx).Return([]dish.Category{{ID: 1, Name: "Desserts"}}, nil)
	data, _ := json.Marshal([]dish.CategoryResponse{{ID: 1, Name: "Desserts"}})
	deps.redismock.ExpectSet(dish.CategoriesKey, data, time.Hour).SetVal("OK")

	resp, err := deps.service.Categories(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Desserts", resp[0].Name)
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}
