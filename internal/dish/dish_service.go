package dish

import (
	"context"
	"database/sql"
	"encoding/json"
	"sort"
	"strings"
	"time"

	disherrors "go-resto/internal/dish/errors"
	"go-resto/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CategoriesKey = "dishes:categories"
	categoriesTTL = time.Hour
)

var maxRating = decimal.NewFromInt(5)

type Service interface {
	List(ctx context.Context, filter Filter) ([]DishResponse, error)
	GetByID(ctx context.Context, id int) (DishResponse, error)
	Categories(ctx context.Context) ([]CategoryResponse, error)
	Create(ctx context.Context, req CreateDishRequest) (DishResponse, error)
	Update(ctx context.Context, id int, req UpdateDishRequest) (DishResponse, error)
	Delete(ctx context.Context, id int) (DishResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dish.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dish.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) List(ctx context.Context, filter Filter) ([]DishResponse, error) {
	dishes, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list dishes failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	out := make([]DishResponse, len(dishes))
	for i, d := range dishes {
		out[i] = mapToResponse(d)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id int) (DishResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DishResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) Categories(ctx context.Context) ([]CategoryResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CategoriesKey).Result(); err == nil {
			var resp []CategoryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CategoriesKey, func() (interface{}, error) {
		cats, err := s.repo.ListCategories(ctx)
		if err != nil {
			s.logger.Error("list categories failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		resp := make([]CategoryResponse, len(cats))
		for i, c := range cats {
			resp[i] = CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
		}
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CategoriesKey, data, categoriesTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]CategoryResponse), nil
}

func (s *service) Create(ctx context.Context, req CreateDishRequest) (DishResponse, error) {
	if err := checkAmounts(req.Price, req.Rating); err != nil {
		return DishResponse{}, err
	}
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create dish requested", zap.String("request_id", rid), zap.String("name", req.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create dish begin tx failed", zap.Error(err))
		return DishResponse{}, err
	}
	defer tx.Rollback()

	d := &Dish{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       decimal.Zero,
		Rating:      req.Rating,
		CategoryID:  req.CategoryID,
	}
	if req.Price != nil {
		d.Price = *req.Price
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, d); err != nil {
		s.logger.Warn("create dish persist failed", zap.Error(err))
		return DishResponse{}, mapRepositoryError(err)
	}
	if ids := uniqueIDs(req.Ingredients); len(ids) > 0 {
		if err := qtx.ReplaceIngredients(ctx, d.ID, ids); err != nil {
			s.logger.Warn("create dish ingredients failed", zap.Int("dish_id", d.ID), zap.Error(err))
			return DishResponse{}, mapRepositoryError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create dish commit failed", zap.Error(err))
		return DishResponse{}, err
	}

	s.logger.Info("create dish success", zap.String("request_id", rid), zap.Int("dish_id", d.ID))
	return s.GetByID(ctx, d.ID)
}

func (s *service) Update(ctx context.Context, id int, req UpdateDishRequest) (DishResponse, error) {
	if req.empty() {
		return DishResponse{}, disherrors.ErrNoFieldsToUpdate
	}
	if err := checkAmounts(req.Price, req.Rating); err != nil {
		return DishResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update dish begin tx failed", zap.Error(err))
		return DishResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	d, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DishResponse{}, mapRepositoryError(err)
	}
	if req.Name != nil {
		d.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		d.Description = req.Description
	}
	if req.Price != nil {
		d.Price = *req.Price
	}
	if req.Rating != nil {
		d.Rating = req.Rating
	}
	if req.CategoryID != nil {
		d.CategoryID = req.CategoryID
	}
	now := time.Now().UTC()
	d.UpdatedAt = &now

	if err := qtx.Update(ctx, d); err != nil {
		s.logger.Warn("update dish persist failed", zap.Int("dish_id", id), zap.Error(err))
		return DishResponse{}, mapRepositoryError(err)
	}
	if req.Ingredients != nil {
		if err := qtx.ReplaceIngredients(ctx, id, uniqueIDs(*req.Ingredients)); err != nil {
			s.logger.Warn("update dish ingredients failed", zap.Int("dish_id", id), zap.Error(err))
			return DishResponse{}, mapRepositoryError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update dish commit failed", zap.Error(err))
		return DishResponse{}, err
	}

	s.logger.Info("update dish success", zap.Int("dish_id", id))
	return s.GetByID(ctx, id)
}

// Delete removes the dish and its dish_contents rows together and returns
// the dish as it was.
func (s *service) Delete(ctx context.Context, id int) (DishResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete dish begin tx failed", zap.Error(err))
		return DishResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	d, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DishResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceIngredients(ctx, id, nil); err != nil {
		s.logger.Error("delete dish contents failed", zap.Int("dish_id", id), zap.Error(err))
		return DishResponse{}, mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete dish failed", zap.Int("dish_id", id), zap.Error(err))
		return DishResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete dish commit failed", zap.Error(err))
		return DishResponse{}, err
	}

	s.logger.Info("delete dish success", zap.Int("dish_id", id))
	return mapToResponse(*d), nil
}

func checkAmounts(price, rating *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return disherrors.ErrInvalidPrice
	}
	if rating != nil && (rating.IsNegative() || rating.GreaterThan(maxRating)) {
		return disherrors.ErrInvalidRating
	}
	return nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func mapToResponse(d Dish) DishResponse {
	resp := DishResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Rating:      d.Rating,
		CategoryID:  d.CategoryID,
		Ingredients: make([]IngredientResponse, len(d.Ingredients)),
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
	if d.Category != nil {
		resp.Category = &CategoryResponse{ID: d.Category.ID, Name: d.Category.Name, Description: d.Category.Description}
	}
	for i, ing := range d.Ingredients {
		resp.Ingredients[i] = IngredientResponse{ID: ing.ID, Name: ing.Name, Quantity: ing.Quantity}
	}
	if d.UpdatedAt != nil {
		v := d.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}
