package ingredient

import (
	"context"
	"strings"
	"time"

	ingredienterrors "go-resto/internal/ingredient/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]IngredientResponse, error)
	GetByID(ctx context.Context, id int) (IngredientResponse, error)
	Create(ctx context.Context, req CreateIngredientRequest) (IngredientResponse, error)
	Update(ctx context.Context, id int, req UpdateIngredientRequest) (IngredientResponse, error)
	Delete(ctx context.Context, id int) (IngredientResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("ingredient.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ingredient.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, filter Filter) ([]IngredientResponse, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list ingredients failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	out := make([]IngredientResponse, len(items))
	for i, ing := range items {
		out[i] = mapToResponse(ing)
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id int) (IngredientResponse, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IngredientResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ing), nil
}

func (s *service) Create(ctx context.Context, req CreateIngredientRequest) (IngredientResponse, error) {
	if err := checkAmounts(req.Price, req.Quantity); err != nil {
		return IngredientResponse{}, err
	}
	ing := &Ingredient{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if req.Price != nil {
		ing.Price = *req.Price
	}
	if req.Quantity != nil {
		ing.Quantity = *req.Quantity
	}
	if err := s.repo.Create(ctx, ing); err != nil {
		s.logger.Warn("create ingredient persist failed", zap.Error(err))
		return IngredientResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create ingredient success", zap.Int("ingredient_id", ing.ID))
	return mapToResponse(*ing), nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateIngredientRequest) (IngredientResponse, error) {
	if req.Name == nil && req.Description == nil && req.Price == nil && req.Quantity == nil {
		return IngredientResponse{}, ingredienterrors.ErrNoFieldsToUpdate
	}
	if err := checkAmounts(req.Price, req.Quantity); err != nil {
		return IngredientResponse{}, err
	}

	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IngredientResponse{}, mapRepositoryError(err)
	}
	if req.Name != nil {
		ing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		ing.Description = req.Description
	}
	if req.Price != nil {
		ing.Price = *req.Price
	}
	if req.Quantity != nil {
		ing.Quantity = *req.Quantity
	}
	now := time.Now().UTC()
	ing.UpdatedAt = &now

	if err := s.repo.Update(ctx, ing); err != nil {
		s.logger.Warn("update ingredient persist failed", zap.Int("ingredient_id", id), zap.Error(err))
		return IngredientResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*ing), nil
}

func (s *service) Delete(ctx context.Context, id int) (IngredientResponse, error) {
	ing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return IngredientResponse{}, mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete ingredient failed", zap.Int("ingredient_id", id), zap.Error(err))
		return IngredientResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("delete ingredient success", zap.Int("ingredient_id", id))
	return mapToResponse(*ing), nil
}

func checkAmounts(price, quantity *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return ingredienterrors.ErrInvalidPrice
	}
	if quantity != nil && quantity.IsNegative() {
		return ingredienterrors.ErrInvalidQuantity
	}
	return nil
}

func mapToResponse(ing Ingredient) IngredientResponse {
	resp := IngredientResponse{
		ID:          ing.ID,
		Name:        ing.Name,
		Description: ing.Description,
		Price:       ing.Price,
		Quantity:    ing.Quantity,
		CreatedAt:   ing.CreatedAt.Format(time.RFC3339),
	}
	if ing.UpdatedAt != nil {
		v := ing.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &v
	}
	return resp
}
