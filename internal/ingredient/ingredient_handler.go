package ingredient

import (
	"net/http"
	"strconv"

	ingredienterrors "go-resto/internal/ingredient/errors"
	"go-resto/internal/shared/apperror"
	"go-resto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("ingredient.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ingredient.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("ingredient request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func ingredientID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, ingredienterrors.ErrInvalidIngredientID
	}
	return id, nil
}

func (h *Handler) List(c *gin.Context) {
	f := Filter{Search: c.Query("search")}
	bounds := []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
		{"min_quantity", &f.MinQuantity},
		{"max_quantity", &f.MaxQuantity},
	}
	for _, b := range bounds {
		v, err := response.DecimalQuery(c, b.name)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		*b.dst = v
	}

	resp, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Ingredients fetched successfully", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := ingredientID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Ingredient fetched successfully", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, apperror.ValidationMessage(err), err.Error())
		return
	}
	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Ingredient created successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := ingredientID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, apperror.ValidationMessage(err), err.Error())
		return
	}
	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Ingredient updated successfully", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := ingredientID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Ingredient deleted successfully", resp)
}
