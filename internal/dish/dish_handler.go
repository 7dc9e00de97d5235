package dish

import (
	"net/http"
	"strconv"

	disherrors "go-resto/internal/dish/errors"
	"go-resto/internal/shared/apperror"
	"go-resto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dish.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dish.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dish request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, apperror.ValidationMessage(err), err.Error())
}

func dishID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, disherrors.ErrInvalidDishID
	}
	return id, nil
}

func parseFilter(c *gin.Context) (Filter, error) {
	f := Filter{Search: c.Query("search")}
	var err error
	if f.MinPrice, err = response.DecimalQuery(c, "min_price"); err != nil {
		return Filter{}, err
	}
	if f.MaxPrice, err = response.DecimalQuery(c, "max_price"); err != nil {
		return Filter{}, err
	}
	if f.MinRating, err = response.DecimalQuery(c, "min_rating"); err != nil {
		return Filter{}, err
	}
	if f.MaxRating, err = response.DecimalQuery(c, "max_rating"); err != nil {
		return Filter{}, err
	}
	if f.CategoryID, err = response.IntQuery(c, "category_id"); err != nil {
		return Filter{}, err
	}
	return f, nil
}

func (h *Handler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Dishes fetched successfully", resp)
}

func (h *Handler) Categories(c *gin.Context) {
	resp, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Categories fetched successfully", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := dishID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Dish fetched successfully", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Dish created successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := dishID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}
	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Dish updated successfully", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := dishID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Dish deleted successfully", resp)
}
