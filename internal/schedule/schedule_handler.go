package schedule

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go-resto/internal/domain"
	"go-resto/internal/middleware"
	scheduleerrors "go-resto/internal/schedule/errors"
	"go-resto/internal/shared/apperror"
	"go-resto/internal/shared/metrics"
	"go-resto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service     Service
	permissions middleware.RBACService
	metrics     *metrics.Service
	logger      *zap.Logger
}

func NewHandler(service Service, permissions middleware.RBACService, m *metrics.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("schedule.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.handler")
	}
	return &Handler{service: service, permissions: permissions, metrics: m, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("schedule request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" validation failed", zap.Error(err))
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, apperror.ValidationMessage(err), err.Error())
}

func (h *Handler) ListShifts(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.ListShifts(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Shifts fetched successfully", resp)
}

func (h *Handler) GetShift(c *gin.Context) {
	resp, err := h.service.GetShift(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateShift(c *gin.Context) {
	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "create shift", err)
		return
	}
	resp, err := h.service.CreateShift(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Shift created successfully", resp)
}

func (h *Handler) UpdateShift(c *gin.Context) {
	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "update shift", err)
		return
	}
	resp, err := h.service.UpdateShift(c.Request.Context(), c.Param("date"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteShift(c *gin.Context) {
	resp, err := h.service.DeleteShift(c.Request.Context(), c.Param("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListEmployeeSchedules(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.ListEmployeeSchedules(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if filter.LocationID, err = h.scopeLocation(c, filter.LocationID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp, err := h.service.ListAssignments(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveAssignment("assign", "invalid")
		h.writeBindError(c, "assign", err)
		return
	}
	h.logger.Debug("http assign",
		zap.String("shift_date", req.ShiftDate),
		zap.String("employee_id", req.EmployeeID),
	)

	resp, err := h.service.Assign(c.Request.Context(), req)
	if err != nil {
		h.metrics.ObserveAssignment("assign", outcome(err))
		h.writeServiceError(c, err)
		return
	}
	h.metrics.ObserveAssignment("assign", "success")
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Unassign(c *gin.Context) {
	var req UnassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveAssignment("unassign", "invalid")
		h.writeBindError(c, "unassign", err)
		return
	}

	resp, err := h.service.Unassign(c.Request.Context(), req)
	if err != nil {
		h.metrics.ObserveAssignment("unassign", outcome(err))
		h.writeServiceError(c, err)
		return
	}
	if resp.Removed {
		h.metrics.ObserveAssignment("unassign", "success")
	} else {
		h.metrics.ObserveAssignment("unassign", "noop")
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CheckAssign(c *gin.Context) {
	var q EligibilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeBindError(c, "check assign", err)
		return
	}

	resp, err := h.service.CheckAssign(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EmployeesByRole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("roleId"))
	if err != nil || roleID < 1 {
		h.writeServiceError(c, scheduleerrors.ErrInvalidRoleID)
		return
	}
	locationID, err := queryInt(c, "locationId", "location_id")
	if err != nil {
		h.writeServiceError(c, scheduleerrors.ErrInvalidLocationID)
		return
	}

	resp, err := h.service.EmployeesByRole(c.Request.Context(), roleID, locationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Validate(c *gin.Context) {
	locationID, err := queryInt(c, "locationId", "location_id")
	if err != nil {
		h.writeServiceError(c, scheduleerrors.ErrInvalidLocationID)
		return
	}
	resp, err := h.service.Validate(c.Request.Context(), c.Param("startDate"), c.Param("endDate"), locationID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Week(c *gin.Context) {
	week, ok := h.loadWeek(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, week, nil)
}

func (h *Handler) ExportWeek(c *gin.Context) {
	week, ok := h.loadWeek(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteWeekWorkbook(&buf, week); err != nil {
		h.logger.Error("export week workbook failed", zap.String("start_date", week.StartDate), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("schedule-%s.xlsx", week.StartDate)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) loadWeek(c *gin.Context) (Week, bool) {
	ref := time.Now().UTC()
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			h.writeServiceError(c, scheduleerrors.ErrInvalidDate)
			return Week{}, false
		}
		ref = parsed
	}
	locationID, err := queryInt(c, "location_id", "locationId")
	if err != nil {
		h.writeServiceError(c, scheduleerrors.ErrInvalidLocationID)
		return Week{}, false
	}

	if locationID, err = h.scopeLocation(c, locationID); err != nil {
		h.writeServiceError(c, err)
		return Week{}, false
	}

	week, err := h.service.Week(c.Request.Context(), ref, locationID, h.isAdmin(c))
	if err != nil {
		h.writeServiceError(c, err)
		return Week{}, false
	}
	return week, true
}

// isAdmin reports whether the caller may edit the schedule. Lookup failures
// fall back to the restricted view.
func (h *Handler) isAdmin(c *gin.Context) bool {
	return h.allowed(c, "schedule", "edit")
}

func (h *Handler) allowed(c *gin.Context, resource, action string) bool {
	if h.permissions == nil {
		return false
	}
	allowed, err := h.permissions.Enforce(c.Request.Context(), domain.EnforceRequest{
		UserID:   c.GetString("user_id"),
		Resource: resource,
		Action:   action,
	})
	if err != nil {
		h.logger.Warn("schedule permission check failed",
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false
	}
	return allowed
}

// scopeLocation narrows a location filter for callers without
// location:view_all. They see their own location, and asking for another one
// is forbidden. Without a permission service every location is visible.
func (h *Handler) scopeLocation(c *gin.Context, locationID int) (int, error) {
	if h.permissions == nil || h.allowed(c, "location", "view_all") {
		return locationID, nil
	}
	own, err := h.service.StaffLocation(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, scheduleerrors.ErrInvalidEmployee) {
			return 0, scheduleerrors.ErrLocationForbidden
		}
		return 0, err
	}
	if locationID != 0 && locationID != own {
		return 0, scheduleerrors.ErrLocationForbidden
	}
	return own, nil
}

func parseFilter(c *gin.Context) (Filter, error) {
	f := Filter{
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
	}
	var err error
	if f.LocationID, err = queryInt(c, "location_id", "locationId"); err != nil {
		return f, scheduleerrors.ErrInvalidLocationID
	}
	if f.RoleID, err = queryInt(c, "role_id", "roleId"); err != nil {
		return f, scheduleerrors.ErrInvalidRoleID
	}
	return f, nil
}

// queryInt reads the first present key. Absent means zero.
func queryInt(c *gin.Context, keys ...string) (int, error) {
	for _, k := range keys {
		raw := strings.TrimSpace(c.Query(k))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid %s", k)
		}
		return v, nil
	}
	return 0, nil
}

func outcome(err error) string {
	return strings.ToLower(apperror.ToHTTP(err).Code)
}
