package rbac_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-resto/internal/domain"
	"go-resto/internal/rbac"
	rbacerrors "go-resto/internal/rbac/errors"
	rbacMock "go-resto/internal/rbac/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return r
}

func TestRBACHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)
	h := rbac.NewHandler(svc)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Me(gomock.Any(), "emp-1").Return(rbac.MeResponse{
			Role:        "Restaurant Manager",
			IsAdmin:     true,
			Permissions: map[string]bool{"canViewSchedule": true},
		}, nil)

		r := setupRouter("emp-1")
		r.GET("/rbac/me", h.Me)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_admin":true`)
		assert.Contains(t, w.Body.String(), `"canViewSchedule":true`)
	})

	t.Run("no profile", func(t *testing.T) {
		svc.EXPECT().Me(gomock.Any(), "emp-2").Return(rbac.MeResponse{}, rbacerrors.ErrProfileNotFound)

		r := setupRouter("emp-2")
		r.GET("/rbac/me", h.Me)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/me", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRBACHandler_Enforce(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)
	h := rbac.NewHandler(svc)

	t.Run("checks the caller", func(t *testing.T) {
		svc.EXPECT().
			Enforce(gomock.Any(), domain.EnforceRequest{UserID: "emp-1", Resource: "shift", Action: "delete"}).
			Return(false, nil)

		r := setupRouter("emp-1")
		r.POST("/rbac/enforce", h.Enforce)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce",
			strings.NewReader(`{"resource":"shift","action":"delete"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"allowed":false`)
	})

	t.Run("missing action", func(t *testing.T) {
		r := setupRouter("emp-1")
		r.POST("/rbac/enforce", h.Enforce)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rbac/enforce", strings.NewReader(`{"resource":"shift"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestRBACHandler_ListPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rbacMock.NewMockService(ctrl)
	svc.EXPECT().ListPermissions().Return([]domain.PermissionResponse{{Resource: "schedule", Action: "view"}})

	r := setupRouter("emp-1")
	r.GET("/rbac/permissions", rbac.NewHandler(svc).ListPermissions)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resource":"schedule"`)
}
