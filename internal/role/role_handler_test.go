package role_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-resto/internal/role"
	roleerrors "go-resto/internal/role/errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoleService struct {
	GetAllFn  func(ctx context.Context) ([]role.RoleResponse, error)
	GetByIDFn func(ctx context.Context, id int) (role.RoleResponse, error)
	CreateFn  func(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	UpdateFn  func(ctx context.Context, id int, req role.UpdateRoleRequest) (role.RoleResponse, error)
}

func (f *fakeRoleService) GetAll(ctx context.Context) ([]role.RoleResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeRoleService) GetByID(ctx context.Context, id int) (role.RoleResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeRoleService) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeRoleService) Update(ctx context.Context, id int, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	return f.UpdateFn(ctx, id, req)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRoleHandler_GetAll_Paginates(t *testing.T) {
	svc := &fakeRoleService{
		GetAllFn: func(context.Context) ([]role.RoleResponse, error) {
			return []role.RoleResponse{{ID: 1, Name: "Manager"}, {ID: 2, Name: "Cook"}, {ID: 3, Name: "Host"}}, nil
		},
	}
	r := setupRouter()
	r.GET("/roles", role.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roles?page=2&page_size=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []role.RoleResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Host", body.Data[0].Name)
	assert.Equal(t, int64(3), body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestRoleHandler_Create(t *testing.T) {
	t.Run("decimal salary from json number", func(t *testing.T) {
		svc := &fakeRoleService{
			CreateFn: func(_ context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
				require.NotNil(t, req.SalaryPerDay)
				assert.True(t, decimal.RequireFromString("99.95").Equal(*req.SalaryPerDay))
				return role.RoleResponse{ID: 4, Name: req.Name, SalaryPerDay: *req.SalaryPerDay}, nil
			},
		}
		r := setupRouter()
		r.POST("/roles", role.NewHandler(svc).Create)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(`{"name":"Barista","salary_per_day":99.95}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("name too short", func(t *testing.T) {
		r := setupRouter()
		r.POST("/roles", role.NewHandler(&fakeRoleService{}).Create)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(`{"name":"B","salary_per_day":1}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRoleHandler_GetByID(t *testing.T) {
	svc := &fakeRoleService{
		GetByIDFn: func(_ context.Context, id int) (role.RoleResponse, error) {
			assert.Equal(t, 42, id)
			return role.RoleResponse{}, roleerrors.ErrRoleNotFound
		},
	}
	r := setupRouter()
	r.GET("/roles/:id", role.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roles/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/roles/x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
