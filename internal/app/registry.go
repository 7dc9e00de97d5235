package app

import (
	"go-resto/internal/auth"
	"go-resto/internal/config"
	"go-resto/internal/dish"
	"go-resto/internal/employee"
	"go-resto/internal/ingredient"
	"go-resto/internal/messaging/kafka"
	"go-resto/internal/middleware"
	"go-resto/internal/rbac"
	"go-resto/internal/rbac/infra"
	"go-resto/internal/restaurant"
	"go-resto/internal/role"
	"go-resto/internal/rolecatalog"
	"go-resto/internal/schedule"
	"go-resto/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	deps *Infra,
	m *metrics.Service,
	logger *zap.Logger,
) error {
	cfg := deps.Config

	catalog, err := rolecatalog.Load(cfg.Schedule.RoleCatalogFile)
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(deps.GormDB)
	rbacRepo := rbac.NewRepository(deps.GormDB)
	employeeRepo := employee.NewRepository(deps.GormDB)
	roleRepo := role.NewRepository(deps.GormDB)
	restaurantRepo := restaurant.NewRepository(deps.GormDB)
	dishRepo := dish.NewRepository(deps.GormDB)
	ingredientRepo := ingredient.NewRepository(deps.GormDB)
	scheduleRepo := schedule.NewRepository(deps.GormDB)
	outboxRepo := kafka.NewOutboxRepository(deps.SQLDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	if err := rbac.LoadPolicy(enforcer, catalog); err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWT, logger)
	employeeService := employee.NewService(deps.SQLDB, employeeRepo, outboxRepo, deps.Redis, logger)
	roleService := role.NewService(deps.SQLDB, roleRepo, deps.Redis, logger)
	restaurantService := restaurant.NewService(restaurantRepo, deps.Redis, logger)
	dishService := dish.NewService(deps.SQLDB, dishRepo, deps.Redis, logger)
	ingredientService := ingredient.NewService(ingredientRepo, logger)
	scheduleService := schedule.NewService(
		deps.SQLDB,
		scheduleRepo,
		outboxRepo,
		deps.Redis,
		catalog,
		cfg.Schedule.CacheTTL,
		m,
		logger,
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(
		authService,
		cfg.Env == config.EnvProduction,
		int(cfg.JWT.AccessTTL.Seconds()),
		int(cfg.JWT.RefreshTTL.Seconds()),
		logger,
	)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	roleHandler := role.NewHandler(roleService, logger)
	restaurantHandler := restaurant.NewHandler(restaurantService, logger)
	dishHandler := dish.NewHandler(dishService, logger)
	ingredientHandler := ingredient.NewHandler(ingredientService, logger)
	scheduleHandler := schedule.NewHandler(scheduleService, rbacService, m, logger)

	stack := middleware.Stack{
		JWTSecret: cfg.JWT.Secret,
		Logger:    logger,
		Redis:     deps.Redis,
		Limits:    cfg.RateLimit,
	}

	// --- Routes Registration ---
	api := router.Group(cfg.APIPrefix)
	{
		auth.RegisterRoutes(api, authHandler)
		rbac.RegisterRoutes(api, rbacHandler, stack)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService, stack)
		employee.RegisterRoutes(api, employeeHandler, rbacService, stack)
		role.RegisterRoutes(api, roleHandler, rbacService, stack)
		restaurant.RegisterRoutes(api, restaurantHandler, stack)
		dish.RegisterRoutes(api, dishHandler, rbacService, stack)
		ingredient.RegisterRoutes(api, ingredientHandler, rbacService, stack)
	}

	logger.Info("modules registered", zap.Int("catalog_roles", catalog.Len()))
	return nil
}
