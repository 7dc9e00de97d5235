package app

import (
	"database/sql"
	"net/http"

	"go-resto/internal/config"
	"go-resto/internal/middleware"
	"go-resto/internal/shared/connection"
	"go-resto/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections one process needs.
type Infra struct {
	Config *config.Config
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func connectInfra(cfg *config.Config, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra := &Infra{Config: cfg, GormDB: gormDB, SQLDB: sqlDB}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	}
	return infra, nil
}

// BuildApp connects infrastructure and returns a router with every module mounted.
// The returned cleanup closes the connections.
func BuildApp(cfg *config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	infra, err := connectInfra(cfg, true)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("database and redis connections established")

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.NewService()
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(logger),
		middleware.Metrics(m),
	)

	router.GET("/health", healthHandler(infra))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	if err := registerModules(router, infra, m, logger); err != nil {
		infra.Close()
		return nil, nil, err
	}
	return router, infra.Close, nil
}

func healthHandler(infra *Infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		status := gin.H{"database": "ok", "redis": "ok"}
		code := http.StatusOK

		if err := infra.SQLDB.PingContext(ctx); err != nil {
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if infra.Redis != nil {
			if err := infra.Redis.Ping(ctx).Err(); err != nil {
				status["redis"] = err.Error()
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{"ok": code == http.StatusOK, "data": status})
	}
}
