package middleware

import (
	"go-resto/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Stack carries what feature route groups need to build their middleware chain.
type Stack struct {
	JWTSecret string
	Logger    *zap.Logger
	Redis     *redis.Client
	Limits    config.RateLimitConfig
}

// Protected authenticates the caller and scopes the request logger.
func (s Stack) Protected() []gin.HandlerFunc {
	logger := s.Logger
	if logger == nil {
		logger = zap.L()
	}
	return []gin.HandlerFunc{
		AuthMiddleware(s.JWTSecret),
		ExtractUserID(),
		ContextLogger(logger),
	}
}

func (s Stack) ReadLimit() gin.HandlerFunc {
	return RateLimitByUser(limitOf(s.Limits.ReadRPS), s.Limits.ReadBurst)
}

func (s Stack) WriteLimit() gin.HandlerFunc {
	return RateLimitByUser(limitOf(s.Limits.WriteRPS), s.Limits.WriteBurst)
}

func (s Stack) Idempotent() gin.HandlerFunc {
	return Idempotency(s.Redis, s.Logger)
}

func limitOf(rps float64) rate.Limit {
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}
