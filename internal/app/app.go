package app

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/middleware"
	"github.com/IdrisKulubi/huaweievent/internal/shared/connection"
	"github.com/IdrisKulubi/huaweievent/internal/shared/response"
)

// BuildApp connects the infrastructure and mounts every module on the
// router. Redis is optional; modules that use it degrade to uncached
// behaviour when REDIS_ADDR is unset.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb := connectRedisOptional()

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// Offline stations probe this to decide whether to queue locally.
	router.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	})

	return registerModules(router, sqlDB, gormDB, rdb)
}

func connectRedisOptional() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		zap.L().Warn("REDIS_ADDR not set, idempotency and report caching disabled")
		return nil
	}

	rdb, err := connection.ConnectRedisWithRetry(addr, 5)
	if err != nil {
		zap.L().Warn("redis unavailable, idempotency and report caching disabled", zap.Error(err))
		return nil
	}

	zap.L().Info("redis connection established")
	return rdb
}
