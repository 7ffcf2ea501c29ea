package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/IdrisKulubi/huaweievent/internal/offline"
	"github.com/IdrisKulubi/huaweievent/internal/shared/apperror"
)

// The station binary runs on a gate device. It forwards verifications to
// the central API while the link is up and queues them locally when it is
// not. Queued records are reconciled by hand via export, never replayed.
func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		logger.Fatal("API_BASE_URL is required")
	}
	token := os.Getenv("STATION_TOKEN")
	if token == "" {
		logger.Fatal("STATION_TOKEN is required")
	}
	badge := os.Getenv("BADGE_NUMBER")
	if badge == "" {
		logger.Fatal("BADGE_NUMBER is required")
	}
	verifiedBy := os.Getenv("STATION_USER_ID")
	if verifiedBy == "" {
		logger.Fatal("STATION_USER_ID is required")
	}

	dataDir := envOr("DATA_DIR", filepath.Join("data", "station"))
	exportDir := envOr("EXPORT_DIR", filepath.Join("data", "exports"))

	store, err := offline.OpenStore(dataDir)
	if err != nil {
		logger.Fatal("open local queue failed", zap.Error(err))
	}
	defer store.Close()

	forwarder := offline.NewForwarder(baseURL, token)
	monitor := offline.NewMonitor(forwarder.Healthz, 15*time.Second, logger)
	service := offline.NewService(store, monitor, forwarder, badge, verifiedBy, exportDir, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	r := gin.Default()
	offline.NewHandler(service).RegisterRoutes(r)

	// Loopback only. The station talks to its own scanner UI, not the LAN.
	server := &http.Server{
		Addr:    "127.0.0.1:" + envOr("STATION_PORT", "8090"),
		Handler: r,
	}

	go func() {
		logger.Info("station running",
			zap.String("addr", server.Addr),
			zap.String("badge_number", badge),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("station shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
