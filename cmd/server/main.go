package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angali/internal/config"
	"github.com/angali/internal/db"
	"github.com/angali/internal/geo"
	"github.com/angali/internal/handler"
	"github.com/angali/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env 仅用于本地开发，缺失不算错误
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// 按需补建超级管理员
	if err := db.EnsureUser(cfg.SuperRootUserName, cfg.SuperRootPassword); err != nil {
		logger.Fatal("failed to ensure root user", zap.Error(err))
	}

	resolver := buildResolver(cfg, logger)

	api := handler.NewAPI(db.DB, resolver, logger, cfg.UploadDir, cfg.UploadURLPath)
	r := router.SetupRouter(api, cfg.SessionSecret, logger)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// buildResolver 优先使用本地 MaxMind 数据库，未配置或打开失败时回退到 HTTP 接口。
func buildResolver(cfg config.AppConfig, logger *zap.Logger) geo.Resolver {
	if cfg.GeoIPDBPath != "" {
		if resolver, err := geo.NewMaxMindResolver(cfg.GeoIPDBPath); err == nil {
			logger.Info("using maxmind geolocation database", zap.String("path", cfg.GeoIPDBPath))
			return resolver
		} else {
			logger.Warn("failed to open maxmind database, falling back to http resolver", zap.Error(err))
		}
	}
	return geo.NewHTTPResolver(cfg.GeoAPIBaseURL)
}
