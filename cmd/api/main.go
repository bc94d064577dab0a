package main

// @title Tensora Count Backend API
// @version 1.0.0
// @description Backend for crowd-count aggregation: combines per-camera
// @description occupancy samples into a single smoothed time series per area,
// @description and manages the project/camera/area configuration behind it.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tensora-ai/cc-backend/docs"
	"github.com/tensora-ai/cc-backend/internal/config"
	httpDelivery "github.com/tensora-ai/cc-backend/internal/delivery/http"
	"github.com/tensora-ai/cc-backend/internal/delivery/http/handler"
	"github.com/tensora-ai/cc-backend/internal/pkg/logger"
	"github.com/tensora-ai/cc-backend/internal/repository/cache"
	"github.com/tensora-ai/cc-backend/internal/repository/postgres"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tensora Count Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	projectRepo := postgres.NewProjectRepository(db, log)
	predictionRepo := postgres.NewPredictionRepository(db, log)
	blobRepo := postgres.NewBlobRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	mappingUC := usecase.NewMappingUseCase(projectRepo, cacheRepo, log, cfg.Cache.MappingCacheTTL)
	if err := mappingUC.Warm(ctx); err != nil {
		log.Fatal("Failed to build camera-area mapping", zap.Error(err))
	}

	predictionUC := usecase.NewPredictionUseCase(predictionRepo, mappingUC, log)
	projectUC := usecase.NewProjectUseCase(projectRepo, mappingUC, log)
	countUC := usecase.NewCountUseCase(predictionUC, log)
	imageUC := usecase.NewImageUseCase(blobRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	predictionHandler := handler.NewPredictionHandler(predictionUC, log)
	projectHandler := handler.NewProjectHandler(projectUC, log)
	countHandler := handler.NewCountHandler(countUC, log)
	imageHandler := handler.NewImageHandler(imageUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		predictionHandler,
		projectHandler,
		countHandler,
		imageHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
