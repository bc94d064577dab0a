package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/tensora-ai/cc-backend/internal/config"
	"github.com/tensora-ai/cc-backend/internal/delivery/http/handler"
	"github.com/tensora-ai/cc-backend/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP front of the count backend.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	predictionHandler *handler.PredictionHandler
	projectHandler    *handler.ProjectHandler
	countHandler      *handler.CountHandler
	imageHandler      *handler.ImageHandler
	healthHandler     *handler.HealthHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	predictionHandler *handler.PredictionHandler,
	projectHandler *handler.ProjectHandler,
	countHandler *handler.CountHandler,
	imageHandler *handler.ImageHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tensora Count Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		predictionHandler: predictionHandler,
		projectHandler:    projectHandler,
		countHandler:      countHandler,
		imageHandler:      imageHandler,
		healthHandler:     healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check stays unauthenticated for load balancers
	api.Get("/health", s.healthHandler.Health)

	api.Use(middleware.APIKey(s.config.Auth.APIKey))

	// Aggregation - the primary operation
	api.Post("/projects/:project_id/areas/:area_id/predictions/aggregate",
		s.predictionHandler.AggregateTimeSeries)

	// Raw sample ingest
	api.Post("/predictions", s.predictionHandler.InsertPrediction)

	// Legacy count API
	api.Post("/count/sum_predictions", s.countHandler.SumPredictions)

	// Project configuration
	api.Get("/projects", s.projectHandler.ListProjects)
	api.Post("/projects", s.projectHandler.CreateProject)
	api.Get("/projects/:project_id", s.projectHandler.GetProject)
	api.Put("/projects/:project_id", s.projectHandler.UpdateProject)
	api.Delete("/projects/:project_id", s.projectHandler.DeleteProject)

	// Cameras
	api.Post("/projects/:project_id/cameras", s.projectHandler.AddCamera)
	api.Put("/projects/:project_id/cameras/:camera_id", s.projectHandler.UpdateCamera)
	api.Delete("/projects/:project_id/cameras/:camera_id", s.projectHandler.DeleteCamera)

	// Areas
	api.Post("/projects/:project_id/areas", s.projectHandler.AddArea)
	api.Put("/projects/:project_id/areas/:area_id", s.projectHandler.UpdateArea)
	api.Delete("/projects/:project_id/areas/:area_id", s.projectHandler.DeleteArea)

	// Camera configs
	api.Post("/projects/:project_id/areas/:area_id/camera_configs",
		s.projectHandler.AddCameraConfig)
	api.Put("/projects/:project_id/areas/:area_id/camera_configs/:config_id",
		s.projectHandler.UpdateCameraConfig)
	api.Delete("/projects/:project_id/areas/:area_id/camera_configs/:config_id",
		s.projectHandler.DeleteCameraConfig)

	// Images and blobs
	api.Get("/images/:name", s.imageHandler.GetImage)
	api.Post("/projects/:project_id/images/lookup", s.imageHandler.LookupHeatmaps)
	api.Get("/blobs/:container/:name", s.imageHandler.GetBlob)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
