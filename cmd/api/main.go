package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medscanapi/docs"
	"medscanapi/internal/config"
	"medscanapi/internal/database"
	"medscanapi/internal/database/migration"
	handlers "medscanapi/internal/http/handler"
	"medscanapi/internal/http/middleware"
	"medscanapi/internal/inference"
	"medscanapi/internal/otel"
	"medscanapi/internal/repository/postgres"
	"medscanapi/internal/service"
	"medscanapi/internal/storage"
)

// @title MedScan API
// @version 1.0
// @description Clinical portal backend: patient and radiologist portals over shared scan data, with external AI analysis and chat backends.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	// Tracing degrades to a noop provider when the collector is unreachable,
	// so a failed init is not fatal.
	shutdownTracing, err := otel.Init(context.Background(), loc)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				log.Printf("tracing shutdown: %v", err)
			}
		}()
	}

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := migration.EnsureMigrated(migrateCtx, db, loc, cfg.Database.Host); err != nil {
		cancel()
		log.Fatalf("failed to migrate database: %v", err)
	}
	cancel()

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	userRepo := postgres.NewUserPostgres(db)
	scanRepo := postgres.NewScanPostgres(db)
	predictionRepo := postgres.NewPredictionPostgres(db)
	reportRepo := postgres.NewReportPostgres(db)
	feedbackRepo := postgres.NewFeedbackPostgres(db)
	auditRepo := postgres.NewAuditPostgres(db)
	notificationRepo := postgres.NewNotificationPostgres(db)

	// Outbound AI clients
	modelClient := inference.NewModelClient(cfg.Inference)
	ragClient := inference.NewRAGClient(cfg.RAG)

	svcs := handlers.Services{
		Auth:    service.NewAuthService(userRepo, auditRepo, cfg.Auth),
		Patient: service.NewPatientService(userRepo, scanRepo, reportRepo, objStore),
		Radiologist: service.NewRadiologistService(
			userRepo, scanRepo, predictionRepo, reportRepo, feedbackRepo,
			auditRepo, notificationRepo, objStore, modelClient, cfg.Inference,
		),
		Chat: service.NewChatService(ragClient, cfg.RAG),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, []byte(cfg.Auth.JWTSecret), svcs)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
