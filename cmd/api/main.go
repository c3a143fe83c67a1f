package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"hireflow/ats-matcher/internal/config"
	"hireflow/ats-matcher/internal/handlers"
	"hireflow/ats-matcher/internal/services"
	"hireflow/ats-matcher/pkg/errors"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := buildLogger(cfg.Server.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("config loaded",
		zap.String("env", cfg.Server.Env),
		zap.Int64("max_file_size", cfg.Upload.MaxFileSize),
		zap.Duration("match_timeout", cfg.Matching.Timeout),
		zap.String("similarity_backend", cfg.Matching.SimilarityBackend),
	)

	// Similarity backend: lexical is the deterministic default; the
	// embedding backend needs a Gemini API key.
	scorer, err := buildSimilarityScorer(cfg)
	if err != nil {
		logger.Fatal("failed to initialize similarity scorer", zap.Error(err))
	}

	// Initialize services
	ingestor := services.NewIngestorService()
	extractor := services.NewFieldExtractor()
	skillMatcher := services.NewSkillMatcher(cfg.Matching.FuzzyThreshold)
	respMatcher := services.NewResponsibilityMatcher(scorer, cfg.Matching.ResponsibilityThreshold)
	scoringEngine := services.NewScoringEngine(scorer)
	feedback := services.NewFeedbackBuilder()
	limiter := services.NewMatchLimiter(cfg.Matching.Concurrency)

	orchestrator := services.NewOrchestrator(
		ingestor,
		extractor,
		skillMatcher,
		respMatcher,
		scoringEngine,
		feedback,
		limiter,
		cfg.Matching.Timeout,
		logger,
	)
	logger.Info("services initialized")

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(orchestrator, cfg.Upload.MaxFileSize, logger)
	parseHandler := handlers.NewParseHandler(ingestor, extractor, cfg.Upload.MaxFileSize, logger)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Matching API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize)*2 + 1024*1024,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "ATS Matching API",
			"version": "1.0.0",
			"features": []string{
				"CV parsing (PDF, DOCX, TXT)",
				"JD parsing (PDF, DOCX, TXT)",
				"Skills extraction",
				"Experience analysis",
				"CTC matching",
				"Responsibility matching",
				"Ephemeral processing",
			},
		})
	})

	api.Post("/ats/match", matchHandler.HandleMatch)
	api.Post("/ats/parse", parseHandler.HandleParse)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Matching API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/ats/match",
				"POST /api/ats/parse",
				"GET /api/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func buildSimilarityScorer(cfg *config.Config) (services.SimilarityScorer, error) {
	switch cfg.Matching.SimilarityBackend {
	case "embedding":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("SIMILARITY_BACKEND=embedding requires GEMINI_API_KEY")
		}
		return services.NewEmbeddingScorer(cfg.Gemini.APIKey)
	case "lexical", "":
		return services.NewLexicalScorer(), nil
	default:
		return nil, fmt.Errorf("unknown similarity backend: %s", cfg.Matching.SimilarityBackend)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"status": "error",
			"error":  e.Message,
		})
	}

	apiErr := errors.AsApiError(err)
	return c.Status(apiErr.StatusCode()).JSON(fiber.Map{
		"status": "error",
		"error":  apiErr.Message,
		"detail": apiErr.Detail,
	})
}
