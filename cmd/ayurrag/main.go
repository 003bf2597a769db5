package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ayurrag/internal/api"
	"ayurrag/internal/api/handlers"
	"ayurrag/internal/repository"
	"ayurrag/internal/service"
	"ayurrag/pkg/auth"
	"ayurrag/pkg/config"
	"ayurrag/pkg/logger"
	"ayurrag/pkg/postgres"

	"go.uber.org/zap"
)

// @title AyurRAG API
// @version 1.0
// @description Retrieval-augmented Ayurvedic treatment planning and progress tracking service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@ayurrag.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting AyurRAG service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, cfg.RAG.EmbedDim, appLogger)
	progressRepo := repository.NewProgressRepository(db, appLogger)

	// Prepare schema up front so the first request never races table
	// creation.
	if err := userRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare users schema", zap.Error(err))
	}
	if err := knowledgeRepo.EnsureCollections(ctx); err != nil {
		appLogger.Fatal("Failed to prepare vector collections", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, &cfg.RAG, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	retrievalService := service.NewRetrievalService(llmService, knowledgeRepo, appLogger)
	planService := service.NewPlanService(retrievalService, llmService, appLogger)
	progressService := service.NewProgressService(progressRepo, llmService, llmService, cfg.RAG.EmbedDim, appLogger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, llmService, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	planHandler := handlers.NewPlanHandler(planService, appLogger)
	progressHandler := handlers.NewProgressHandler(progressService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, planHandler, progressHandler, knowledgeHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
