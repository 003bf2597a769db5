package main

import (
	"context"
	"flag"
	"log"

	"ayurrag/internal/repository"
	"ayurrag/internal/service"
	"ayurrag/pkg/config"
	"ayurrag/pkg/logger"
	"ayurrag/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	force := flag.Bool("force", false, "reseed collections that already hold data")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	knowledgeRepo := repository.NewKnowledgeRepository(db, cfg.RAG.EmbedDim, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, &cfg.RAG, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	knowledgeService := service.NewKnowledgeService(knowledgeRepo, llmService, appLogger)

	appLogger.Info("Starting knowledge base seeding", zap.Bool("force", *force))

	resp, err := knowledgeService.Seed(ctx, *force)
	if err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}

	for collection, status := range resp.Collections {
		appLogger.Info("Collection status",
			zap.String("collection", collection),
			zap.String("status", status),
		)
	}

	appLogger.Info("Knowledge base seeding completed")
}
