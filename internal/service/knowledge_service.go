package service

import (
	"context"
	"fmt"

	"ayurrag/internal/corpus"
	"ayurrag/internal/dto"
	"ayurrag/internal/models"

	"go.uber.org/zap"
)

// knowledgeStore is the seeding surface of the vector store.
type knowledgeStore interface {
	EnsureCollections(ctx context.Context) error
	IsSeeded(ctx context.Context, collection string) bool
	Upsert(ctx context.Context, collection string, entries []models.KnowledgeEntry, vectors [][]float32) error
}

// batchEmbedder embeds many texts in one call.
type batchEmbedder interface {
	EmbedTexts(ctx context.Context, texts []string) [][]float32
}

// KnowledgeService seeds the static Ayurvedic corpus into the vector
// store.
type KnowledgeService struct {
	store    knowledgeStore
	embedder batchEmbedder
	logger   *zap.Logger
}

func NewKnowledgeService(store knowledgeStore, embedder batchEmbedder, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		store:    store,
		embedder: embedder,
		logger:   logger,
	}
}

// seedOrder keeps seeding and its status report deterministic.
var seedOrder = []string{
	models.CollectionConditions,
	models.CollectionHerbs,
	models.CollectionDiet,
	models.CollectionYoga,
	models.CollectionPrecautions,
	models.CollectionLifestyle,
}

// Seed writes the corpus into every knowledge collection. Collections
// that already hold data are skipped unless force is set; a collection
// whose texts cannot be embedded is reported as failed and the rest
// continue.
func (s *KnowledgeService) Seed(ctx context.Context, force bool) (*dto.SeedResponse, error) {
	if err := s.store.EnsureCollections(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare collections: %w", err)
	}

	stats := make(map[string]string, len(seedOrder))
	for _, collection := range seedOrder {
		entries := corpus.All[collection]

		if !force && s.store.IsSeeded(ctx, collection) {
			stats[collection] = fmt.Sprintf("already seeded (%d entries)", len(entries))
			continue
		}

		texts := make([]string, len(entries))
		for i, entry := range entries {
			texts[i] = entry.Text
		}

		vectors := s.embedder.EmbedTexts(ctx, texts)
		if len(vectors) == 0 {
			stats[collection] = "embedding failed"
			continue
		}

		if err := s.store.Upsert(ctx, collection, entries, vectors); err != nil {
			s.logger.Error("Collection seeding failed",
				zap.String("collection", collection),
				zap.Error(err),
			)
			stats[collection] = "upsert failed"
			continue
		}

		stats[collection] = fmt.Sprintf("seeded %d", len(entries))
	}

	s.logger.Info("Knowledge base seeding finished", zap.Bool("force", force))

	return &dto.SeedResponse{Collections: stats}, nil
}
