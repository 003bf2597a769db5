package service

import (
	"context"
	"fmt"
	"sync"

	"ayurrag/internal/models"

	"go.uber.org/zap"
)

// Embedder produces a query vector for a text, or nil when the
// embedding backend is unavailable.
type Embedder interface {
	EmbedText(ctx context.Context, text string) []float32
}

// ConditionSearcher runs an exact-condition-filtered similarity search
// over one collection.
type ConditionSearcher interface {
	SearchByCondition(ctx context.Context, collection string, queryVector []float32, condition string, topK int) ([]models.Passage, error)
}

// retrievalTask binds one collection to its result section and passage
// limit.
type retrievalTask struct {
	collection string
	topK       int
	section    string
}

// retrievalPlan is the fixed fan-out: every plan request queries all
// six knowledge collections, herbs with a deeper cut than the rest.
var retrievalPlan = []retrievalTask{
	{models.CollectionConditions, 1, models.SectionOverview},
	{models.CollectionHerbs, 4, models.SectionHerbs},
	{models.CollectionDiet, 1, models.SectionDiet},
	{models.CollectionYoga, 1, models.SectionYoga},
	{models.CollectionPrecautions, 1, models.SectionPrecautions},
	{models.CollectionLifestyle, 1, models.SectionLifestyle},
}

// RetrievalService embeds a condition query once and fans it out to
// the knowledge collections concurrently.
type RetrievalService struct {
	embedder Embedder
	searcher ConditionSearcher
	logger   *zap.Logger
}

func NewRetrievalService(embedder Embedder, searcher ConditionSearcher, logger *zap.Logger) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		searcher: searcher,
		logger:   logger,
	}
}

// Retrieve gathers knowledge passages for the condition. If the query
// cannot be embedded the result is empty and no searches run. A failed
// search degrades to an empty section; the other sections are
// unaffected.
func (s *RetrievalService) Retrieve(ctx context.Context, condition string) models.RetrievalResult {
	result := make(models.RetrievalResult, len(retrievalPlan))

	queryText := fmt.Sprintf("Ayurvedic treatment for %s", condition)
	queryVector := s.embedder.EmbedText(ctx, queryText)
	if len(queryVector) == 0 {
		s.logger.Warn("Query embedding unavailable, returning empty retrieval",
			zap.String("condition", condition),
		)
		return result
	}

	// Each task writes only its own slot, so no mutex is needed.
	sections := make([][]models.Passage, len(retrievalPlan))

	var wg sync.WaitGroup
	for i, task := range retrievalPlan {
		wg.Add(1)
		go func(i int, task retrievalTask) {
			defer wg.Done()

			passages, err := s.searcher.SearchByCondition(ctx, task.collection, queryVector, condition, task.topK)
			if err != nil {
				s.logger.Warn("Collection search failed",
					zap.String("collection", task.collection),
					zap.String("condition", condition),
					zap.Error(err),
				)
				return
			}
			sections[i] = passages
		}(i, task)
	}
	wg.Wait()

	for i, task := range retrievalPlan {
		result[task.section] = sections[i]
	}

	return result
}
