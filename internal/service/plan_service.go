package service

import (
	"context"
	"fmt"

	"ayurrag/internal/corpus"
	"ayurrag/internal/dto"
	"ayurrag/internal/models"

	"go.uber.org/zap"
)

// conditionRetriever is the retrieval fan-out as the plan pipeline
// sees it.
type conditionRetriever interface {
	Retrieve(ctx context.Context, condition string) models.RetrievalResult
}

// planCompleter generates the plan text from an assembled prompt.
type planCompleter interface {
	CompletePlan(ctx context.Context, prompt string) (string, error)
}

// PlanService turns a condition into a structured treatment plan:
// retrieve knowledge, assemble the prompt, complete it.
type PlanService struct {
	retriever conditionRetriever
	llm       planCompleter
	logger    *zap.Logger
}

func NewPlanService(retriever conditionRetriever, llm planCompleter, logger *zap.Logger) *PlanService {
	return &PlanService{
		retriever: retriever,
		llm:       llm,
		logger:    logger,
	}
}

// sectionOrder fixes how sections are reported back to clients.
var sectionOrder = []string{
	models.SectionOverview,
	models.SectionHerbs,
	models.SectionDiet,
	models.SectionYoga,
	models.SectionPrecautions,
	models.SectionLifestyle,
}

// GeneratePlan builds a treatment plan for the user's condition. An
// unsupported condition still produces a plan; its dosha reads
// "Unknown" and retrieval comes back empty, leaving the model only
// placeholder knowledge.
func (s *PlanService) GeneratePlan(ctx context.Context, userID, condition string) (*dto.PlanResponse, error) {
	dosha, ok := corpus.SupportedConditions[condition]
	if !ok {
		dosha = "Unknown"
	}

	retrieved := s.retriever.Retrieve(ctx, condition)

	prompt := buildPlanPrompt(condition, dosha, retrieved)

	plan, err := s.llm.CompletePlan(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate treatment plan: %w", err)
	}

	var present []string
	for _, section := range sectionOrder {
		if len(retrieved[section]) > 0 {
			present = append(present, section)
		}
	}

	s.logger.Info("Treatment plan generated",
		zap.String("user_id", userID),
		zap.String("condition", condition),
		zap.String("dosha", dosha),
		zap.Int("sections_present", len(present)),
	)

	return &dto.PlanResponse{
		Condition:       condition,
		UserID:          userID,
		Plan:            plan,
		SectionsPresent: present,
	}, nil
}
