package service

import (
	"context"
	"fmt"

	"ayurrag/internal/dto"
	"ayurrag/internal/models"

	"go.uber.org/zap"
)

// noDataReport is returned for an empty history without touching the
// LLM.
const noDataReport = "No data."

// progressStore is the append-only log collection.
type progressStore interface {
	Append(ctx context.Context, log models.ProgressLog, vector []float32) (string, error)
	List(ctx context.Context, userID, condition string) ([]models.ProgressLog, error)
}

// reportCompleter generates the trend report text.
type reportCompleter interface {
	CompleteReport(ctx context.Context, prompt string) (string, error)
}

// ProgressService records weekly check-ins and produces trend reports
// over the accumulated history.
type ProgressService struct {
	store    progressStore
	embedder Embedder
	llm      reportCompleter
	embedDim int
	logger   *zap.Logger
}

func NewProgressService(store progressStore, embedder Embedder, llm reportCompleter, embedDim int, logger *zap.Logger) *ProgressService {
	return &ProgressService{
		store:    store,
		embedder: embedder,
		llm:      llm,
		embedDim: embedDim,
		logger:   logger,
	}
}

// LogProgress appends one weekly log and returns a fresh report over
// the whole history including it. Duplicate weeks are accepted; the
// history keeps them all.
func (s *ProgressService) LogProgress(ctx context.Context, userID string, req dto.LogProgressRequest) (*dto.ProgressResponse, error) {
	log := models.ProgressLog{
		UserID:              userID,
		Condition:           sanitizeUTF8(req.Condition),
		Week:                req.Week,
		EnergyLevel:         sanitizeUTF8(req.EnergyLevel),
		SymptomsImprovement: sanitizeUTF8(req.SymptomsImprovement),
		Digestion:           sanitizeUTF8(req.Digestion),
		SleepQuality:        sanitizeUTF8(req.SleepQuality),
		Notes:               sanitizeUTF8(req.Notes),
	}

	// The log line doubles as embedding input so past weeks stay
	// searchable by similarity. A failed embedding degrades to a zero
	// vector rather than losing the log.
	vector := s.embedder.EmbedText(ctx, renderLogLine(log))
	if len(vector) == 0 {
		vector = make([]float32, s.embedDim)
	}

	logID, err := s.store.Append(ctx, log, vector)
	if err != nil {
		return nil, fmt.Errorf("failed to store progress log: %w", err)
	}

	logs, err := s.store.List(ctx, userID, log.Condition)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress history: %w", err)
	}

	report, err := s.report(ctx, userID, log.Condition, logs)
	if err != nil {
		return nil, err
	}

	return &dto.ProgressResponse{
		LogID:            logID,
		Week:             log.Week,
		Report:           report,
		TotalWeeksLogged: len(logs),
	}, nil
}

// GetProgress returns the full ascending-week history plus a report
// over it.
func (s *ProgressService) GetProgress(ctx context.Context, userID, condition string) (*dto.ProgressHistoryResponse, error) {
	logs, err := s.store.List(ctx, userID, condition)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress history: %w", err)
	}

	report, err := s.report(ctx, userID, condition, logs)
	if err != nil {
		return nil, err
	}

	return &dto.ProgressHistoryResponse{
		Condition: condition,
		Logs:      logs,
		Report:    report,
	}, nil
}

func (s *ProgressService) report(ctx context.Context, userID, condition string, logs []models.ProgressLog) (string, error) {
	if len(logs) == 0 {
		return noDataReport, nil
	}

	prompt := buildReportPrompt(userID, condition, logs)

	report, err := s.llm.CompleteReport(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate progress report: %w", err)
	}

	s.logger.Info("Progress report generated",
		zap.String("user_id", userID),
		zap.String("condition", condition),
		zap.Int("weeks", len(logs)),
	)
	return report, nil
}
