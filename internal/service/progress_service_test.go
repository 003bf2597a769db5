package service

import (
	"context"
	"errors"
	"testing"

	"ayurrag/internal/dto"
	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProgressStore struct {
	logs      []models.ProgressLog
	appended  []models.ProgressLog
	vectors   [][]float32
	listErr   error
	appendErr error
}

func (f *fakeProgressStore) Append(_ context.Context, log models.ProgressLog, vector []float32) (string, error) {
	if f.appendErr != nil {
		return "", f.appendErr
	}
	f.appended = append(f.appended, log)
	f.vectors = append(f.vectors, vector)
	f.logs = append(f.logs, log)
	return "log-id-1", nil
}

func (f *fakeProgressStore) List(_ context.Context, _, _ string) ([]models.ProgressLog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.logs, nil
}

type fakeReportCompleter struct {
	prompt string
	report string
	err    error
	calls  int
}

func (f *fakeReportCompleter) CompleteReport(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.report, f.err
}

func TestLogProgressStoresAndReports(t *testing.T) {
	store := &fakeProgressStore{}
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3, 0.4}}
	llm := &fakeReportCompleter{report: "trending well"}
	svc := NewProgressService(store, embedder, llm, 4, zap.NewNop())

	resp, err := svc.LogProgress(context.Background(), "user-1", dto.LogProgressRequest{
		Condition:           "Diabetes",
		Week:                3,
		EnergyLevel:         "improved",
		SymptomsImprovement: "less fatigue",
		Digestion:           "stable",
		SleepQuality:        "good",
		Notes:               "morning walks",
	})
	require.NoError(t, err)

	require.Len(t, store.appended, 1)
	assert.Equal(t, "user-1", store.appended[0].UserID)
	assert.Equal(t, 3, store.appended[0].Week)

	assert.Equal(t, "log-id-1", resp.LogID)
	assert.Equal(t, 3, resp.Week)
	assert.Equal(t, "trending well", resp.Report)
	assert.Equal(t, 1, resp.TotalWeeksLogged)

	// The report prompt lists metrics per week but never the identity
	// fields.
	assert.Contains(t, llm.prompt, "Week 3: energy_level: improved")
	assert.Contains(t, llm.prompt, "notes: morning walks")
	assert.Contains(t, llm.prompt, "Analyze logs for Diabetes (user-1)")
	assert.NotContains(t, llm.prompt, "user_id:")
	assert.NotContains(t, llm.prompt, "timestamp:")
}

func TestLogProgressFallsBackToZeroVector(t *testing.T) {
	store := &fakeProgressStore{}
	embedder := &fakeEmbedder{vector: nil}
	llm := &fakeReportCompleter{report: "ok"}
	svc := NewProgressService(store, embedder, llm, 8, zap.NewNop())

	_, err := svc.LogProgress(context.Background(), "user-1", dto.LogProgressRequest{
		Condition: "Anxiety",
		Week:      1,
	})
	require.NoError(t, err)

	require.Len(t, store.vectors, 1)
	assert.Len(t, store.vectors[0], 8, "a failed embedding must not lose the log")
}

func TestLogProgressAllowsDuplicateWeeks(t *testing.T) {
	store := &fakeProgressStore{}
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	llm := &fakeReportCompleter{report: "ok"}
	svc := NewProgressService(store, embedder, llm, 1, zap.NewNop())

	for i := 0; i < 2; i++ {
		resp, err := svc.LogProgress(context.Background(), "user-1", dto.LogProgressRequest{
			Condition: "Acidity",
			Week:      2,
		})
		require.NoError(t, err)
		assert.Equal(t, i+1, resp.TotalWeeksLogged)
	}

	assert.Len(t, store.appended, 2)
}

func TestGetProgressEmptyHistorySkipsLLM(t *testing.T) {
	store := &fakeProgressStore{}
	embedder := &fakeEmbedder{}
	llm := &fakeReportCompleter{report: "should not be used"}
	svc := NewProgressService(store, embedder, llm, 4, zap.NewNop())

	resp, err := svc.GetProgress(context.Background(), "user-1", "Thyroid")
	require.NoError(t, err)

	assert.Equal(t, "No data.", resp.Report)
	assert.Empty(t, resp.Logs)
	assert.Zero(t, llm.calls, "empty history must not reach the model")
}

func TestGetProgressReportsOverHistory(t *testing.T) {
	store := &fakeProgressStore{
		logs: []models.ProgressLog{
			{UserID: "user-1", Condition: "Diabetes", Week: 1, EnergyLevel: "low"},
			{UserID: "user-1", Condition: "Diabetes", Week: 2, EnergyLevel: "better"},
		},
	}
	embedder := &fakeEmbedder{}
	llm := &fakeReportCompleter{report: "improving"}
	svc := NewProgressService(store, embedder, llm, 4, zap.NewNop())

	resp, err := svc.GetProgress(context.Background(), "user-1", "Diabetes")
	require.NoError(t, err)

	assert.Equal(t, "improving", resp.Report)
	assert.Len(t, resp.Logs, 2)
	assert.Contains(t, llm.prompt, "Week 1: energy_level: low")
	assert.Contains(t, llm.prompt, "Week 2: energy_level: better")
}

func TestGetProgressPropagatesReportError(t *testing.T) {
	store := &fakeProgressStore{
		logs: []models.ProgressLog{{UserID: "user-1", Condition: "Diabetes", Week: 1}},
	}
	llm := &fakeReportCompleter{err: errors.New("model down")}
	svc := NewProgressService(store, &fakeEmbedder{}, llm, 4, zap.NewNop())

	_, err := svc.GetProgress(context.Background(), "user-1", "Diabetes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model down")
}
