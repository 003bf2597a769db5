package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRetriever struct {
	result models.RetrievalResult
}

func (f *fakeRetriever) Retrieve(_ context.Context, _ string) models.RetrievalResult {
	return f.result
}

type fakePlanCompleter struct {
	prompt string
	plan   string
	err    error
}

func (f *fakePlanCompleter) CompletePlan(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.plan, f.err
}

func TestGeneratePlanBuildsPromptFromRetrieval(t *testing.T) {
	retriever := &fakeRetriever{
		result: models.RetrievalResult{
			models.SectionOverview: passages("diabetes overview"),
			models.SectionHerbs:    passages("gurmar", "turmeric"),
			models.SectionDiet:     passages("favor bitter vegetables"),
		},
	}
	llm := &fakePlanCompleter{plan: "the plan"}
	svc := NewPlanService(retriever, llm, zap.NewNop())

	resp, err := svc.GeneratePlan(context.Background(), "user-1", "Diabetes")
	require.NoError(t, err)

	assert.Contains(t, llm.prompt, "CONDITION: Diabetes")
	assert.Contains(t, llm.prompt, "DOSHA: Kapha")
	assert.Contains(t, llm.prompt, "diabetes overview")
	assert.Contains(t, llm.prompt, "gurmar\nturmeric")
	assert.Contains(t, llm.prompt, "favor bitter vegetables")
	assert.Contains(t, llm.prompt, "8. **When to Consult a Doctor**")

	// Sections with no passages render as the literal placeholder.
	assert.Contains(t, llm.prompt, "YOGA: None")
	assert.Contains(t, llm.prompt, "LIFESTYLE: None")
	assert.Contains(t, llm.prompt, "PRECAUTIONS: None")

	assert.Equal(t, "the plan", resp.Plan)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "Diabetes", resp.Condition)
	assert.Equal(t, []string{
		models.SectionOverview,
		models.SectionHerbs,
		models.SectionDiet,
	}, resp.SectionsPresent)
}

func TestGeneratePlanUnknownCondition(t *testing.T) {
	retriever := &fakeRetriever{result: models.RetrievalResult{}}
	llm := &fakePlanCompleter{plan: "generic plan"}
	svc := NewPlanService(retriever, llm, zap.NewNop())

	resp, err := svc.GeneratePlan(context.Background(), "user-1", "Migraine")
	require.NoError(t, err)

	assert.Contains(t, llm.prompt, "DOSHA: Unknown")
	assert.Empty(t, resp.SectionsPresent)

	// Every knowledge placeholder degrades to "None".
	assert.Equal(t, 6, strings.Count(llm.prompt, ": None"))
}

func TestGeneratePlanPropagatesCompletionError(t *testing.T) {
	retriever := &fakeRetriever{result: models.RetrievalResult{}}
	llm := &fakePlanCompleter{err: errors.New("model overloaded")}
	svc := NewPlanService(retriever, llm, zap.NewNop())

	_, err := svc.GeneratePlan(context.Background(), "user-1", "Anxiety")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}
