package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	vector  []float32
	queries []string
}

func (f *fakeEmbedder) EmbedText(_ context.Context, text string) []float32 {
	f.queries = append(f.queries, text)
	return f.vector
}

type searchCall struct {
	collection string
	condition  string
	topK       int
}

type fakeSearcher struct {
	mu       sync.Mutex
	results  map[string][]models.Passage
	failOn   map[string]bool
	calls    []searchCall
	lastVecs [][]float32
}

func (f *fakeSearcher) SearchByCondition(_ context.Context, collection string, queryVector []float32, condition string, topK int) ([]models.Passage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, searchCall{collection: collection, condition: condition, topK: topK})
	f.lastVecs = append(f.lastVecs, queryVector)
	if f.failOn[collection] {
		return nil, errors.New("search unavailable")
	}
	return f.results[collection], nil
}

func passages(texts ...string) []models.Passage {
	out := make([]models.Passage, len(texts))
	for i, t := range texts {
		out[i] = models.Passage{Condition: "Diabetes", Text: t}
	}
	return out
}

func TestRetrieveFansOutToAllCollections(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	searcher := &fakeSearcher{
		results: map[string][]models.Passage{
			models.CollectionConditions:  passages("overview text"),
			models.CollectionHerbs:       passages("herb a", "herb b", "herb c", "herb d"),
			models.CollectionDiet:        passages("diet text"),
			models.CollectionYoga:        passages("yoga text"),
			models.CollectionPrecautions: passages("precautions text"),
			models.CollectionLifestyle:   passages("lifestyle text"),
		},
	}
	svc := NewRetrievalService(embedder, searcher, zap.NewNop())

	result := svc.Retrieve(context.Background(), "Diabetes")

	require.Equal(t, []string{"Ayurvedic treatment for Diabetes"}, embedder.queries)
	require.Len(t, searcher.calls, 6)

	topKByCollection := make(map[string]int)
	for _, call := range searcher.calls {
		assert.Equal(t, "Diabetes", call.condition)
		topKByCollection[call.collection] = call.topK
	}
	assert.Equal(t, 4, topKByCollection[models.CollectionHerbs])
	assert.Equal(t, 1, topKByCollection[models.CollectionConditions])
	assert.Equal(t, 1, topKByCollection[models.CollectionLifestyle])

	assert.Len(t, result[models.SectionHerbs], 4)
	assert.Equal(t, "overview text", result[models.SectionOverview][0].Text)
	assert.Equal(t, "diet text", result[models.SectionDiet][0].Text)
	assert.Equal(t, "yoga text", result[models.SectionYoga][0].Text)
	assert.Equal(t, "precautions text", result[models.SectionPrecautions][0].Text)
	assert.Equal(t, "lifestyle text", result[models.SectionLifestyle][0].Text)
}

func TestRetrieveShortCircuitsWithoutEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{vector: nil}
	searcher := &fakeSearcher{}
	svc := NewRetrievalService(embedder, searcher, zap.NewNop())

	result := svc.Retrieve(context.Background(), "Anxiety")

	assert.Empty(t, result)
	assert.Empty(t, searcher.calls, "no searches should run without a query vector")
}

func TestRetrieveIsolatesFailedCollections(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.5}}
	searcher := &fakeSearcher{
		results: map[string][]models.Passage{
			models.CollectionConditions: passages("overview text"),
			models.CollectionDiet:       passages("diet text"),
		},
		failOn: map[string]bool{
			models.CollectionHerbs: true,
		},
	}
	svc := NewRetrievalService(embedder, searcher, zap.NewNop())

	result := svc.Retrieve(context.Background(), "Acidity")

	assert.Empty(t, result[models.SectionHerbs])
	assert.Len(t, result[models.SectionOverview], 1)
	assert.Len(t, result[models.SectionDiet], 1)
	assert.Len(t, searcher.calls, 6, "a failing collection must not stop the others")
}
