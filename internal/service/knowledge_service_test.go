package service

import (
	"context"
	"fmt"
	"testing"

	"ayurrag/internal/corpus"
	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKnowledgeStore struct {
	seeded   map[string]bool
	upserted map[string]int
}

func (f *fakeKnowledgeStore) EnsureCollections(_ context.Context) error {
	return nil
}

func (f *fakeKnowledgeStore) IsSeeded(_ context.Context, collection string) bool {
	return f.seeded[collection]
}

func (f *fakeKnowledgeStore) Upsert(_ context.Context, collection string, entries []models.KnowledgeEntry, vectors [][]float32) error {
	if len(entries) != len(vectors) {
		return fmt.Errorf("misaligned upsert: %d != %d", len(entries), len(vectors))
	}
	if f.upserted == nil {
		f.upserted = make(map[string]int)
	}
	f.upserted[collection] = len(entries)
	return nil
}

type fakeBatchEmbedder struct {
	fail bool
}

func (f *fakeBatchEmbedder) EmbedTexts(_ context.Context, texts []string) [][]float32 {
	if f.fail {
		return nil
	}
	vectors := make([][]float32, len(texts))
	for i := range vectors {
		vectors[i] = []float32{float32(i)}
	}
	return vectors
}

func TestSeedWritesEveryCollection(t *testing.T) {
	store := &fakeKnowledgeStore{seeded: map[string]bool{}}
	svc := NewKnowledgeService(store, &fakeBatchEmbedder{}, zap.NewNop())

	resp, err := svc.Seed(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, resp.Collections, 6)
	for _, collection := range []string{
		models.CollectionConditions,
		models.CollectionHerbs,
		models.CollectionDiet,
		models.CollectionYoga,
		models.CollectionPrecautions,
		models.CollectionLifestyle,
	} {
		want := len(corpus.All[collection])
		assert.Equal(t, want, store.upserted[collection], collection)
		assert.Equal(t, fmt.Sprintf("seeded %d", want), resp.Collections[collection])
	}
}

func TestSeedSkipsSeededCollections(t *testing.T) {
	store := &fakeKnowledgeStore{seeded: map[string]bool{
		models.CollectionHerbs: true,
	}}
	svc := NewKnowledgeService(store, &fakeBatchEmbedder{}, zap.NewNop())

	resp, err := svc.Seed(context.Background(), false)
	require.NoError(t, err)

	assert.Zero(t, store.upserted[models.CollectionHerbs])
	assert.Equal(t,
		fmt.Sprintf("already seeded (%d entries)", len(corpus.Herbs)),
		resp.Collections[models.CollectionHerbs],
	)
	assert.Equal(t, len(corpus.Conditions), store.upserted[models.CollectionConditions])
}

func TestSeedForceReseeds(t *testing.T) {
	store := &fakeKnowledgeStore{seeded: map[string]bool{
		models.CollectionHerbs: true,
	}}
	svc := NewKnowledgeService(store, &fakeBatchEmbedder{}, zap.NewNop())

	resp, err := svc.Seed(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, len(corpus.Herbs), store.upserted[models.CollectionHerbs])
	assert.Equal(t, fmt.Sprintf("seeded %d", len(corpus.Herbs)), resp.Collections[models.CollectionHerbs])
}

func TestSeedReportsEmbeddingFailure(t *testing.T) {
	store := &fakeKnowledgeStore{seeded: map[string]bool{}}
	svc := NewKnowledgeService(store, &fakeBatchEmbedder{fail: true}, zap.NewNop())

	resp, err := svc.Seed(context.Background(), false)
	require.NoError(t, err)

	assert.Empty(t, store.upserted)
	for collection, status := range resp.Collections {
		assert.Equal(t, "embedding failed", status, collection)
	}
}
