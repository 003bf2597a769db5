package repository

import (
	"context"
	"testing"

	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPointIDDeterministic(t *testing.T) {
	a := pointID(models.CollectionHerbs, "diabetes_herb_0")
	b := pointID(models.CollectionHerbs, "diabetes_herb_0")
	assert.Equal(t, a, b)

	// Same logical id in a different collection maps elsewhere.
	c := pointID(models.CollectionDiet, "diabetes_herb_0")
	assert.NotEqual(t, a, c)

	d := pointID(models.CollectionHerbs, "diabetes_herb_1")
	assert.NotEqual(t, a, d)
}

func TestUpsertRejectsUnknownCollection(t *testing.T) {
	repo := NewKnowledgeRepository(nil, 4, zap.NewNop())

	err := repo.Upsert(context.Background(), "recipes", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestUpsertRejectsMisalignedVectors(t *testing.T) {
	repo := NewKnowledgeRepository(nil, 4, zap.NewNop())

	entries := []models.KnowledgeEntry{{ID: "x", Condition: "Diabetes", Text: "t"}}
	err := repo.Upsert(context.Background(), models.CollectionHerbs, entries, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "misaligned")
}

func TestUpsertNoEntriesIsNoop(t *testing.T) {
	repo := NewKnowledgeRepository(nil, 4, zap.NewNop())

	err := repo.Upsert(context.Background(), models.CollectionHerbs, nil, nil)
	assert.NoError(t, err)
}

func TestSearchQueryFiltersByCondition(t *testing.T) {
	sql, args, err := searchByConditionQuery(models.CollectionHerbs, []float32{0.1, 0.2}, "Diabetes", 4)
	require.NoError(t, err)

	// The condition is an equality filter bound as a parameter, so a
	// Diabetes search can never surface another condition's rows.
	assert.Contains(t, sql, "FROM herbs")
	assert.Contains(t, sql, "WHERE condition = $1")
	require.Len(t, args, 2)
	assert.Equal(t, "Diabetes", args[0])

	assert.Contains(t, sql, "ORDER BY embedding <=> $2")
	assert.Contains(t, sql, "LIMIT 4")
}

func TestSearchQueryEmitsRequestedLimit(t *testing.T) {
	sql, _, err := searchByConditionQuery(models.CollectionConditions, []float32{0.1}, "Anxiety", 1)
	require.NoError(t, err)
	assert.Contains(t, sql, "LIMIT 1")
	assert.NotContains(t, sql, "LIMIT 4")
}

func TestSearchRejectsUnknownAndProgressCollections(t *testing.T) {
	repo := NewKnowledgeRepository(nil, 4, zap.NewNop())

	_, err := repo.SearchByCondition(context.Background(), "recipes", []float32{0.1}, "Diabetes", 1)
	assert.ErrorIs(t, err, ErrUnknownCollection)

	// Progress logs are append-only and never part of retrieval.
	_, err = repo.SearchByCondition(context.Background(), models.CollectionProgressLogs, []float32{0.1}, "Diabetes", 1)
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
