package corpus

import (
	"strings"
	"testing"

	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCoversEveryKnowledgeCollection(t *testing.T) {
	require.Len(t, All, 6)
	for _, collection := range []string{
		models.CollectionConditions,
		models.CollectionHerbs,
		models.CollectionDiet,
		models.CollectionYoga,
		models.CollectionPrecautions,
		models.CollectionLifestyle,
	} {
		assert.NotEmpty(t, All[collection], collection)
	}
	assert.NotContains(t, All, models.CollectionProgressLogs)
}

func TestEntriesAreWellFormed(t *testing.T) {
	for collection, entries := range All {
		seen := make(map[string]bool, len(entries))
		for _, entry := range entries {
			assert.NotEmpty(t, entry.ID, "%s entry has no id", collection)
			assert.NotEmpty(t, entry.Text, "%s/%s has no text", collection, entry.ID)
			assert.NotEmpty(t, entry.Condition, "%s/%s has no condition", collection, entry.ID)
			assert.Contains(t, SupportedConditions, entry.Condition,
				"%s/%s names an unsupported condition", collection, entry.ID)

			assert.False(t, seen[entry.ID], "%s has duplicate id %s", collection, entry.ID)
			seen[entry.ID] = true
		}
	}
}

func TestEveryConditionHasFullCoverage(t *testing.T) {
	for condition := range SupportedConditions {
		for collection, entries := range All {
			found := false
			for _, entry := range entries {
				if entry.Condition == condition {
					found = true
					break
				}
			}
			assert.True(t, found, "%s has no entry for %s", collection, condition)
		}
	}
}

func TestHerbsCarryNameAndDisclaimer(t *testing.T) {
	for _, herb := range Herbs {
		assert.Equal(t, models.EntryTypeHerb, herb.Type, herb.ID)
		assert.NotEmpty(t, herb.Herb, "%s has no herb name", herb.ID)
		assert.True(t, strings.HasSuffix(herb.Text, herbDisclaimer),
			"%s is missing the practitioner disclaimer", herb.ID)
	}
}

func TestSupportedConditionsHaveDoshas(t *testing.T) {
	require.Len(t, SupportedConditions, 4)
	for condition, dosha := range SupportedConditions {
		assert.NotEmpty(t, dosha, condition)
	}
}
