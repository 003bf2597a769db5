package service

import (
	"testing"

	"ayurrag/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestJoinSection(t *testing.T) {
	assert.Equal(t, "None", joinSection(nil))
	assert.Equal(t, "None", joinSection([]models.Passage{{Text: ""}}))
	assert.Equal(t, "a\nb", joinSection([]models.Passage{{Text: "a"}, {Text: ""}, {Text: "b"}}))
}

func TestRenderLogLine(t *testing.T) {
	line := renderLogLine(models.ProgressLog{
		UserID:              "user-1",
		Condition:           "Diabetes",
		Week:                5,
		Timestamp:           1700000000,
		EnergyLevel:         "good",
		SymptomsImprovement: "noticeable",
		Digestion:           "stable",
		SleepQuality:        "deep",
		Notes:               "walking daily",
	})

	assert.Equal(t,
		"Week 5: energy_level: good, symptoms_improvement: noticeable, digestion: stable, sleep_quality: deep, notes: walking daily",
		line,
	)
}

func TestBuildReportPrompt(t *testing.T) {
	prompt := buildReportPrompt("user-1", "Acidity", []models.ProgressLog{
		{Week: 1, EnergyLevel: "low"},
		{Week: 2, EnergyLevel: "better"},
	})

	assert.Contains(t, prompt, "Analyze logs for Acidity (user-1):")
	assert.Contains(t, prompt, "\nWeek 1: energy_level: low")
	assert.Contains(t, prompt, "\nWeek 2: energy_level: better")
	assert.Contains(t, prompt, "Provide a brief trend analysis and recommendations.")
}

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "clean", sanitizeUTF8("clean"))
	assert.Equal(t, "ab", sanitizeUTF8("a\xffb"))
}
