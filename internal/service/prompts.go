package service

import (
	"fmt"
	"strings"

	"ayurrag/internal/models"
)

// joinSection renders a retrieval section as newline-joined passage
// texts. Empty sections become the literal "None" so the prompt always
// has every placeholder filled.
func joinSection(passages []models.Passage) string {
	var texts []string
	for _, p := range passages {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	if len(texts) == 0 {
		return "None"
	}
	return strings.Join(texts, "\n")
}

// buildPlanPrompt assembles the treatment plan prompt from the
// condition, its dominant dosha and the retrieved knowledge sections.
func buildPlanPrompt(condition, dosha string, retrieved models.RetrievalResult) string {
	return fmt.Sprintf(`
CONDITION: %s
DOSHA: %s

== KNOWLEDGE ==
OVERVIEW: %s
HERBS: %s
DIET: %s
YOGA: %s
LIFESTYLE: %s
PRECAUTIONS: %s

Generate a treatment plan using these sections:
1. **Overview**
2. **Dosha Involvement**
3. **Herbal Remedies** (Include disclaimer)
4. **Diet Plan**
5. **Yoga & Pranayama**
6. **Lifestyle Advice**
7. **Precautions**
8. **When to Consult a Doctor**
`,
		condition,
		dosha,
		joinSection(retrieved[models.SectionOverview]),
		joinSection(retrieved[models.SectionHerbs]),
		joinSection(retrieved[models.SectionDiet]),
		joinSection(retrieved[models.SectionYoga]),
		joinSection(retrieved[models.SectionLifestyle]),
		joinSection(retrieved[models.SectionPrecautions]),
	)
}

// renderLogLine flattens one progress log into a single prompt line.
// Identity fields (user, condition, week, timestamp) stay out of the
// metric list; week is the line label instead.
func renderLogLine(log models.ProgressLog) string {
	metrics := []string{
		"energy_level: " + log.EnergyLevel,
		"symptoms_improvement: " + log.SymptomsImprovement,
		"digestion: " + log.Digestion,
		"sleep_quality: " + log.SleepQuality,
		"notes: " + log.Notes,
	}
	return fmt.Sprintf("Week %d: %s", log.Week, strings.Join(metrics, ", "))
}

// buildReportPrompt assembles the progress report prompt over the full
// log history, in ascending week order as given.
func buildReportPrompt(userID, condition string, logs []models.ProgressLog) string {
	var logText strings.Builder
	for _, log := range logs {
		logText.WriteString("\n")
		logText.WriteString(renderLogLine(log))
	}

	return fmt.Sprintf("Analyze logs for %s (%s):\n%s\n\nProvide a brief trend analysis and recommendations.",
		condition, userID, logText.String())
}
