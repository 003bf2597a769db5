package dto

import "ayurrag/internal/models"

type LogProgressRequest struct {
	Condition           string `json:"condition" example:"Diabetes"`
	Week                int    `json:"week" example:"3"`
	EnergyLevel         string `json:"energy_level" example:"improved"`
	SymptomsImprovement string `json:"symptoms_improvement" example:"less fatigue"`
	Digestion           string `json:"digestion" example:"stable"`
	SleepQuality        string `json:"sleep_quality" example:"good"`
	Notes               string `json:"notes" example:"started morning walks"`
}

// ProgressResponse is returned after logging a week: the stored log id
// plus a freshly generated report over the full history.
type ProgressResponse struct {
	LogID            string `json:"log_id"`
	Week             int    `json:"week"`
	Report           string `json:"report"`
	TotalWeeksLogged int    `json:"total_weeks_logged"`
}

type ProgressHistoryResponse struct {
	Condition string               `json:"condition"`
	Logs      []models.ProgressLog `json:"logs"`
	Report    string               `json:"report"`
}
