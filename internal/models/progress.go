package models

// ProgressLog is one weekly check-in for a (user, condition) pair.
// Logs are append-only; duplicate weeks may coexist and consumers sort
// by week and take them all.
type ProgressLog struct {
	UserID              string `json:"user_id"`
	Condition           string `json:"condition"`
	Week                int    `json:"week"`
	Timestamp           int64  `json:"timestamp"`
	EnergyLevel         string `json:"energy_level"`
	SymptomsImprovement string `json:"symptoms_improvement"`
	Digestion           string `json:"digestion"`
	SleepQuality        string `json:"sleep_quality"`
	Notes               string `json:"notes"`
}
