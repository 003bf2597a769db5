package dto

// SeedResponse reports per-collection seeding outcomes. Status values
// are "seeded", "skipped" and "failed".
type SeedResponse struct {
	Collections map[string]string `json:"collections"`
}
