package dto

type GeneratePlanRequest struct {
	Condition string `json:"condition" example:"Diabetes"`
}

// PlanResponse carries the assembled treatment plan. SectionsPresent
// names the retrieval sections that contributed real passages, so
// clients can tell a fully grounded plan from one padded with
// placeholders.
type PlanResponse struct {
	Condition       string   `json:"condition"`
	UserID          string   `json:"user_id"`
	Plan            string   `json:"plan"`
	SectionsPresent []string `json:"sections_present"`
}
