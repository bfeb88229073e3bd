package benefits

import "time"

// BenefitCode is a customer-perceived benefit (durability, clarity, style...).
type BenefitCode struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// AnswerBenefitWeight maps one questionnaire answer to one benefit with a
// non-negative point weight. Many-to-many: an answer may feed several
// benefits with different weights.
type AnswerBenefitWeight struct {
	AnswerID    string `json:"answer_id"`
	BenefitCode string `json:"benefit_code"`
	Points      int    `json:"points"`
}

// StatsSnapshot is the recomputed per-benefit aggregate over the whole
// weight table. Whole rows are upserted so readers never observe a partial
// recompute.
type StatsSnapshot struct {
	BenefitCode string    `json:"benefit_code"`
	TotalPoints int       `json:"total_points"`
	AnswerCount int       `json:"answer_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}
