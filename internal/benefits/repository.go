package benefits

import "context"

// Repository is the benefit slice of the catalog read port, plus the stats
// snapshot writes owned by the recompute.
type Repository interface {

	// GetWeights returns the weight rows for the given answer ids.
	// Answers contributing to no benefit simply have no rows.
	GetWeights(ctx context.Context, org string, answerIDs []string) ([]AnswerBenefitWeight, error)

	// GetActiveCodes returns every active benefit code. The profile result
	// carries an entry for each of them, even when untouched.
	GetActiveCodes(ctx context.Context, org string) ([]BenefitCode, error)

	// GetAllWeights returns the full weight table for the recompute.
	GetAllWeights(ctx context.Context, org string) ([]AnswerBenefitWeight, error)

	// UpsertStats replaces the snapshot row for one benefit code.
	UpsertStats(ctx context.Context, org string, s StatsSnapshot) error
}
