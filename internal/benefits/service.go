package benefits

import (
	"context"
	"log"
	"sort"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/core"
)

type Service struct {
	repo Repository
}

var _ core.BenefitProfileReader = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CalculateProfile accumulates weighted points per benefit code for the
// selected questionnaire answers. Duplicate answer ids never double-count,
// accumulation order does not matter, and every active benefit code is
// present in the result (zero when untouched) so callers render a complete
// profile without nil checks.
func (s *Service) CalculateProfile(
	ctx context.Context,
	org string,
	answerIDs []string,
) (map[string]int, error) {

	unique := dedupe(answerIDs)

	weights, err := s.repo.GetWeights(ctx, org, unique)
	if err != nil {
		return nil, err
	}

	profile := make(map[string]int)
	for _, w := range weights {
		profile[w.BenefitCode] += w.Points
	}

	codes, err := s.repo.GetActiveCodes(ctx, org)
	if err != nil {
		return nil, err
	}
	for _, c := range codes {
		if _, ok := profile[c.Code]; !ok {
			profile[c.Code] = 0
		}
	}

	return profile, nil
}

// RecomputeStats rebuilds the per-benefit aggregate snapshot from the whole
// weight table. Admin-triggered or run periodically by the stats worker; the
// calculators never block on it and only ever read committed rows.
func (s *Service) RecomputeStats(ctx context.Context, org string) error {

	weights, err := s.repo.GetAllWeights(ctx, org)
	if err != nil {
		return err
	}

	totals := make(map[string]int)
	contributors := make(map[string]map[string]bool)
	for _, w := range weights {
		totals[w.BenefitCode] += w.Points
		if contributors[w.BenefitCode] == nil {
			contributors[w.BenefitCode] = make(map[string]bool)
		}
		contributors[w.BenefitCode][w.AnswerID] = true
	}

	codes := make([]string, 0, len(totals))
	for code := range totals {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		err := s.repo.UpsertStats(ctx, org, StatsSnapshot{
			BenefitCode: code,
			TotalPoints: totals[code],
			AnswerCount: len(contributors[code]),
		})
		if err != nil {
			return err
		}
	}

	log.Printf("[BENEFITS] recomputed stats for %d benefit codes (org=%q)", len(codes), org)
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
