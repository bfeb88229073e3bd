package benefits

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	weights []AnswerBenefitWeight
	codes   []BenefitCode
	stats   map[string]StatsSnapshot
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{stats: make(map[string]StatsSnapshot)}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) AddWeight(w AnswerBenefitWeight) {
	r.weights = append(r.weights, w)
}

func (r *InMemoryRepository) AddCode(c BenefitCode) {
	r.codes = append(r.codes, c)
}

func (r *InMemoryRepository) GetWeights(
	ctx context.Context,
	org string,
	answerIDs []string,
) ([]AnswerBenefitWeight, error) {

	wanted := make(map[string]bool, len(answerIDs))
	for _, id := range answerIDs {
		wanted[id] = true
	}

	var out []AnswerBenefitWeight
	for _, w := range r.weights {
		if wanted[w.AnswerID] {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetActiveCodes(
	ctx context.Context,
	org string,
) ([]BenefitCode, error) {

	var out []BenefitCode
	for _, c := range r.codes {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetAllWeights(
	ctx context.Context,
	org string,
) ([]AnswerBenefitWeight, error) {
	return r.weights, nil
}

func (r *InMemoryRepository) UpsertStats(
	ctx context.Context,
	org string,
	s StatsSnapshot,
) error {
	s.UpdatedAt = time.Now()
	r.stats[s.BenefitCode] = s
	return nil
}
