package combos

import "context"

type InMemoryRepository struct {
	tiers []ComboTier
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Add(t ComboTier) {
	r.tiers = append(r.tiers, t)
}

func (r *InMemoryRepository) GetActiveTiers(
	ctx context.Context,
	org string,
) ([]ComboTier, error) {

	var out []ComboTier
	for _, t := range r.tiers {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}
