package rxpricing

import "context"

type InMemoryRepository struct {
	bands map[string][]PricingBand
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{bands: make(map[string][]PricingBand)}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Add(b PricingBand) {
	r.bands[b.LensCode] = append(r.bands[b.LensCode], b)
}

func (r *InMemoryRepository) GetBands(
	ctx context.Context,
	org string,
	lensCode string,
) ([]PricingBand, error) {
	return r.bands[lensCode], nil
}
