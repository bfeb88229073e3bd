package audit

import "context"

type InMemoryRepository struct {
	records []*Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Insert(ctx context.Context, rec *Record) error {
	r.records = append(r.records, rec)
	return nil
}
