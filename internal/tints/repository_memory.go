package tints

import (
	"context"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

type InMemoryRepository struct {
	tints   map[string]*Tint
	entries map[string]*PriceEntry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		tints:   make(map[string]*Tint),
		entries: make(map[string]*PriceEntry),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) PutTint(t *Tint) {
	r.tints[t.ID] = t
}

func (r *InMemoryRepository) PutEntry(e *PriceEntry) {
	r.entries[e.TintID+"|"+e.LensIndex] = e
}

func (r *InMemoryRepository) GetTint(
	ctx context.Context,
	org string,
	id string,
) (*Tint, error) {
	t, ok := r.tints[id]
	if !ok {
		return nil, xerrors.NewNotFound("tint", id)
	}
	return t, nil
}

func (r *InMemoryRepository) GetPriceEntry(
	ctx context.Context,
	org string,
	id string,
	lensIndex string,
) (*PriceEntry, bool, error) {
	e, ok := r.entries[id+"|"+lensIndex]
	return e, ok, nil
}
