package lenses

import (
	"context"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

type InMemoryRepository struct {
	byCode map[string]*Lens
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byCode: make(map[string]*Lens)}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) Put(l *Lens) {
	r.byCode[l.Code] = l
}

func (r *InMemoryRepository) GetLens(
	ctx context.Context,
	org string,
	code string,
) (*Lens, error) {

	l, ok := r.byCode[code]
	if !ok {
		return nil, xerrors.NewNotFound("lens", code)
	}
	return l, nil
}
