package tints

import (
	"context"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/lenses"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CalculateTintPrice resolves the price of a tint color or mirror coating on
// a given lens index. An unknown tint is NotFound (bad request); a known tint
// with no configured (tint, index) entry is a ValidationError (catalog gap,
// recoverable by an admin). The two stay distinguishable to the caller.
func (s *Service) CalculateTintPrice(
	ctx context.Context,
	org string,
	tintID string,
	lensIndex string,
) (*PriceResult, error) {

	if !lenses.ValidIndex(lensIndex) {
		return nil, xerrors.NewValidation(
			"unknown lens index: "+lensIndex,
			xerrors.FieldIssue{Field: "lens_index", Issue: "must be one of INDEX_156, INDEX_16, INDEX_167, INDEX_174"},
		)
	}

	tint, err := s.repo.GetTint(ctx, org, tintID)
	if err != nil {
		return nil, err
	}

	entry, ok, err := s.repo.GetPriceEntry(ctx, org, tintID, lensIndex)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, xerrors.NewValidation("No pricing configured for this tint/index combination")
	}

	return &PriceResult{
		TintID:    tint.ID,
		LensIndex: lensIndex,
		BasePrice: tint.BasePrice,
		AddOn:     entry.PriceAddition,
		Total:     tint.BasePrice.Add(entry.PriceAddition),
	}, nil
}
