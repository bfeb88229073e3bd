package rxpricing

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/band"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/lenses"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

type Service struct {
	repo     Repository
	lensRepo lenses.Repository
}

func NewService(repo Repository, lensRepo lenses.Repository) *Service {
	return &Service{
		repo:     repo,
		lensRepo: lensRepo,
	}
}

// axisValue is one prescription magnitude to evaluate.
type axisValue struct {
	eye   string
	axis  string
	value decimal.Decimal
}

// CalculateAddOnPricing evaluates every configured band against the
// prescription, per eye and per axis, and combines matches under the given
// policy. HIGHEST_ONLY charges the single highest-surcharge match; every
// other match is reported uncharged.
func (s *Service) CalculateAddOnPricing(
	ctx context.Context,
	org string,
	lensCode string,
	rx Prescription,
	policy string,
) (*Result, error) {

	if policy == "" {
		policy = PolicyHighestOnly
	}
	if policy != PolicyHighestOnly {
		return nil, xerrors.NewValidation(
			"unsupported combination policy: "+policy,
			xerrors.FieldIssue{Field: "policy", Issue: "must be HIGHEST_ONLY"},
		)
	}

	// Lens existence is checked before any band evaluation.
	if _, err := s.lensRepo.GetLens(ctx, org, lensCode); err != nil {
		return nil, err
	}

	bands, err := s.repo.GetBands(ctx, org, lensCode)
	if err != nil {
		return nil, err
	}

	result := &Result{
		LensCode:   lensCode,
		Policy:     policy,
		TotalAddOn: decimal.Zero,
		Matched:    []MatchedBand{},
	}
	if len(bands) == 0 {
		return result, nil
	}

	byAxis := make(map[string][]PricingBand)
	for _, b := range bands {
		byAxis[b.Axis] = append(byAxis[b.Axis], b)
	}

	// Fixed eye/axis evaluation order keeps the charged pick deterministic.
	for _, av := range prescriptionValues(rx) {
		axisBands := byAxis[av.axis]
		if len(axisBands) == 0 {
			continue
		}

		matches := matchAxis(axisBands, av.value)
		if len(matches) > 1 {
			log.Printf(
				"[RXPRICING] ambiguous band config for lens=%s axis=%s value=%s: %d overlapping bands, higher surcharge wins",
				lensCode, av.axis, av.value.String(), len(matches),
			)
		}

		for _, m := range matches {
			result.Matched = append(result.Matched, MatchedBand{
				Label:     m.Label,
				Axis:      av.axis,
				Eye:       av.eye,
				Surcharge: m.Surcharge,
			})
		}
	}

	if len(result.Matched) == 0 {
		return result, nil
	}

	// HIGHEST_ONLY: exactly one charged band across both eyes and all axes.
	winner := 0
	for i := 1; i < len(result.Matched); i++ {
		mi, mw := result.Matched[i], result.Matched[winner]
		if mi.Surcharge.GreaterThan(mw.Surcharge) {
			winner = i
			continue
		}
		if mi.Surcharge.Equal(mw.Surcharge) && mi.Label < mw.Label {
			winner = i
		}
	}
	result.Matched[winner].Charged = true
	result.TotalAddOn = result.Matched[winner].Surcharge

	return result, nil
}

// prescriptionValues flattens the non-nil prescription magnitudes in a fixed
// right-then-left, sphere/cylinder/add order.
func prescriptionValues(rx Prescription) []axisValue {
	var vals []axisValue
	add := func(eye, axis string, v *decimal.Decimal) {
		if v != nil {
			vals = append(vals, axisValue{eye: eye, axis: axis, value: v.Abs()})
		}
	}
	add(EyeRight, AxisSphere, rx.RightSphere)
	add(EyeRight, AxisCylinder, rx.RightCylinder)
	add(EyeRight, AxisAdd, rx.RightAdd)
	add(EyeLeft, AxisSphere, rx.LeftSphere)
	add(EyeLeft, AxisCylinder, rx.LeftCylinder)
	add(EyeLeft, AxisAdd, rx.LeftAdd)
	return vals
}

// matchAxis returns the axis bands containing the magnitude, in catalog
// order.
func matchAxis(axisBands []PricingBand, magnitude decimal.Decimal) []PricingBand {
	generic := make([]band.Band, len(axisBands))
	for i, b := range axisBands {
		generic[i] = band.Band{
			Label:          b.Label,
			Lower:          b.Lower,
			Upper:          b.Upper,
			LowerInclusive: b.LowerInclusive,
			UpperInclusive: b.UpperInclusive,
			Amount:         b.Surcharge,
		}
	}

	var matched []PricingBand
	for i := range generic {
		if generic[i].Matches(magnitude) {
			matched = append(matched, axisBands[i])
		}
	}
	return matched
}
