package rxpricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/lenses"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func newTestService() (*Service, *InMemoryRepository) {
	lensRepo := lenses.NewInMemoryRepository()
	lensRepo.Put(&lenses.Lens{
		Code:      "LN-BLUE-160",
		Name:      "Blue Cut 1.60",
		BrandLine: "ClearMax",
		Price:     d("2000"),
		LensIndex: lenses.Index16,
		Active:    true,
	})

	repo := NewInMemoryRepository()
	return NewService(repo, lensRepo), repo
}

func TestHighestOnlyChargesExactlyOneBand(t *testing.T) {
	service, repo := newTestService()

	repo.Add(PricingBand{
		LensCode: "LN-BLUE-160", Axis: AxisSphere, Label: "sph 2-4",
		Lower: d("2"), Upper: d("4"), LowerInclusive: true, Surcharge: d("300"),
	})
	repo.Add(PricingBand{
		LensCode: "LN-BLUE-160", Axis: AxisCylinder, Label: "cyl 1-3",
		Lower: d("1"), Upper: d("3"), LowerInclusive: true, Surcharge: d("450"),
	})

	rx := Prescription{
		RightSphere:   dp("-3.25"),
		RightCylinder: dp("-1.50"),
		LeftSphere:    dp("2.75"),
	}

	result, err := service.CalculateAddOnPricing(context.Background(), "", "LN-BLUE-160", rx, PolicyHighestOnly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.TotalAddOn.Equal(d("450")) {
		t.Errorf("expected total 450, got %s", result.TotalAddOn)
	}

	charged := 0
	chargedSum := decimal.Zero
	for _, m := range result.Matched {
		if m.Charged {
			charged++
			chargedSum = chargedSum.Add(m.Surcharge)
		}
	}
	if charged != 1 {
		t.Errorf("expected exactly one charged band, got %d", charged)
	}
	if !chargedSum.Equal(result.TotalAddOn) {
		t.Errorf("charged sum %s must equal total %s", chargedSum, result.TotalAddOn)
	}

	// Both eyes matched sphere, one eye matched cylinder.
	if len(result.Matched) != 3 {
		t.Errorf("expected 3 matched bands for transparency, got %d", len(result.Matched))
	}
}

func TestNoMatchingBandIsZeroNotError(t *testing.T) {
	service, repo := newTestService()

	repo.Add(PricingBand{
		LensCode: "LN-BLUE-160", Axis: AxisSphere, Label: "sph 4-6",
		Lower: d("4"), Upper: d("6"), LowerInclusive: true, Surcharge: d("600"),
	})

	rx := Prescription{RightSphere: dp("-1.00")}

	result, err := service.CalculateAddOnPricing(context.Background(), "", "LN-BLUE-160", rx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.TotalAddOn.IsZero() {
		t.Errorf("expected zero add-on, got %s", result.TotalAddOn)
	}
	if len(result.Matched) != 0 {
		t.Errorf("expected empty matched list, got %d", len(result.Matched))
	}
}

func TestLensWithNoBandsIsZero(t *testing.T) {
	service, _ := newTestService()

	result, err := service.CalculateAddOnPricing(
		context.Background(), "", "LN-BLUE-160",
		Prescription{RightSphere: dp("-5")}, PolicyHighestOnly,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.TotalAddOn.IsZero() {
		t.Errorf("expected zero add-on, got %s", result.TotalAddOn)
	}
}

func TestMissingLensIsNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CalculateAddOnPricing(
		context.Background(), "", "LN-GONE",
		Prescription{RightSphere: dp("-5")}, PolicyHighestOnly,
	)
	if !xerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUnsupportedPolicyIsValidation(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CalculateAddOnPricing(
		context.Background(), "", "LN-BLUE-160",
		Prescription{}, "ADDITIVE",
	)
	if !xerrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestOverlappingBandsPickHigherSurcharge(t *testing.T) {
	service, repo := newTestService()

	// Misconfigured overlap on the same axis: both contain 4.0.
	repo.Add(PricingBand{
		LensCode: "LN-BLUE-160", Axis: AxisSphere, Label: "sph 2-4",
		Lower: d("2"), Upper: d("4"), LowerInclusive: true, UpperInclusive: true, Surcharge: d("300"),
	})
	repo.Add(PricingBand{
		LensCode: "LN-BLUE-160", Axis: AxisSphere, Label: "sph 4-6",
		Lower: d("4"), Upper: d("6"), LowerInclusive: true, UpperInclusive: true, Surcharge: d("600"),
	})

	result, err := service.CalculateAddOnPricing(
		context.Background(), "", "LN-BLUE-160",
		Prescription{RightSphere: dp("4.00")}, PolicyHighestOnly,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.TotalAddOn.Equal(d("600")) {
		t.Errorf("overlap must resolve to higher surcharge, got %s", result.TotalAddOn)
	}
}
