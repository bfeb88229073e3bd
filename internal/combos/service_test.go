package combos

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
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
	repo := NewInMemoryRepository()
	return NewService(repo, nil), repo
}

func TestListActiveTiersSortsByPriceThenCode(t *testing.T) {
	service, repo := newTestService()

	repo.Add(ComboTier{Code: "GOLD", Name: "Gold", EffectivePrice: d("4999"), Active: true})
	repo.Add(ComboTier{Code: "SILVER", Name: "Silver", EffectivePrice: d("2999"), Active: true})
	repo.Add(ComboTier{Code: "BRONZE", Name: "Bronze", EffectivePrice: d("2999"), Active: true})

	tiers, err := service.ListActiveTiers(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []string{tiers[0].Code, tiers[1].Code, tiers[2].Code}
	want := []string{"BRONZE", "SILVER", "GOLD"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestListActiveTiersExcludesInactive(t *testing.T) {
	service, repo := newTestService()

	repo.Add(ComboTier{Code: "LIVE", EffectivePrice: d("1999"), Active: true})
	repo.Add(ComboTier{Code: "RETIRED", EffectivePrice: d("999"), Active: false})

	tiers, err := service.ListActiveTiers(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiers) != 1 || tiers[0].Code != "LIVE" {
		t.Fatalf("inactive tier leaked into output: %v", tiers)
	}
}

func TestDecodeConstraintRoundTrip(t *testing.T) {
	c, err := DecodeConstraint([]byte(`{"kind":"MAX_LENS_PRICE","max_lens_price":"2500"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != ConstraintMaxLensPrice || !c.MaxLensPrice.Equal(d("2500")) {
		t.Errorf("bad decode: %+v", c)
	}

	if _, err := DecodeConstraint([]byte(`{"kind":"SOMETHING_ELSE"}`)); err == nil {
		t.Errorf("unknown kind must fail decoding")
	}

	empty, err := DecodeConstraint(nil)
	if err != nil || empty != nil {
		t.Errorf("empty blob means unconstrained, got %v / %v", empty, err)
	}
}

func TestConstraintAccepts(t *testing.T) {
	maxLens := &BenefitConstraint{Kind: ConstraintMaxLensPrice, MaxLensPrice: dp("2000")}
	if !maxLens.Accepts("Rayban", d("3000"), d("2000")) {
		t.Errorf("boundary lens price should be accepted")
	}
	if maxLens.Accepts("Rayban", d("3000"), d("2001")) {
		t.Errorf("lens above cap should be rejected")
	}

	brandIn := &BenefitConstraint{Kind: ConstraintFrameBrandIn, FrameBrands: []string{"Rayban", "Titan"}}
	if !brandIn.Accepts("Titan", d("0"), d("0")) {
		t.Errorf("listed brand should be accepted")
	}
	if brandIn.Accepts("Oakley", d("0"), d("0")) {
		t.Errorf("unlisted brand should be rejected")
	}

	var unconstrained *BenefitConstraint
	if !unconstrained.Accepts("Any", d("1"), d("1")) {
		t.Errorf("nil constraint accepts everything")
	}
}

func TestCheapestEligibleTier(t *testing.T) {
	service, repo := newTestService()

	repo.Add(ComboTier{
		Code: "BUDGET", EffectivePrice: d("1999"), Active: true,
		Benefits: []ComboBenefit{{
			Type: "LENS", Label: "Any lens up to 1500", MaxValue: d("1500"),
			Constraint: &BenefitConstraint{Kind: ConstraintMaxLensPrice, MaxLensPrice: dp("1500")},
		}},
	})
	repo.Add(ComboTier{
		Code: "PREMIUM", EffectivePrice: d("4999"), Active: true,
		Benefits: []ComboBenefit{{
			Type: "LENS", Label: "Any lens up to 4000", MaxValue: d("4000"),
			Constraint: &BenefitConstraint{Kind: ConstraintMaxLensPrice, MaxLensPrice: dp("4000")},
		}},
	})

	offer, ok, err := service.CheapestEligibleTier(context.Background(), "", "Titan", d("3000"), d("2000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || offer.Code != "PREMIUM" {
		t.Fatalf("expected PREMIUM (budget cap excludes the lens), got %v ok=%v", offer, ok)
	}

	_, ok, err = service.CheapestEligibleTier(context.Background(), "", "Titan", d("3000"), d("9000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("no tier should match a 9000 lens")
	}
}
