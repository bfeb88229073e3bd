package tints

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

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	repo.PutTint(&Tint{
		ID:        "T-GREY-50",
		Name:      "Grey 50%",
		Kind:      KindTint,
		BasePrice: d("400"),
		Active:    true,
	})
	repo.PutEntry(&PriceEntry{
		TintID:        "T-GREY-50",
		LensIndex:     lenses.Index16,
		PriceAddition: d("250"),
	})
	return NewService(repo), repo
}

func TestConfiguredCombinationReturnsTotal(t *testing.T) {
	service, _ := newTestService()

	result, err := service.CalculateTintPrice(context.Background(), "", "T-GREY-50", lenses.Index16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Total.Equal(d("650")) {
		t.Errorf("expected total 650, got %s", result.Total)
	}
	if !result.AddOn.Equal(d("250")) {
		t.Errorf("expected add-on 250, got %s", result.AddOn)
	}
}

func TestMissingEntryIsValidationNotNotFound(t *testing.T) {
	service, _ := newTestService()

	// Tint exists but has no entry for INDEX_174.
	_, err := service.CalculateTintPrice(context.Background(), "", "T-GREY-50", lenses.Index174)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !xerrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if xerrors.IsNotFound(err) {
		t.Fatalf("catalog gap must not be NotFound")
	}
	if err.Error() != "No pricing configured for this tint/index combination" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestUnknownTintIsNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CalculateTintPrice(context.Background(), "", "T-NOPE", lenses.Index16)
	if !xerrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBadLensIndexIsValidation(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CalculateTintPrice(context.Background(), "", "T-GREY-50", "INDEX_900")
	if !xerrors.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
