package audit

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/offers"
)

func TestRecordPersistsFullPayload(t *testing.T) {
	repo := NewInMemoryRepository()
	recorder := NewRecorder(repo, nil)

	breakdown := &offers.OfferBreakdown{
		FrameBasePrice:    decimal.NewFromInt(3000),
		LensBasePrice:     decimal.NewFromInt(2000),
		FirstPairSubtotal: decimal.NewFromInt(5000),
		FinalTotal:        decimal.NewFromInt(4500),
		Lines: []offers.RuleLine{
			{Rule: "STUDENT category discount", Amount: decimal.NewFromInt(500), Applied: true},
		},
	}

	err := recorder.Record(context.Background(), "org-1", offers.OfferRequest{
		Frame: offers.FrameSelection{Brand: "Titan", Price: decimal.NewFromInt(3000)},
		Lens:  offers.LensSelection{Code: "LN-1", Price: decimal.NewFromInt(2000)},
	}, breakdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected one record, got %d", len(repo.records))
	}

	rec := repo.records[0]
	if rec.ID == "" {
		t.Errorf("record must carry a generated id")
	}
	if rec.OrganizationID != "org-1" {
		t.Errorf("expected org-1, got %s", rec.OrganizationID)
	}
	if !rec.FinalTotal.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected final total 4500, got %s", rec.FinalTotal)
	}

	var decoded struct {
		Breakdown offers.OfferBreakdown `json:"breakdown"`
	}
	if err := json.Unmarshal(rec.Payload, &decoded); err != nil {
		t.Fatalf("payload must round-trip as JSON: %v", err)
	}
	if len(decoded.Breakdown.Lines) != 1 {
		t.Errorf("audit payload must carry the rule lines")
	}
}
