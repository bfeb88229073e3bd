package band

import (
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

func TestMatchesBoundInclusivity(t *testing.T) {
	b := Band{
		Label:          "2 to 4",
		Lower:          d("2"),
		Upper:          d("4"),
		LowerInclusive: true,
		UpperInclusive: false,
	}

	if !b.Matches(d("2")) {
		t.Errorf("inclusive lower bound should match")
	}
	if b.Matches(d("4")) {
		t.Errorf("exclusive upper bound should not match")
	}
	if !b.Matches(d("3.75")) {
		t.Errorf("interior value should match")
	}
	if b.Matches(d("1.99")) {
		t.Errorf("value below lower bound should not match")
	}
}

func TestMatchAllReturnsEveryContainingBand(t *testing.T) {
	bands := []Band{
		{Label: "low", Lower: d("0"), Upper: d("2"), LowerInclusive: true, UpperInclusive: true, Amount: d("100")},
		{Label: "mid", Lower: d("2"), Upper: d("4"), LowerInclusive: false, UpperInclusive: true, Amount: d("300")},
		{Label: "high", Lower: d("4"), Upper: d("6"), LowerInclusive: false, UpperInclusive: true, Amount: d("600")},
	}

	matched := MatchAll(bands, d("3"))
	if len(matched) != 1 || matched[0].Label != "mid" {
		t.Fatalf("expected single match on mid, got %v", matched)
	}

	if got := MatchAll(bands, d("9")); len(got) != 0 {
		t.Fatalf("expected no match, got %v", got)
	}
}

func TestHighestPicksLargestAmount(t *testing.T) {
	bands := []Band{
		{Label: "a", Amount: d("300")},
		{Label: "b", Amount: d("600")},
		{Label: "c", Amount: d("150")},
	}

	winner, ok := Highest(bands)
	if !ok {
		t.Fatalf("expected a winner")
	}
	if winner.Label != "b" {
		t.Errorf("expected band b, got %s", winner.Label)
	}
}

func TestHighestTieBreaksByLabel(t *testing.T) {
	bands := []Band{
		{Label: "z-band", Amount: d("300")},
		{Label: "a-band", Amount: d("300")},
	}

	winner, _ := Highest(bands)
	if winner.Label != "a-band" {
		t.Errorf("tie should break by label, got %s", winner.Label)
	}
}

func TestHighestEmpty(t *testing.T) {
	if _, ok := Highest(nil); ok {
		t.Errorf("empty input must not produce a winner")
	}
}
