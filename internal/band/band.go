package band

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Band is a labeled numeric range carrying an amount. It is shared by the
// RX add-on resolver (surcharge per prescription magnitude) and the
// second-pair discount tiers (percent per first-pair total).
type Band struct {
	Label          string          `json:"label"`
	Lower          decimal.Decimal `json:"lower"`
	Upper          decimal.Decimal `json:"upper"`
	LowerInclusive bool            `json:"lower_inclusive"`
	UpperInclusive bool            `json:"upper_inclusive"`
	Amount         decimal.Decimal `json:"amount"`
}

// Matches reports whether v falls inside the band's range.
func (b Band) Matches(v decimal.Decimal) bool {
	if b.LowerInclusive {
		if v.LessThan(b.Lower) {
			return false
		}
	} else if v.LessThanOrEqual(b.Lower) {
		return false
	}

	if b.UpperInclusive {
		if v.GreaterThan(b.Upper) {
			return false
		}
	} else if v.GreaterThanOrEqual(b.Upper) {
		return false
	}

	return true
}

// MatchAll returns every band that contains v, in input order.
func MatchAll(bands []Band, v decimal.Decimal) []Band {
	var matched []Band
	for _, b := range bands {
		if b.Matches(v) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Highest picks the band with the largest amount. Ties break by label so the
// result is deterministic even on misconfigured overlapping bands.
// Returns false when bands is empty.
func Highest(bands []Band) (Band, bool) {
	if len(bands) == 0 {
		return Band{}, false
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Amount.Equal(sorted[j].Amount) {
			return sorted[i].Amount.GreaterThan(sorted[j].Amount)
		}
		return sorted[i].Label < sorted[j].Label
	})

	return sorted[0], true
}
