package tints

import "github.com/shopspring/decimal"

// Kinds of tintable add-ons. Mirror coatings share the price table with tint
// colors, keyed the same way.
const (
	KindTint          = "TINT"
	KindMirrorCoating = "MIRROR_COATING"
)

// Tint is a tint color or mirror coating catalog record.
type Tint struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	BasePrice decimal.Decimal `json:"base_price"`
	Active    bool            `json:"active"`
}

// PriceEntry is the configured price addition for one (tint, lens index)
// combination. At most one entry exists per pair; a missing pair is a
// catalog gap, not a zero default.
type PriceEntry struct {
	TintID        string          `json:"tint_id"`
	LensIndex     string          `json:"lens_index"`
	PriceAddition decimal.Decimal `json:"price_addition"`
}

// PriceResult is the resolver output.
type PriceResult struct {
	TintID    string          `json:"tint_id"`
	LensIndex string          `json:"lens_index"`
	BasePrice decimal.Decimal `json:"base_price"`
	AddOn     decimal.Decimal `json:"add_on"`
	Total     decimal.Decimal `json:"total"`
}
