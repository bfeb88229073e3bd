package lenses

import "github.com/shopspring/decimal"

// Lens index values supported by the catalog.
const (
	Index156 = "INDEX_156"
	Index16  = "INDEX_16"
	Index167 = "INDEX_167"
	Index174 = "INDEX_174"
)

// ValidIndex reports whether idx is one of the catalog lens indices.
func ValidIndex(idx string) bool {
	switch idx {
	case Index156, Index16, Index167, Index174:
		return true
	}
	return false
}

// Lens is a catalog lens record. Read-only snapshot data.
type Lens struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	BrandLine    string          `json:"brand_line"`
	Price        decimal.Decimal `json:"price"`
	LensIndex    string          `json:"lens_index"`
	YopoEligible bool            `json:"yopo_eligible"`
	Active       bool            `json:"active"`
}
