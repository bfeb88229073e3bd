package rxpricing

import "github.com/shopspring/decimal"

// Prescription axes
const (
	AxisSphere   = "SPHERE"
	AxisCylinder = "CYLINDER"
	AxisAdd      = "ADD"
)

// Eyes
const (
	EyeRight = "RIGHT"
	EyeLeft  = "LEFT"
)

// Combination policies. HIGHEST_ONLY is the only implemented policy; the
// parameter is kept explicit so additive or capped-sum policies can be added
// without changing callers.
const (
	PolicyHighestOnly = "HIGHEST_ONLY"
)

// Prescription carries per-eye sphere/cylinder/add power. Values are used by
// magnitude only, independently per eye. Nil means not prescribed.
type Prescription struct {
	RightSphere   *decimal.Decimal `json:"right_sphere,omitempty"`
	RightCylinder *decimal.Decimal `json:"right_cylinder,omitempty"`
	RightAdd      *decimal.Decimal `json:"right_add,omitempty"`
	LeftSphere    *decimal.Decimal `json:"left_sphere,omitempty"`
	LeftCylinder  *decimal.Decimal `json:"left_cylinder,omitempty"`
	LeftAdd       *decimal.Decimal `json:"left_add,omitempty"`
}

// PricingBand is one configured surcharge range for a lens, restricted to a
// single axis. Bounds are on prescription magnitude.
type PricingBand struct {
	ID             int             `json:"id"`
	LensCode       string          `json:"lens_code"`
	Axis           string          `json:"axis"`
	Label          string          `json:"label"`
	Lower          decimal.Decimal `json:"lower"`
	Upper          decimal.Decimal `json:"upper"`
	LowerInclusive bool            `json:"lower_inclusive"`
	UpperInclusive bool            `json:"upper_inclusive"`
	Surcharge      decimal.Decimal `json:"surcharge"`
}

// MatchedBand is one band the prescription fell into. Under HIGHEST_ONLY at
// most one matched band is charged; the rest stay in the output for
// transparency.
type MatchedBand struct {
	Label     string          `json:"label"`
	Axis      string          `json:"axis"`
	Eye       string          `json:"eye"`
	Surcharge decimal.Decimal `json:"surcharge"`
	Charged   bool            `json:"charged"`
}

// Result is the resolver output.
type Result struct {
	LensCode   string          `json:"lens_code"`
	Policy     string          `json:"policy"`
	TotalAddOn decimal.Decimal `json:"total_add_on"`
	Matched    []MatchedBand   `json:"matched_bands"`
}
