package offers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/core"
)

// Customer categories driving category-specific discount rules.
const (
	CategoryStudent       = "STUDENT"
	CategoryDoctor        = "DOCTOR"
	CategoryTeacher       = "TEACHER"
	CategoryArmedForces   = "ARMED_FORCES"
	CategorySeniorCitizen = "SENIOR_CITIZEN"
	CategoryCorporate     = "CORPORATE"
	CategoryRegular       = "REGULAR"
)

// ValidCategory reports whether c is an enumerated customer category.
// Empty string means absent and is handled by the caller.
func ValidCategory(c string) bool {
	switch c {
	case CategoryStudent, CategoryDoctor, CategoryTeacher,
		CategoryArmedForces, CategorySeniorCitizen,
		CategoryCorporate, CategoryRegular:
		return true
	}
	return false
}

// Frame construction types.
const (
	ConstructionFullRim = "FULL_RIM"
	ConstructionHalfRim = "HALF_RIM"
	ConstructionRimless = "RIMLESS"
)

// FrameSelection is the chosen frame. Immutable input value.
type FrameSelection struct {
	Brand        string          `json:"brand"`
	SubCategory  string          `json:"sub_category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Construction string          `json:"construction,omitempty"`
}

// LensSelection is the chosen lens. Immutable input value.
type LensSelection struct {
	Code         string          `json:"code"`
	Price        decimal.Decimal `json:"price"`
	BrandLine    string          `json:"brand_line"`
	YopoEligible bool            `json:"yopo_eligible"`
}

// SecondPair is the optional second-pair context. FirstPairTotal is the
// amount already paid for the first pair, known to the caller; it selects
// the discount tier but is never itself discounted.
type SecondPair struct {
	Enabled          bool            `json:"enabled"`
	FirstPairTotal   decimal.Decimal `json:"first_pair_total"`
	FramePrice       decimal.Decimal `json:"frame_price"`
	LensPrice        decimal.Decimal `json:"lens_price"`
	LensYopoEligible bool            `json:"lens_yopo_eligible"`
}

// CouponRule is the externally resolved effect of a coupon code.
// Exactly one of PercentOff / AmountOff is set.
type CouponRule struct {
	Code       string           `json:"code"`
	PercentOff *decimal.Decimal `json:"percent_off,omitempty"`
	AmountOff  *decimal.Decimal `json:"amount_off,omitempty"`
	ValidFrom  *time.Time       `json:"valid_from,omitempty"`
	ValidTo    *time.Time       `json:"valid_to,omitempty"`
	Active     bool             `json:"active"`
}

// OfferRequest is the raw selection arriving from the retail-staff client.
type OfferRequest struct {
	Frame            FrameSelection `json:"frame"`
	Lens             LensSelection  `json:"lens"`
	CustomerCategory string         `json:"customer_category,omitempty"`
	CouponCode       string         `json:"coupon_code,omitempty"`
	SecondPair       *SecondPair    `json:"second_pair,omitempty"`
	AnswerIDs        []string       `json:"answer_ids,omitempty"`
}

// RuleLine is one audit entry: a rule that fired (Applied, negative effect
// expressed as a positive Amount) or was rejected with a reason.
type RuleLine struct {
	Rule    string          `json:"rule"`
	Amount  decimal.Decimal `json:"amount"`
	Applied bool            `json:"applied"`
	Reason  string          `json:"reason,omitempty"`
}

// OfferBreakdown is the engine output: the priced result plus the full audit
// trail of applied and rejected rules. Auditability is a first-class output.
type OfferBreakdown struct {
	FrameBasePrice     decimal.Decimal `json:"frame_base_price"`
	LensBasePrice      decimal.Decimal `json:"lens_base_price"`
	FirstPairSubtotal  decimal.Decimal `json:"first_pair_subtotal"`
	SecondPairSubtotal decimal.Decimal `json:"second_pair_subtotal"`
	Lines              []RuleLine      `json:"lines"`
	TotalDiscount      decimal.Decimal `json:"total_discount"`
	FinalTotal         decimal.Decimal `json:"final_total"`
	NeedsProfile       map[string]int  `json:"needs_profile,omitempty"`
	SuggestedTier      *core.TierOffer `json:"suggested_tier,omitempty"`
}
