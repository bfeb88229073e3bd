package combos

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Constraint kinds. The stored JSON blob is decoded once at the repository
// boundary into this tagged structure; callers never see raw encoded blobs.
const (
	ConstraintMaxLensPrice  = "MAX_LENS_PRICE"
	ConstraintMinFramePrice = "MIN_FRAME_PRICE"
	ConstraintFrameBrandIn  = "FRAME_BRAND_IN"
)

// BenefitConstraint is the decoded form of a combo benefit's constraint.
// Exactly the field matching Kind is set.
type BenefitConstraint struct {
	Kind          string           `json:"kind"`
	MaxLensPrice  *decimal.Decimal `json:"max_lens_price,omitempty"`
	MinFramePrice *decimal.Decimal `json:"min_frame_price,omitempty"`
	FrameBrands   []string         `json:"frame_brands,omitempty"`
}

// DecodeConstraint parses a stored constraint blob. Empty input means an
// unconstrained benefit.
func DecodeConstraint(raw []byte) (*BenefitConstraint, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var c BenefitConstraint
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode benefit constraint: %w", err)
	}

	switch c.Kind {
	case ConstraintMaxLensPrice:
		if c.MaxLensPrice == nil {
			return nil, fmt.Errorf("constraint %s missing max_lens_price", c.Kind)
		}
	case ConstraintMinFramePrice:
		if c.MinFramePrice == nil {
			return nil, fmt.Errorf("constraint %s missing min_frame_price", c.Kind)
		}
	case ConstraintFrameBrandIn:
		if len(c.FrameBrands) == 0 {
			return nil, fmt.Errorf("constraint %s missing frame_brands", c.Kind)
		}
	default:
		return nil, fmt.Errorf("unknown constraint kind: %s", c.Kind)
	}

	return &c, nil
}

// Accepts reports whether the given selection satisfies the constraint.
func (c *BenefitConstraint) Accepts(frameBrand string, framePrice, lensPrice decimal.Decimal) bool {
	if c == nil {
		return true
	}
	switch c.Kind {
	case ConstraintMaxLensPrice:
		return lensPrice.LessThanOrEqual(*c.MaxLensPrice)
	case ConstraintMinFramePrice:
		return framePrice.GreaterThanOrEqual(*c.MinFramePrice)
	case ConstraintFrameBrandIn:
		for _, b := range c.FrameBrands {
			if b == frameBrand {
				return true
			}
		}
		return false
	}
	return false
}

// ComboBenefit is one bundled benefit inside a tier.
type ComboBenefit struct {
	Type       string             `json:"type"`
	Label      string             `json:"label"`
	MaxValue   decimal.Decimal    `json:"max_value"`
	Constraint *BenefitConstraint `json:"constraint,omitempty"`
}

// ComboTier is a bundled pricing package at a single effective price.
type ComboTier struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Badge          string          `json:"badge"`
	Active         bool            `json:"active"`
	Benefits       []ComboBenefit  `json:"benefits"`
}

// TierSummary is the comparable, display-ready view of an active tier.
type TierSummary struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	EffectivePrice decimal.Decimal `json:"effective_price"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Badge          string          `json:"badge"`
	Benefits       []ComboBenefit  `json:"benefits"`
}
