package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// BenefitProfileReader lets the offer engine consult the questionnaire needs
// profile without importing the benefits package directly.
type BenefitProfileReader interface {
	CalculateProfile(
		ctx context.Context,
		org string,
		answerIDs []string,
	) (map[string]int, error)
}

// TierOffer is the slice of a combo tier the offer engine needs for its
// eligibility check.
type TierOffer struct {
	Code           string
	Name           string
	EffectivePrice decimal.Decimal
}

// TierReader resolves the cheapest active combo tier whose constraints accept
// the given frame/lens selection. ok=false means no tier matched.
type TierReader interface {
	CheapestEligibleTier(
		ctx context.Context,
		org string,
		frameBrand string,
		framePrice decimal.Decimal,
		lensPrice decimal.Decimal,
	) (*TierOffer, bool, error)
}
