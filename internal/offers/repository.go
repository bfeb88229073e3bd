package offers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/band"
)

// Repository is the discount-rule slice of the catalog read port.
type Repository interface {

	// GetCategoryRules maps customer category to percent-off. Categories
	// with no configured discount are simply absent from the map.
	GetCategoryRules(ctx context.Context, org string) (map[string]decimal.Decimal, error)

	// GetCouponRule resolves a coupon code. ok=false means the code is
	// unknown; that is a rejected rule, not an error.
	GetCouponRule(ctx context.Context, org string, code string) (*CouponRule, bool, error)

	// GetSecondPairTiers returns the discount tiers keyed by first-pair
	// total; band Amount is the percent off the second pair's subtotal.
	GetSecondPairTiers(ctx context.Context, org string) ([]band.Band, error)
}
