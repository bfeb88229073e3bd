package offers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/band"
)

type InMemoryRepository struct {
	categories map[string]decimal.Decimal
	coupons    map[string]*CouponRule
	tiers      []band.Band
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		categories: make(map[string]decimal.Decimal),
		coupons:    make(map[string]*CouponRule),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) SetCategoryRule(category string, percentOff decimal.Decimal) {
	r.categories[category] = percentOff
}

func (r *InMemoryRepository) PutCoupon(rule *CouponRule) {
	r.coupons[rule.Code] = rule
}

func (r *InMemoryRepository) AddSecondPairTier(b band.Band) {
	r.tiers = append(r.tiers, b)
}

func (r *InMemoryRepository) GetCategoryRules(
	ctx context.Context,
	org string,
) (map[string]decimal.Decimal, error) {
	return r.categories, nil
}

func (r *InMemoryRepository) GetCouponRule(
	ctx context.Context,
	org string,
	code string,
) (*CouponRule, bool, error) {
	rule, ok := r.coupons[code]
	return rule, ok, nil
}

func (r *InMemoryRepository) GetSecondPairTiers(
	ctx context.Context,
	org string,
) ([]band.Band, error) {
	return r.tiers, nil
}
