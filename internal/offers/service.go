package offers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/band"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/core"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

var hundred = decimal.NewFromInt(100)

type Service struct {
	repo     Repository
	profiles core.BenefitProfileReader // nil skips needs-profile enrichment
	tiers    core.TierReader           // nil skips combo suggestion
	now      func() time.Time
}

func NewService(
	repo Repository,
	profiles core.BenefitProfileReader,
	tiers core.TierReader,
) *Service {
	return &Service{
		repo:     repo,
		profiles: profiles,
		tiers:    tiers,
		now:      time.Now,
	}
}

// CalculateOffers turns a raw selection into a priced breakdown with the full
// audit trail. Structural input errors fail the whole call; everything
// rule-level degrades to a rejected line item so one bad coupon never blocks
// pricing for the rest of the order.
//
// Stacking is fixed: category and coupon discounts apply additively to the
// first pair's subtotal; the second-pair discount is computed against the
// second pair's own subtotal in isolation; the two streams are summed at the
// top line, never compounded on each other.
func (s *Service) CalculateOffers(
	ctx context.Context,
	org string,
	req OfferRequest,
) (*OfferBreakdown, error) {

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	base := req.Frame.Price.Add(req.Lens.Price)

	breakdown := &OfferBreakdown{
		FrameBasePrice:    req.Frame.Price,
		LensBasePrice:     req.Lens.Price,
		FirstPairSubtotal: base,
		Lines:             []RuleLine{},
	}

	s.applyCategoryRule(ctx, org, req, base, breakdown)
	s.applyCouponRule(ctx, org, req, base, breakdown)
	s.applySecondPairRules(ctx, org, req, breakdown)
	s.attachNeedsProfile(ctx, org, req, breakdown)
	s.attachTierSuggestion(ctx, org, req, breakdown)

	totalDiscount := decimal.Zero
	for _, line := range breakdown.Lines {
		if line.Applied {
			totalDiscount = totalDiscount.Add(line.Amount)
		}
	}
	breakdown.TotalDiscount = totalDiscount

	final := base.Add(breakdown.SecondPairSubtotal).Sub(totalDiscount)
	if final.IsNegative() {
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:    "CLAMPED_AT_ZERO",
			Amount:  final.Neg(),
			Applied: true,
			Reason:  "stacked discounts exceeded the payable amount",
		})
		final = decimal.Zero
	}
	breakdown.FinalTotal = final

	return breakdown, nil
}

func validateRequest(req OfferRequest) error {
	var issues []xerrors.FieldIssue

	if req.Frame.Price.IsNegative() {
		issues = append(issues, xerrors.FieldIssue{Field: "frame.price", Issue: "must not be negative"})
	}
	if req.Lens.Price.IsNegative() {
		issues = append(issues, xerrors.FieldIssue{Field: "lens.price", Issue: "must not be negative"})
	}
	if req.CustomerCategory != "" && !ValidCategory(req.CustomerCategory) {
		issues = append(issues, xerrors.FieldIssue{Field: "customer_category", Issue: "unknown category " + req.CustomerCategory})
	}
	if sp := req.SecondPair; sp != nil && sp.Enabled {
		if sp.FirstPairTotal.IsNegative() {
			issues = append(issues, xerrors.FieldIssue{Field: "second_pair.first_pair_total", Issue: "must not be negative"})
		}
		if sp.FramePrice.IsNegative() {
			issues = append(issues, xerrors.FieldIssue{Field: "second_pair.frame_price", Issue: "must not be negative"})
		}
		if sp.LensPrice.IsNegative() {
			issues = append(issues, xerrors.FieldIssue{Field: "second_pair.lens_price", Issue: "must not be negative"})
		}
	}

	if len(issues) > 0 {
		return xerrors.NewValidation("invalid offer request", issues...)
	}
	return nil
}

// Category rules are mutually exclusive: only the category matching the
// input applies.
func (s *Service) applyCategoryRule(
	ctx context.Context,
	org string,
	req OfferRequest,
	base decimal.Decimal,
	breakdown *OfferBreakdown,
) {
	if req.CustomerCategory == "" {
		return
	}

	ruleName := fmt.Sprintf("%s category discount", req.CustomerCategory)

	rules, err := s.repo.GetCategoryRules(ctx, org)
	if err != nil {
		log.Printf("[OFFERS] category rule lookup failed: %v", err)
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "category rules unavailable",
		})
		return
	}

	pct, ok := rules[req.CustomerCategory]
	if !ok {
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:   ruleName,
			Reason: "no discount configured for category " + req.CustomerCategory,
		})
		return
	}

	breakdown.Lines = append(breakdown.Lines, RuleLine{
		Rule:    ruleName,
		Amount:  base.Mul(pct).Div(hundred),
		Applied: true,
	})
}

func (s *Service) applyCouponRule(
	ctx context.Context,
	org string,
	req OfferRequest,
	base decimal.Decimal,
	breakdown *OfferBreakdown,
) {
	if req.CouponCode == "" {
		return
	}

	ruleName := "coupon " + req.CouponCode

	rule, ok, err := s.repo.GetCouponRule(ctx, org, req.CouponCode)
	if err != nil {
		log.Printf("[OFFERS] coupon lookup failed for %s: %v", req.CouponCode, err)
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "coupon lookup unavailable",
		})
		return
	}
	if !ok {
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "unknown coupon code",
		})
		return
	}

	now := s.now()
	switch {
	case !rule.Active:
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "coupon is not active",
		})
	case rule.ValidFrom != nil && now.Before(*rule.ValidFrom):
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "coupon not yet valid",
		})
	case rule.ValidTo != nil && now.After(*rule.ValidTo):
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "coupon expired",
		})
	case rule.PercentOff != nil:
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:    ruleName,
			Amount:  base.Mul(*rule.PercentOff).Div(hundred),
			Applied: true,
		})
	case rule.AmountOff != nil:
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:    ruleName,
			Amount:  *rule.AmountOff,
			Applied: true,
		})
	default:
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: ruleName, Reason: "coupon carries no discount effect",
		})
	}
}

// Second-pair rules only ever touch the second pair's own subtotal. YOPO
// frees the second lens; the tier percent then applies to the second frame
// alone so the lens is never discounted twice.
func (s *Service) applySecondPairRules(
	ctx context.Context,
	org string,
	req OfferRequest,
	breakdown *OfferBreakdown,
) {
	sp := req.SecondPair
	if sp == nil || !sp.Enabled {
		return
	}

	secondSubtotal := sp.FramePrice.Add(sp.LensPrice)
	breakdown.SecondPairSubtotal = secondSubtotal

	tierBase := secondSubtotal
	if sp.LensYopoEligible && sp.LensPrice.IsPositive() {
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:    "YOPO second pair lens",
			Amount:  sp.LensPrice,
			Applied: true,
		})
		tierBase = sp.FramePrice
	}

	tiers, err := s.repo.GetSecondPairTiers(ctx, org)
	if err != nil {
		log.Printf("[OFFERS] second pair tier lookup failed: %v", err)
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: "second pair discount", Reason: "discount tiers unavailable",
		})
		return
	}

	matched := band.MatchAll(tiers, sp.FirstPairTotal)
	winner, ok := band.Highest(matched)
	if !ok {
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:   "second pair discount",
			Reason: "no matching discount tier for first pair total",
		})
		return
	}

	breakdown.Lines = append(breakdown.Lines, RuleLine{
		Rule:    fmt.Sprintf("second pair discount (%s)", winner.Label),
		Amount:  tierBase.Mul(winner.Amount).Div(hundred),
		Applied: true,
	})
}

func (s *Service) attachNeedsProfile(
	ctx context.Context,
	org string,
	req OfferRequest,
	breakdown *OfferBreakdown,
) {
	if s.profiles == nil || len(req.AnswerIDs) == 0 {
		return
	}

	profile, err := s.profiles.CalculateProfile(ctx, org, req.AnswerIDs)
	if err != nil {
		log.Printf("[OFFERS] needs profile unavailable: %v", err)
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: "needs profile", Reason: "benefit profile unavailable",
		})
		return
	}
	breakdown.NeedsProfile = profile
}

func (s *Service) attachTierSuggestion(
	ctx context.Context,
	org string,
	req OfferRequest,
	breakdown *OfferBreakdown,
) {
	if s.tiers == nil {
		return
	}

	offer, ok, err := s.tiers.CheapestEligibleTier(
		ctx, org, req.Frame.Brand, req.Frame.Price, req.Lens.Price,
	)
	if err != nil {
		log.Printf("[OFFERS] tier suggestion unavailable: %v", err)
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule: "combo tier suggestion", Reason: "tier catalog unavailable",
		})
		return
	}
	if !ok {
		breakdown.Lines = append(breakdown.Lines, RuleLine{
			Rule:   "combo tier suggestion",
			Reason: "no active tier matches this selection",
		})
		return
	}

	breakdown.SuggestedTier = offer
	breakdown.Lines = append(breakdown.Lines, RuleLine{
		Rule:    "combo tier suggestion",
		Applied: true,
		Reason:  fmt.Sprintf("tier %s eligible at %s", offer.Code, offer.EffectivePrice),
	})
}
