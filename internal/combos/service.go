package combos

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/cache"
	"github.com/Yuvraj3006/lensadviser-sub005/internal/core"
)

const (
	cacheNamespace = "combo_tiers"
	cacheTTL       = 5 * time.Minute
)

type Service struct {
	repo  Repository
	cache *cache.Cache // nil disables caching
}

func NewService(repo Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// ListActiveTiers returns active tiers sorted by ascending effective price,
// ties broken by code. The assembled list is cached per organization.
func (s *Service) ListActiveTiers(ctx context.Context, org string) ([]TierSummary, error) {

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheNamespace, cacheKey(org)); err == nil {
			var cached []TierSummary
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		} else if !cache.IsMiss(err) {
			log.Printf("[COMBOS] cache read failed, falling back to catalog: %v", err)
		}
	}

	tiers, err := s.repo.GetActiveTiers(ctx, org)
	if err != nil {
		return nil, err
	}

	summaries := make([]TierSummary, 0, len(tiers))
	for _, t := range tiers {
		if !t.Active {
			continue
		}
		summaries = append(summaries, TierSummary{
			Code:           t.Code,
			Name:           t.Name,
			EffectivePrice: t.EffectivePrice,
			TotalValue:     t.TotalValue,
			Badge:          t.Badge,
			Benefits:       t.Benefits,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].EffectivePrice.Equal(summaries[j].EffectivePrice) {
			return summaries[i].EffectivePrice.LessThan(summaries[j].EffectivePrice)
		}
		return summaries[i].Code < summaries[j].Code
	})

	if s.cache != nil {
		if raw, err := json.Marshal(summaries); err == nil {
			_ = s.cache.Set(ctx, cacheNamespace, cacheKey(org), raw, cacheTTL)
		}
	}

	return summaries, nil
}

// InvalidateCache drops the cached tier list for an organization. Called by
// the stats worker after a recompute and by catalog-admin writes.
func (s *Service) InvalidateCache(ctx context.Context, org string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheNamespace, cacheKey(org)); err != nil {
		log.Printf("[COMBOS] cache invalidation failed: %v", err)
	}
}

// CheapestEligibleTier implements core.TierReader for the offer engine:
// the first tier in display order whose every benefit constraint accepts
// the selection.
func (s *Service) CheapestEligibleTier(
	ctx context.Context,
	org string,
	frameBrand string,
	framePrice decimal.Decimal,
	lensPrice decimal.Decimal,
) (*core.TierOffer, bool, error) {

	summaries, err := s.ListActiveTiers(ctx, org)
	if err != nil {
		return nil, false, err
	}

	for _, t := range summaries {
		eligible := true
		for _, b := range t.Benefits {
			if !b.Constraint.Accepts(frameBrand, framePrice, lensPrice) {
				eligible = false
				break
			}
		}
		if eligible {
			return &core.TierOffer{
				Code:           t.Code,
				Name:           t.Name,
				EffectivePrice: t.EffectivePrice,
			}, true, nil
		}
	}

	return nil, false, nil
}

var _ core.TierReader = (*Service)(nil)

func cacheKey(org string) string {
	if org == "" {
		return "global"
	}
	return org
}
