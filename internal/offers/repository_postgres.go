package offers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/band"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) GetCategoryRules(
	ctx context.Context,
	org string,
) (map[string]decimal.Decimal, error) {

	rows, err := r.db.Query(ctx, `
		SELECT category, percent_off
		FROM category_discounts
		WHERE (organization_id = $1 OR organization_id = '')
	`, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var pct decimal.Decimal
		if err := rows.Scan(&category, &pct); err != nil {
			return nil, err
		}
		rules[category] = pct
	}

	return rules, rows.Err()
}

func (r *PostgresRepository) GetCouponRule(
	ctx context.Context,
	org string,
	code string,
) (*CouponRule, bool, error) {

	var rule CouponRule
	err := r.db.QueryRow(ctx, `
		SELECT code, percent_off, amount_off, valid_from, valid_to, is_active
		FROM coupons
		WHERE code = $1
		  AND (organization_id = $2 OR organization_id = '')
	`, code, org).Scan(
		&rule.Code,
		&rule.PercentOff,
		&rule.AmountOff,
		&rule.ValidFrom,
		&rule.ValidTo,
		&rule.Active,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &rule, true, nil
}

func (r *PostgresRepository) GetSecondPairTiers(
	ctx context.Context,
	org string,
) ([]band.Band, error) {

	rows, err := r.db.Query(ctx, `
		SELECT label, lower_bound, upper_bound, lower_inclusive, upper_inclusive, percent_off
		FROM second_pair_tiers
		WHERE (organization_id = $1 OR organization_id = '')
		ORDER BY lower_bound ASC
	`, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []band.Band
	for rows.Next() {
		var b band.Band
		if err := rows.Scan(
			&b.Label,
			&b.Lower,
			&b.Upper,
			&b.LowerInclusive,
			&b.UpperInclusive,
			&b.Amount,
		); err != nil {
			return nil, err
		}
		tiers = append(tiers, b)
	}

	return tiers, rows.Err()
}
