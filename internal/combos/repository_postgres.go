package combos

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) GetActiveTiers(
	ctx context.Context,
	org string,
) ([]ComboTier, error) {

	rows, err := r.db.Query(ctx, `
		SELECT code, name, effective_price, total_value, badge, is_active
		FROM combo_tiers
		WHERE is_active = true
		  AND (organization_id = $1 OR organization_id = '')
	`, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []ComboTier
	for rows.Next() {
		var t ComboTier
		if err := rows.Scan(
			&t.Code,
			&t.Name,
			&t.EffectivePrice,
			&t.TotalValue,
			&t.Badge,
			&t.Active,
		); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tiers {
		benefits, err := r.getBenefits(ctx, tiers[i].Code)
		if err != nil {
			return nil, err
		}
		tiers[i].Benefits = benefits
	}

	return tiers, nil
}

func (r *PostgresRepository) getBenefits(
	ctx context.Context,
	tierCode string,
) ([]ComboBenefit, error) {

	rows, err := r.db.Query(ctx, `
		SELECT type, label, max_value, constraints
		FROM combo_benefits
		WHERE tier_code = $1
		ORDER BY label ASC
	`, tierCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var benefits []ComboBenefit
	for rows.Next() {
		var b ComboBenefit
		var raw []byte
		if err := rows.Scan(&b.Type, &b.Label, &b.MaxValue, &raw); err != nil {
			return nil, err
		}

		// Constraints are decoded here, once, not per comparison call.
		constraint, err := DecodeConstraint(raw)
		if err != nil {
			return nil, fmt.Errorf("tier %s: %w", tierCode, err)
		}
		b.Constraint = constraint

		benefits = append(benefits, b)
	}

	return benefits, rows.Err()
}
