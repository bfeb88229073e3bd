package rxpricing

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) GetBands(
	ctx context.Context,
	org string,
	lensCode string,
) ([]PricingBand, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			lens_code,
			axis,
			label,
			lower_bound,
			upper_bound,
			lower_inclusive,
			upper_inclusive,
			surcharge
		FROM rx_pricing_bands
		WHERE lens_code = $1
		  AND (organization_id = $2 OR organization_id = '')
		ORDER BY axis, lower_bound ASC
	`, lensCode, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bands []PricingBand
	for rows.Next() {
		var b PricingBand
		if err := rows.Scan(
			&b.ID,
			&b.LensCode,
			&b.Axis,
			&b.Label,
			&b.Lower,
			&b.Upper,
			&b.LowerInclusive,
			&b.UpperInclusive,
			&b.Surcharge,
		); err != nil {
			return nil, err
		}
		bands = append(bands, b)
	}

	return bands, rows.Err()
}
