package lenses

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yuvraj3006/lensadviser-sub005/internal/xerrors"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ Repository = (*PostgresRepository)(nil)

func (r *PostgresRepository) GetLens(
	ctx context.Context,
	org string,
	code string,
) (*Lens, error) {

	var l Lens
	err := r.db.QueryRow(ctx, `
		SELECT
			code,
			name,
			brand_line,
			price,
			lens_index,
			yopo_eligible,
			is_active
		FROM lenses
		WHERE code = $1
		  AND (organization_id = $2 OR organization_id = '')
	`, code, org).Scan(
		&l.Code,
		&l.Name,
		&l.BrandLine,
		&l.Price,
		&l.LensIndex,
		&l.YopoEligible,
		&l.Active,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NewNotFound("lens", code)
	}
	if err != nil {
		return nil, err
	}

	return &l, nil
}
