package tints

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

func (r *PostgresRepository) GetTint(
	ctx context.Context,
	org string,
	id string,
) (*Tint, error) {

	var t Tint
	err := r.db.QueryRow(ctx, `
		SELECT id, name, kind, base_price, is_active
		FROM tints
		WHERE id = $1
		  AND (organization_id = $2 OR organization_id = '')
	`, id, org).Scan(
		&t.ID,
		&t.Name,
		&t.Kind,
		&t.BasePrice,
		&t.Active,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.NewNotFound("tint", id)
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *PostgresRepository) GetPriceEntry(
	ctx context.Context,
	org string,
	id string,
	lensIndex string,
) (*PriceEntry, bool, error) {

	var e PriceEntry
	err := r.db.QueryRow(ctx, `
		SELECT tint_id, lens_index, price_addition
		FROM tint_price_entries
		WHERE tint_id = $1
		  AND lens_index = $2
		  AND (organization_id = $3 OR organization_id = '')
	`, id, lensIndex, org).Scan(
		&e.TintID,
		&e.LensIndex,
		&e.PriceAddition,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return &e, true, nil
}
