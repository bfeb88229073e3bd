package audit

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

func (r *PostgresRepository) Insert(ctx context.Context, rec *Record) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO offer_audit_records (
			id,
			organization_id,
			final_total,
			payload,
			archive_url
		)
		VALUES ($1, $2, $3, $4, $5)
	`,
		rec.ID,
		rec.OrganizationID,
		rec.FinalTotal,
		rec.Payload,
		rec.ArchiveURL,
	)
	return err
}
