package benefits

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

func (r *PostgresRepository) GetWeights(
	ctx context.Context,
	org string,
	answerIDs []string,
) ([]AnswerBenefitWeight, error) {

	if len(answerIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT answer_id, benefit_code, points
		FROM answer_benefit_weights
		WHERE answer_id = ANY($1)
		  AND (organization_id = $2 OR organization_id = '')
	`, answerIDs, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWeights(rows)
}

func (r *PostgresRepository) GetActiveCodes(
	ctx context.Context,
	org string,
) ([]BenefitCode, error) {

	rows, err := r.db.Query(ctx, `
		SELECT code, label, is_active
		FROM benefit_codes
		WHERE is_active = true
		  AND (organization_id = $1 OR organization_id = '')
		ORDER BY code ASC
	`, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []BenefitCode
	for rows.Next() {
		var c BenefitCode
		if err := rows.Scan(&c.Code, &c.Label, &c.Active); err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}

	return codes, rows.Err()
}

func (r *PostgresRepository) GetAllWeights(
	ctx context.Context,
	org string,
) ([]AnswerBenefitWeight, error) {

	rows, err := r.db.Query(ctx, `
		SELECT answer_id, benefit_code, points
		FROM answer_benefit_weights
		WHERE (organization_id = $1 OR organization_id = '')
	`, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWeights(rows)
}

func (r *PostgresRepository) UpsertStats(
	ctx context.Context,
	org string,
	s StatsSnapshot,
) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO benefit_stats (
			organization_id,
			benefit_code,
			total_points,
			answer_count
		)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (organization_id, benefit_code)
		DO UPDATE SET
			total_points = EXCLUDED.total_points,
			answer_count = EXCLUDED.answer_count,
			updated_at = now()
	`,
		org,
		s.BenefitCode,
		s.TotalPoints,
		s.AnswerCount,
	)

	return err
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanWeights(rows pgxRows) ([]AnswerBenefitWeight, error) {
	var weights []AnswerBenefitWeight
	for rows.Next() {
		var w AnswerBenefitWeight
		if err := rows.Scan(&w.AnswerID, &w.BenefitCode, &w.Points); err != nil {
			return nil, err
		}
		weights = append(weights, w)
	}
	return weights, rows.Err()
}
