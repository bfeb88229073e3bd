package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the catalog schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// LENSES
	// -------------------------------
	lensesSQL := `
		CREATE TABLE IF NOT EXISTS lenses (
			code VARCHAR(64) PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			name VARCHAR(255) NOT NULL,
			brand_line VARCHAR(128) NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL,
			lens_index VARCHAR(32) NOT NULL,
			yopo_eligible BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, lensesSQL); err != nil {
		return err
	}

	// -------------------------------
	// RX PRICING BANDS
	// -------------------------------
	bandsSQL := `
		CREATE TABLE IF NOT EXISTS rx_pricing_bands (
			id SERIAL PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			lens_code VARCHAR(64) NOT NULL REFERENCES lenses(code),
			axis VARCHAR(16) NOT NULL,
			label VARCHAR(128) NOT NULL,
			lower_bound NUMERIC(8,2) NOT NULL,
			upper_bound NUMERIC(8,2) NOT NULL,
			lower_inclusive BOOLEAN NOT NULL DEFAULT true,
			upper_inclusive BOOLEAN NOT NULL DEFAULT false,
			surcharge NUMERIC(12,2) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, bandsSQL); err != nil {
		return err
	}

	// -------------------------------
	// TINTS & PRICE ENTRIES
	// -------------------------------
	tintsSQL := `
		CREATE TABLE IF NOT EXISTS tints (
			id VARCHAR(64) PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			name VARCHAR(255) NOT NULL,
			kind VARCHAR(32) NOT NULL DEFAULT 'TINT',
			base_price NUMERIC(12,2) NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE TABLE IF NOT EXISTS tint_price_entries (
			tint_id VARCHAR(64) NOT NULL REFERENCES tints(id),
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			lens_index VARCHAR(32) NOT NULL,
			price_addition NUMERIC(12,2) NOT NULL,
			PRIMARY KEY (tint_id, organization_id, lens_index)
		)
	`
	if _, err := db.Exec(ctx, tintsSQL); err != nil {
		return err
	}

	// -------------------------------
	// BENEFITS
	// -------------------------------
	benefitsSQL := `
		CREATE TABLE IF NOT EXISTS benefit_codes (
			code VARCHAR(64) PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			label VARCHAR(255) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE TABLE IF NOT EXISTS answer_benefit_weights (
			answer_id VARCHAR(64) NOT NULL,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			benefit_code VARCHAR(64) NOT NULL REFERENCES benefit_codes(code),
			points INTEGER NOT NULL CHECK (points >= 0),
			PRIMARY KEY (answer_id, organization_id, benefit_code)
		);

		CREATE TABLE IF NOT EXISTS benefit_stats (
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			benefit_code VARCHAR(64) NOT NULL,
			total_points INTEGER NOT NULL DEFAULT 0,
			answer_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (organization_id, benefit_code)
		)
	`
	if _, err := db.Exec(ctx, benefitsSQL); err != nil {
		return err
	}

	// -------------------------------
	// COMBO TIERS
	// -------------------------------
	combosSQL := `
		CREATE TABLE IF NOT EXISTS combo_tiers (
			code VARCHAR(64) PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			name VARCHAR(255) NOT NULL,
			effective_price NUMERIC(12,2) NOT NULL,
			total_value NUMERIC(12,2) NOT NULL DEFAULT 0,
			badge VARCHAR(64) NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE TABLE IF NOT EXISTS combo_benefits (
			id SERIAL PRIMARY KEY,
			tier_code VARCHAR(64) NOT NULL REFERENCES combo_tiers(code),
			type VARCHAR(64) NOT NULL,
			label VARCHAR(255) NOT NULL,
			max_value NUMERIC(12,2) NOT NULL DEFAULT 0,
			constraints JSONB NULL
		)
	`
	if _, err := db.Exec(ctx, combosSQL); err != nil {
		return err
	}

	// -------------------------------
	// DISCOUNT RULES
	// -------------------------------
	discountsSQL := `
		CREATE TABLE IF NOT EXISTS category_discounts (
			category VARCHAR(32) NOT NULL,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			percent_off NUMERIC(5,2) NOT NULL,
			PRIMARY KEY (category, organization_id)
		);

		CREATE TABLE IF NOT EXISTS coupons (
			code VARCHAR(64) NOT NULL,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			percent_off NUMERIC(5,2) NULL,
			amount_off NUMERIC(12,2) NULL,
			valid_from TIMESTAMP NULL,
			valid_to TIMESTAMP NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			PRIMARY KEY (code, organization_id)
		);

		CREATE TABLE IF NOT EXISTS second_pair_tiers (
			id SERIAL PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			label VARCHAR(128) NOT NULL,
			lower_bound NUMERIC(12,2) NOT NULL,
			upper_bound NUMERIC(12,2) NOT NULL,
			lower_inclusive BOOLEAN NOT NULL DEFAULT true,
			upper_inclusive BOOLEAN NOT NULL DEFAULT false,
			percent_off NUMERIC(5,2) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, discountsSQL); err != nil {
		return err
	}

	// -------------------------------
	// AUDIT RECORDS
	// -------------------------------
	auditSQL := `
		CREATE TABLE IF NOT EXISTS offer_audit_records (
			id UUID PRIMARY KEY,
			organization_id VARCHAR(64) NOT NULL DEFAULT '',
			final_total NUMERIC(12,2) NOT NULL,
			payload JSONB NOT NULL,
			archive_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, auditSQL); err != nil {
		return err
	}

	if err := seedDiscountRules(ctx, db); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedDiscountRules installs the default unscoped category discounts and
// second-pair tiers. Existing rows, including org-specific overrides, are
// left untouched.
func seedDiscountRules(ctx context.Context, db *pgxpool.Pool) error {
	categoriesSQL := `
		INSERT INTO category_discounts (category, organization_id, percent_off)
		VALUES
			('STUDENT', '', 10),
			('TEACHER', '', 10),
			('DOCTOR', '', 12),
			('SENIOR_CITIZEN', '', 12),
			('ARMED_FORCES', '', 15),
			('CORPORATE', '', 8)
		ON CONFLICT (category, organization_id) DO NOTHING
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	var tierCount int
	err := db.QueryRow(ctx, `
		SELECT COUNT(*) FROM second_pair_tiers WHERE organization_id = ''
	`).Scan(&tierCount)
	if err != nil {
		return err
	}
	if tierCount > 0 {
		return nil
	}

	tiersSQL := `
		INSERT INTO second_pair_tiers
			(organization_id, label, lower_bound, upper_bound, lower_inclusive, upper_inclusive, percent_off)
		VALUES
			('', '3000 to 6000', 3000, 6000, true, false, 5),
			('', '6000 to 10000', 6000, 10000, true, false, 10),
			('', '10000 and up', 10000, 100000000, true, true, 15)
	`
	_, err = db.Exec(ctx, tiersSQL)
	return err
}
