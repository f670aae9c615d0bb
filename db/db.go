package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog/log"

	"patternshelf/config"
)

// schema creates the tables on first start. The unique constraint on
// (brand, pattern_number) is what makes concurrent scrapes of the same
// pattern safe: the second writer's insert fails with a unique violation
// and the reconciler retries it as an update.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	username      VARCHAR(50) NOT NULL UNIQUE,
	email         VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(200) NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS patterns (
	id                       SERIAL PRIMARY KEY,
	brand                    VARCHAR(50) NOT NULL,
	pattern_number           VARCHAR(50) NOT NULL,
	title                    VARCHAR(200) NOT NULL,
	description              TEXT NOT NULL DEFAULT '',
	image_url                VARCHAR(500) NOT NULL DEFAULT '',
	image_data               BYTEA,
	difficulty               VARCHAR(50) NOT NULL DEFAULT '',
	size                     VARCHAR(50) NOT NULL DEFAULT '',
	sex                      VARCHAR(50) NOT NULL DEFAULT '',
	item_type                VARCHAR(100) NOT NULL DEFAULT '',
	format                   VARCHAR(50) NOT NULL DEFAULT '',
	inventory_qty            INTEGER NOT NULL DEFAULT 0,
	cut_status               VARCHAR(50) NOT NULL DEFAULT '',
	cut_size                 VARCHAR(50) NOT NULL DEFAULT '',
	cosplay_hackable         BOOLEAN NOT NULL DEFAULT FALSE,
	cosplay_notes            TEXT NOT NULL DEFAULT '',
	material_recommendations TEXT NOT NULL DEFAULT '',
	yardage                  TEXT NOT NULL DEFAULT '',
	notions                  TEXT NOT NULL DEFAULT '',
	notes                    TEXT NOT NULL DEFAULT '',
	created_at               TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at               TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT patterns_natural_key UNIQUE (brand, pattern_number)
);

CREATE TABLE IF NOT EXISTS pattern_pdfs (
	id            SERIAL PRIMARY KEY,
	pattern_id    INTEGER NOT NULL REFERENCES patterns(id) ON DELETE CASCADE,
	category      VARCHAR(20) NOT NULL,
	file_order    INTEGER,
	pdf_url       VARCHAR(500) NOT NULL DEFAULT '',
	pdf_data      BYTEA,
	drive_file_id VARCHAR(100) NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS pattern_pdfs_pattern_id_idx ON pattern_pdfs (pattern_id);
`

// Connect opens the database connection and ensures the schema exists.
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	connStr, err := cfg.ConnString()
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info().Msg("database connection established")
	return conn, nil
}
