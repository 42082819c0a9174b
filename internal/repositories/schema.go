package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id {{id}},
		username VARCHAR(191) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		created_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id {{id}},
		title VARCHAR(255) NOT NULL,
		quantity {{float}} NOT NULL,
		unit VARCHAR(16) NOT NULL,
		price {{float}} NOT NULL,
		unit_price {{float}} NOT NULL,
		normalized_unit_price {{float}} NOT NULL,
		owner_id BIGINT NOT NULL,
		username VARCHAR(191) NOT NULL,
		private BOOLEAN NOT NULL DEFAULT FALSE,
		category VARCHAR(32) NOT NULL DEFAULT '',
		tags TEXT NOT NULL,
		notes TEXT NOT NULL,
		store VARCHAR(255) NOT NULL DEFAULT '',
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NULL
	)`,
	`CREATE TABLE IF NOT EXISTS price_history (
		id {{id}},
		item_id BIGINT NOT NULL,
		item_title VARCHAR(255) NOT NULL,
		price {{float}} NOT NULL,
		unit_price {{float}} NOT NULL,
		quantity {{float}} NOT NULL,
		unit VARCHAR(16) NOT NULL,
		owner_id BIGINT NOT NULL,
		recorded_at {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shopping_lists (
		id {{id}},
		name VARCHAR(255) NOT NULL,
		items TEXT NOT NULL,
		total_estimated_cost {{float}} NOT NULL,
		owner_id BIGINT NOT NULL,
		username VARCHAR(191) NOT NULL,
		created_at {{ts}} NOT NULL,
		updated_at {{ts}} NOT NULL
	)`,
}

func (d Dialect) types() *strings.Replacer {
	switch d {
	case Postgres:
		return strings.NewReplacer("{{id}}", "BIGSERIAL PRIMARY KEY", "{{ts}}", "TIMESTAMPTZ", "{{float}}", "DOUBLE PRECISION")
	case SQLite:
		return strings.NewReplacer("{{id}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{ts}}", "DATETIME", "{{float}}", "REAL")
	default:
		return strings.NewReplacer("{{id}}", "BIGINT AUTO_INCREMENT PRIMARY KEY", "{{ts}}", "DATETIME(6)", "{{float}}", "DOUBLE")
	}
}

// Migrate creates the tables the service needs when they are missing.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	r := d.types()
	for _, q := range schema {
		if _, err := db.ExecContext(ctx, r.Replace(q)); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
